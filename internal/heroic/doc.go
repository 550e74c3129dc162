// Package heroic reads the Heroic Games Launcher's on-disk manifests and
// turns them into canonical-title mappings.
//
// A Heroic root is the launcher's config directory. Three stores live under
// it and each keeps its own manifests:
//
//	gog_store/library.json         GOG library (titles), falls back to store_cache/gog_library.json
//	gog_store/installed.json       GOG installs (no titles)
//	sideload_apps/library.json     sideloaded apps
//	legendaryConfig/legendary/installed.json   Epic installs via Legendary
//	GamesConfig/<app_name>.json    per-game Wine settings, used to find prefixes
//
// Loaders never fail: a missing manifest is a warning and an empty list, a
// malformed one is a warning carrying the parse error and an empty list. The
// Scanner folds both into "nothing found" and keeps going, so one broken file
// never hides the games of another store or root.
package heroic
