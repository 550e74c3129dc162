package testsupport

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"savescout/internal/launcher"
)

// LibraryGame is one entry of a Heroic library manifest fixture.
type LibraryGame struct {
	AppName    string
	Title      string
	Platform   string
	FolderName string
}

func libraryPayload(games []LibraryGame) map[string]any {
	entries := make([]map[string]any, 0, len(games))
	for _, g := range games {
		entries = append(entries, map[string]any{
			"app_name":    g.AppName,
			"title":       g.Title,
			"install":     map[string]any{"platform": g.Platform},
			"folder_name": g.FolderName,
		})
	}
	return map[string]any{"games": entries}
}

// HeroicRoot creates an empty Heroic root in a temp directory.
func HeroicRoot(t testing.TB) launcher.Root {
	t.Helper()
	return launcher.Root{Path: t.TempDir(), Store: launcher.StoreHeroic}
}

// WriteSideloadLibrary writes sideload_apps/library.json under root.
func WriteSideloadLibrary(t testing.TB, root launcher.Root, games ...LibraryGame) {
	t.Helper()
	WriteJSON(t, filepath.Join(root.Path, "sideload_apps", "library.json"), libraryPayload(games))
}

// WriteGOGLibrary writes gog_store/library.json under root.
func WriteGOGLibrary(t testing.TB, root launcher.Root, games ...LibraryGame) {
	t.Helper()
	WriteJSON(t, filepath.Join(root.Path, "gog_store", "library.json"), libraryPayload(games))
}

// GOGInstall is one entry of gog_store/installed.json.
type GOGInstall struct {
	AppName     string
	Platform    string
	InstallPath string
}

// WriteGOGInstalled writes gog_store/installed.json under root.
func WriteGOGInstalled(t testing.TB, root launcher.Root, installs ...GOGInstall) {
	t.Helper()
	entries := make([]map[string]any, 0, len(installs))
	for _, in := range installs {
		entries = append(entries, map[string]any{
			"appName":      in.AppName,
			"platform":     in.Platform,
			"install_path": in.InstallPath,
		})
	}
	WriteJSON(t, filepath.Join(root.Path, "gog_store", "installed.json"), map[string]any{"installed": entries})
}

// LegendaryInstall is one entry of Legendary's installed.json.
type LegendaryInstall struct {
	AppName     string
	Title       string
	Platform    string
	InstallPath string
}

// WriteLegendaryInstalled writes installed.json into dir, keeping the entry
// order given.
func WriteLegendaryInstalled(t testing.TB, dir string, installs ...LegendaryInstall) {
	t.Helper()
	// Built by hand: encoding/json sorts map keys and the order matters.
	buf := []byte("{")
	for i, in := range installs {
		entry, err := json.Marshal(map[string]any{
			"app_name":     in.AppName,
			"title":        in.Title,
			"platform":     in.Platform,
			"install_path": in.InstallPath,
		})
		if err != nil {
			t.Fatalf("marshal legendary entry: %v", err)
		}
		key, _ := json.Marshal(in.AppName)
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, entry...)
	}
	buf = append(buf, '}')
	WriteFile(t, filepath.Join(dir, "installed.json"), buf)
}

// LegendaryDir returns Heroic's Legendary config directory for root.
func LegendaryDir(root launcher.Root) string {
	return filepath.Join(root.Path, "legendaryConfig", "legendary")
}

// WriteGamesConfig writes GamesConfig/<appName>.json with the given prefix
// and wine type.
func WriteGamesConfig(t testing.TB, root launcher.Root, appName, winePrefix, wineType string) {
	t.Helper()
	WriteJSON(t, filepath.Join(root.Path, "GamesConfig", appName+".json"), map[string]any{
		appName: map[string]any{
			"winePrefix":  winePrefix,
			"wineVersion": map[string]any{"type": wineType, "name": "Wine-GE"},
		},
		"version":  "v0",
		"explicit": true,
	})
}
