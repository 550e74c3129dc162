// Package wrap maps the identifiers Heroic hands to a launched game back to
// the game's title.
//
// Heroic 2.9.2 and later export HEROIC_APP_NAME and HEROIC_APP_RUNNER to
// the processes it starts. Resolver looks the app name up in the manifests
// of the runner that owns it, walking the configured Heroic roots in order.
package wrap
