package preflight

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"savescout/internal/launcher"
	"savescout/internal/titles"
)

// CheckDirectoryAccess verifies that the directory exists and can be listed
// and read.
func CheckDirectoryAccess(name, path string) Result {
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Detail: "path not set"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
}

// CheckHeroicManifests reports which Heroic manifests exist under root. The
// check passes when at least one is present.
func CheckHeroicManifests(name string, root launcher.Root, legendaryDir string) Result {
	if legendaryDir == "" {
		legendaryDir = filepath.Join(root.Path, "legendaryConfig", "legendary")
	}
	manifests := []struct {
		label string
		paths []string
	}{
		{"gog", []string{
			filepath.Join(root.Path, "gog_store", "installed.json"),
		}},
		{"legendary", []string{
			filepath.Join(legendaryDir, "installed.json"),
		}},
		{"sideload", []string{
			filepath.Join(root.Path, "sideload_apps", "library.json"),
		}},
	}

	var found []string
	for _, manifest := range manifests {
		for _, path := range manifest.paths {
			if unix.Access(path, unix.R_OK) == nil {
				found = append(found, manifest.label)
				break
			}
		}
	}
	if len(found) == 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: no readable Heroic manifests)", root.Path)}
	}
	return Result{Name: name, Passed: true, Detail: strings.Join(found, ", ")}
}

// CheckTitleDatabase opens the title database and reports how many titles
// it holds. A missing or empty database fails since no game could match.
func CheckTitleDatabase(ctx context.Context, path string) Result {
	const name = "Title database"

	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Detail: "path not set"}
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: not created; run 'savescout titles import')", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}

	db, err := titles.Open(path, nil)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	defer db.Close()

	count, err := db.Count(ctx)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: count: %v)", path, err)}
	}
	if count == 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: no titles imported)", path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d titles)", path, count)}
}
