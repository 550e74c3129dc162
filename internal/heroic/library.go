package heroic

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"savescout/internal/launcher"
)

// libraryFile is the shape of gog_store/library.json and
// sideload_apps/library.json. Pointer fields are required; a missing one
// makes the whole file malformed.
type libraryFile struct {
	Games *[]libraryGame `json:"games"`
}

type libraryGame struct {
	AppName *string `json:"app_name"`
	Title   *string `json:"title"`
	Install *struct {
		Platform *string `json:"platform"`
	} `json:"install"`
	FolderName *string `json:"folder_name"`
}

func (g libraryGame) validate() error {
	switch {
	case g.AppName == nil:
		return errors.New("missing app_name")
	case g.Title == nil:
		return errors.New("missing title")
	case g.Install == nil:
		return errors.New("missing install")
	case g.Install.Platform == nil:
		return errors.New("missing install.platform")
	case g.FolderName == nil:
		return errors.New("missing folder_name")
	}
	return nil
}

func decodeLibrary(data []byte) ([]Record, error) {
	var file libraryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if file.Games == nil {
		return nil, errors.New("missing games")
	}
	records := make([]Record, 0, len(*file.Games))
	for i, game := range *file.Games {
		if err := game.validate(); err != nil {
			return nil, fmt.Errorf("games[%d]: %w", i, err)
		}
		records = append(records, Record{
			AppName:    *game.AppName,
			Title:      *game.Title,
			Platform:   *game.Install.Platform,
			InstallDir: *game.FolderName,
		})
	}
	return records, nil
}

// installedFile is the shape of gog_store/installed.json.
type installedFile struct {
	Installed *[]installedGame `json:"installed"`
}

type installedGame struct {
	AppName     *string `json:"appName"`
	Platform    *string `json:"platform"`
	InstallPath *string `json:"install_path"`
}

func (g installedGame) validate() error {
	switch {
	case g.AppName == nil:
		return errors.New("missing appName")
	case g.Platform == nil:
		return errors.New("missing platform")
	case g.InstallPath == nil:
		return errors.New("missing install_path")
	}
	return nil
}

func decodeInstalled(data []byte) ([]Record, error) {
	var file installedFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if file.Installed == nil {
		return nil, errors.New("missing installed")
	}
	records := make([]Record, 0, len(*file.Installed))
	for i, game := range *file.Installed {
		if err := game.validate(); err != nil {
			return nil, fmt.Errorf("installed[%d]: %w", i, err)
		}
		records = append(records, Record{
			AppName:    *game.AppName,
			Platform:   *game.Platform,
			InstallDir: *game.InstallPath,
		})
	}
	return records, nil
}

// GOGLibrary reads the GOG library, which lists every owned game with its
// title. Newer Heroic versions moved it to store_cache/gog_library.json.
func (l *Loader) GOGLibrary(root launcher.Root) Loaded[Record] {
	return loadManifest(l.logger, "GOG library", []string{
		filepath.Join(root.Path, "gog_store", "library.json"),
		filepath.Join(root.Path, "store_cache", "gog_library.json"),
	}, decodeLibrary)
}

// GOGInstalled reads the list of installed GOG games. Entries carry no title.
func (l *Loader) GOGInstalled(root launcher.Root) Loaded[Record] {
	return loadManifest(l.logger, "GOG installed games", []string{
		filepath.Join(root.Path, "gog_store", "installed.json"),
	}, decodeInstalled)
}

// SideloadLibrary reads sideloaded apps. It shares the GOG library schema.
func (l *Loader) SideloadLibrary(root launcher.Root) Loaded[Record] {
	return loadManifest(l.logger, "sideload library", []string{
		filepath.Join(root.Path, "sideload_apps", "library.json"),
	}, decodeLibrary)
}
