package heroic

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"savescout/internal/launcher"
)

type legendaryGame struct {
	AppName     string  `json:"app_name"`
	Title       *string `json:"title"`
	Platform    *string `json:"platform"`
	InstallPath *string `json:"install_path"`
}

func (g legendaryGame) validate() error {
	switch {
	case g.Title == nil:
		return errors.New("missing title")
	case g.Platform == nil:
		return errors.New("missing platform")
	case g.InstallPath == nil:
		return errors.New("missing install_path")
	}
	return nil
}

// decodeLegendary decodes installed.json, an object keyed by app name, in
// document order.
func decodeLegendary(data []byte) ([]Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, found %v", tok)
	}

	var records []Record
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)
		var game legendaryGame
		if err := dec.Decode(&game); err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
		if err := game.validate(); err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
		if game.AppName == "" {
			game.AppName = key
		}
		records = append(records, Record{
			AppName:    game.AppName,
			Title:      *game.Title,
			Platform:   *game.Platform,
			InstallDir: *game.InstallPath,
		})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected data after object: %v", tok)
	}
	return records, nil
}

// LegendaryInstalled reads the Epic games Legendary has installed for a
// Heroic root.
func (l *Loader) LegendaryInstalled(root launcher.Root) Loaded[Record] {
	return l.LegendaryInstalledAt(l.legendaryConfigDir(root.Path))
}

// LegendaryInstalledAt reads installed.json from a standalone Legendary
// config directory.
func (l *Loader) LegendaryInstalledAt(dir string) Loaded[Record] {
	return loadManifest(l.logger, "Legendary installed games", []string{
		filepath.Join(dir, "installed.json"),
	}, decodeLegendary)
}
