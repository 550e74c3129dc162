package heroic

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"savescout/internal/logging"
)

// LoadStatus tells how reading a manifest went.
type LoadStatus int

const (
	LoadOK LoadStatus = iota
	LoadMissing
	LoadMalformed
)

func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadMissing:
		return "missing"
	case LoadMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("LoadStatus(%d)", int(s))
	}
}

// Loaded is the result of reading one manifest. Items is empty unless
// Status is LoadOK.
type Loaded[T any] struct {
	Items  []T
	Status LoadStatus
	Path   string
	Err    error
}

// loadManifest reads the first existing candidate and decodes it. Failures
// are logged here so callers only branch on Status.
func loadManifest[T any](logger *slog.Logger, what string, candidates []string, decode func([]byte) ([]T, error)) Loaded[T] {
	path := firstFile(candidates)
	if path == "" {
		missing := ""
		if len(candidates) > 0 {
			missing = candidates[0]
		}
		logging.WarnWithContext(logger, "could not find "+what, "manifest_missing",
			logging.String(logging.FieldPath, missing),
			logging.String(logging.FieldErrorHint, "check the root path in the config"),
			logging.String(logging.FieldImpact, "no games from this manifest"))
		return Loaded[T]{Status: LoadMissing, Path: missing}
	}

	data, err := os.ReadFile(path)
	if err == nil {
		var items []T
		items, err = decode(data)
		if err == nil {
			logging.Trace(logger, "loaded "+what,
				logging.String(logging.FieldPath, path),
				logging.Int("game_count", len(items)))
			return Loaded[T]{Items: items, Status: LoadOK, Path: path}
		}
	}

	logging.WarnWithContext(logger, "unable to parse "+what, "manifest_malformed",
		logging.String(logging.FieldPath, path),
		logging.Error(err),
		logging.String(logging.FieldErrorHint, "let Heroic rewrite the file or remove it"),
		logging.String(logging.FieldImpact, "no games from this manifest"))
	return Loaded[T]{Status: LoadMalformed, Path: path, Err: err}
}

func firstFile(candidates []string) string {
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			// Unreadable but present: let ReadFile report it as malformed.
			return candidate
		}
	}
	return ""
}
