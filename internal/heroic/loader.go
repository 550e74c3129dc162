package heroic

import (
	"log/slog"
	"path/filepath"

	"savescout/internal/logging"
)

// Loader reads Heroic manifests below a root.
type Loader struct {
	logger *slog.Logger
	// legendaryDir replaces <root>/legendaryConfig/legendary when set.
	legendaryDir string
}

// LoaderOption customizes a Loader.
type LoaderOption func(*Loader)

// WithLegendaryConfigDir points Legendary lookups at a standalone config
// directory instead of the copy Heroic keeps under its root.
func WithLegendaryConfigDir(dir string) LoaderOption {
	return func(l *Loader) {
		l.legendaryDir = dir
	}
}

// NewLoader constructs a Loader. A nil logger discards output.
func NewLoader(logger *slog.Logger, opts ...LoaderOption) *Loader {
	l := &Loader{logger: logging.NewComponentLogger(logger, "heroic")}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

func (l *Loader) legendaryConfigDir(rootPath string) string {
	if l.legendaryDir != "" {
		return l.legendaryDir
	}
	return filepath.Join(rootPath, "legendaryConfig", "legendary")
}
