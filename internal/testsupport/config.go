package testsupport

import (
	"path/filepath"
	"testing"

	"savescout/internal/config"
	"savescout/internal/launcher"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with a temp title database path.
// It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Titles.DatabasePath = filepath.Join(base, "titles.db")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithRoots appends roots to the test config.
func WithRoots(roots ...launcher.Root) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Roots = append(b.cfg.Roots, roots...)
	}
}

// WithDebug turns on diagnostics output.
func WithDebug() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Diagnostics.Debug = true
	}
}
