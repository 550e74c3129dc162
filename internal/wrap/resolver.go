package wrap

import (
	"log/slog"
	"os"

	"savescout/internal/heroic"
	"savescout/internal/launcher"
	"savescout/internal/logging"
)

// Environment variables Heroic sets for launched games.
const (
	EnvAppName   = "HEROIC_APP_NAME"
	EnvAppRunner = "HEROIC_APP_RUNNER"
	EnvAppSource = "HEROIC_APP_SOURCE"
)

// LibrarySource reads the manifests the resolver searches.
// *heroic.Loader satisfies it.
type LibrarySource interface {
	GOGLibrary(root launcher.Root) heroic.Loaded[heroic.Record]
	LegendaryInstalled(root launcher.Root) heroic.Loaded[heroic.Record]
}

// LookupFunc reads an environment variable.
type LookupFunc func(key string) (string, bool)

// Resolver maps Heroic app names to titles.
type Resolver struct {
	source LibrarySource
	logger *slog.Logger
}

// NewResolver constructs a Resolver reading manifests through source. A nil
// source falls back to a default heroic.Loader.
func NewResolver(source LibrarySource, logger *slog.Logger) *Resolver {
	if source == nil {
		source = heroic.NewLoader(logger)
	}
	return &Resolver{
		source: source,
		logger: logging.NewComponentLogger(logger, "wrap"),
	}
}

// FindInRoots returns the raw manifest title of appName from the first
// Heroic root that lists it. Roots of other stores are skipped. Runners the
// resolver cannot search are reported and never touch the filesystem.
func (r *Resolver) FindInRoots(roots []launcher.Root, appName string, runner Runner) (string, bool) {
	switch runner.Kind {
	case RunnerGOG, RunnerLegendary:
	case RunnerNile, RunnerSideload:
		logging.WarnWithContext(r.logger, "heroic runner '"+runner.Kind.String()+"' not supported", "runner_unsupported",
			logging.String(logging.FieldRunner, runner.Raw),
			logging.String(logging.FieldAppName, appName),
			logging.String(logging.FieldErrorHint, "only gog and legendary games can be resolved"),
			logging.String(logging.FieldImpact, "game title not resolved"))
		return "", false
	default:
		logging.WarnWithContext(r.logger, "unknown heroic runner '"+runner.Raw+"'", "runner_unknown",
			logging.String(logging.FieldRunner, runner.Raw),
			logging.String(logging.FieldAppName, appName),
			logging.String(logging.FieldErrorHint, "expected one of gog, legendary, nile, sideload"),
			logging.String(logging.FieldImpact, "game title not resolved"))
		return "", false
	}

	for _, root := range roots {
		if root.Store != launcher.StoreHeroic {
			continue
		}
		r.logger.Debug("checking root",
			logging.String(logging.FieldRoot, root.Path),
			logging.String(logging.FieldRunner, runner.Kind.String()))

		var loaded heroic.Loaded[heroic.Record]
		if runner.Kind == RunnerGOG {
			loaded = r.source.GOGLibrary(root)
		} else {
			loaded = r.source.LegendaryInstalled(root)
		}
		for _, record := range loaded.Items {
			if record.AppName == appName {
				r.logger.Debug("resolved heroic game",
					logging.String(logging.FieldAppName, appName),
					logging.String(logging.FieldTitle, record.Title),
					logging.String(logging.FieldRoot, root.Path))
				return record.Title, true
			}
		}
	}
	return "", false
}

// FromEnvironment resolves the game Heroic is launching from its
// environment variables. A nil lookup reads the process environment.
// Missing variables mean the process was not started by Heroic and yield no
// match without logging a warning.
func (r *Resolver) FromEnvironment(roots []launcher.Root, lookup LookupFunc) (string, bool) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	appName, ok := lookup(EnvAppName)
	if !ok {
		return "", false
	}
	rawRunner, ok := lookup(EnvAppRunner)
	if !ok {
		return "", false
	}
	source, _ := lookup(EnvAppSource)

	r.logger.Debug("found heroic environment",
		logging.String(logging.FieldAppName, appName),
		logging.String(logging.FieldRunner, rawRunner),
		logging.String("app_source", source))

	return r.FindInRoots(roots, appName, ParseRunner(rawRunner))
}
