package heroic

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"savescout/internal/launcher"
	"savescout/internal/logging"
	"savescout/internal/titles"
)

// Scanner builds canonical-title mappings for Heroic roots.
type Scanner struct {
	finder titles.Finder
	loader *Loader
	prober PrefixProber
	logger *slog.Logger
	debug  bool
	diag   io.Writer
}

// ScannerOption customizes a Scanner.
type ScannerOption func(*Scanner)

// WithLoader replaces the default manifest loader.
func WithLoader(loader *Loader) ScannerOption {
	return func(s *Scanner) {
		if loader != nil {
			s.loader = loader
		}
	}
}

// WithPrefixProber replaces the GamesConfig prober.
func WithPrefixProber(prober PrefixProber) ScannerOption {
	return func(s *Scanner) {
		if prober != nil {
			s.prober = prober
		}
	}
}

// WithDebug echoes unrecognized games to the diagnostics writer.
func WithDebug(debug bool) ScannerOption {
	return func(s *Scanner) {
		s.debug = debug
	}
}

// WithDiagnostics sets where debug echoes go (stderr by default).
func WithDiagnostics(w io.Writer) ScannerOption {
	return func(s *Scanner) {
		if w != nil {
			s.diag = w
		}
	}
}

// NewScanner constructs a Scanner resolving titles through finder.
func NewScanner(finder titles.Finder, logger *slog.Logger, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		finder: finder,
		logger: logging.NewComponentLogger(logger, "heroic"),
		diag:   os.Stderr,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.loader == nil {
		s.loader = NewLoader(logger)
	}
	if s.prober == nil {
		s.prober = NewGamesConfigProber(logger)
	}
	return s
}

// Scan dispatches on the root's store. Heroic roots merge their GOG,
// Legendary, and sideload games in that order; later stores win on title
// collisions. Roots of other stores yield an empty mapping.
func (s *Scanner) Scan(root launcher.Root) *launcher.Games {
	switch root.Store {
	case launcher.StoreHeroic:
		games := s.ScanGOG(root)
		games.Merge(s.ScanLegendary(root))
		games.Merge(s.ScanSideload(root))
		return games
	case launcher.StoreLegendary:
		return s.ScanLegendaryDir(root, root.Path)
	default:
		s.logger.Debug("no launcher scanner for store",
			logging.String(logging.FieldRoot, root.Path),
			logging.String("store", root.Store.String()))
		return launcher.NewGames()
	}
}

// ScanGOG resolves installed GOG games. Titles come from the library
// manifest since installed.json has none.
func (s *Scanner) ScanGOG(root launcher.Root) *launcher.Games {
	installed := s.loader.GOGInstalled(root)
	if installed.Status != LoadOK || len(installed.Items) == 0 {
		return launcher.NewGames()
	}
	library := s.loader.GOGLibrary(root)
	index := TitleIndex{}
	if library.Status == LoadOK {
		index = IndexRecords(library.Items)
	}
	return s.resolve(root, "GOG", installed.Items, index)
}

// ScanLegendary resolves Epic games installed through Heroic's Legendary.
func (s *Scanner) ScanLegendary(root launcher.Root) *launcher.Games {
	return s.fromLoaded(root, "Legendary", s.loader.LegendaryInstalled(root))
}

// ScanLegendaryDir resolves Epic games from a standalone Legendary config
// directory, probing prefixes under root.
func (s *Scanner) ScanLegendaryDir(root launcher.Root, dir string) *launcher.Games {
	return s.fromLoaded(root, "Legendary", s.loader.LegendaryInstalledAt(dir))
}

// ScanSideload resolves sideloaded apps.
func (s *Scanner) ScanSideload(root launcher.Root) *launcher.Games {
	return s.fromLoaded(root, "sideload", s.loader.SideloadLibrary(root))
}

func (s *Scanner) fromLoaded(root launcher.Root, source string, loaded Loaded[Record]) *launcher.Games {
	switch loaded.Status {
	case LoadOK:
		return s.resolve(root, source, loaded.Items, IndexRecords(loaded.Items))
	case LoadMissing, LoadMalformed:
		// Already logged by the loader.
	}
	return launcher.NewGames()
}

func (s *Scanner) resolve(root launcher.Root, source string, records []Record, index TitleIndex) *launcher.Games {
	games := launcher.NewGames()
	if len(records) == 0 {
		return games
	}

	for _, record := range records {
		displayTitle, ok := index.Lookup(record.AppName)
		if !ok {
			logging.Trace(s.logger, "no title for installed game",
				logging.String(logging.FieldAppName, record.AppName),
				logging.String("source", source))
			continue
		}

		official, ok := s.finder.FindOne(titles.Query{Names: []string{displayTitle}, Normalized: true})
		if !ok {
			logging.Trace(s.logger, "ignoring unrecognized game",
				logging.String(logging.FieldTitle, displayTitle),
				logging.String(logging.FieldAppName, record.AppName),
				logging.String("source", source))
			if s.debug {
				fmt.Fprintf(s.diag, "Ignoring unrecognized game from Heroic/%s: %s (app = %s)\n",
					source, displayTitle, record.AppName)
			}
			continue
		}

		logging.Trace(s.logger, "detected game",
			logging.String(logging.FieldTitle, official),
			logging.String(logging.FieldAppName, record.AppName),
			logging.String("raw_title", displayTitle))

		prefix, _ := s.prober.FindPrefix(root.Path, displayTitle, strings.ToLower(record.Platform), record.AppName)
		games.Put(official, launcher.Game{
			InstallDir: record.InstallDir,
			Prefix:     prefix,
			Platform:   launcher.ParsePlatform(record.Platform),
		})
	}

	return games
}
