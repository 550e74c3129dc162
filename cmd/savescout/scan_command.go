package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"savescout/internal/config"
	"savescout/internal/filter"
	"savescout/internal/heroic"
	"savescout/internal/launcher"
	"savescout/internal/logging"
	"savescout/internal/titles"
)

type scanEntry struct {
	Title string `json:"title"`
	launcher.Game
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	var rootPath string
	var storeName string
	var expression string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List installed games found in the configured launcher roots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			match, err := filter.Compile(expression)
			if err != nil {
				return err
			}
			return ctx.withTitles(func(cfg *config.Config, logger *slog.Logger, db *titles.Database) error {
				roots, err := scanRoots(cfg, rootPath, storeName)
				if err != nil {
					return err
				}
				games := scanAll(cmd, cfg, logger, db, roots)
				selected, err := match.Apply(games)
				if err != nil {
					return err
				}
				logger.Info("scan complete",
					logging.String(logging.FieldEventType, "scan_complete"),
					logging.Int("root_count", len(roots)),
					logging.Int("game_count", games.Len()),
					logging.Int("selected_count", selected.Len()))
				return ctx.emit(cmd, scanEntries(selected), func(out io.Writer) error {
					return renderGames(out, selected)
				})
			})
		},
	}

	cmd.Flags().StringVar(&rootPath, "root", "", "Scan only this directory instead of the configured roots")
	cmd.Flags().StringVar(&storeName, "store", string(launcher.StoreHeroic), "Store of the --root directory ("+storeNames()+")")
	cmd.Flags().StringVar(&expression, "filter", "", "Only list games matching this expression (fields: title, platform, install_dir, prefix, has_prefix)")
	return cmd
}

func scanRoots(cfg *config.Config, rootPath, storeName string) ([]launcher.Root, error) {
	if strings.TrimSpace(rootPath) == "" {
		if len(cfg.Roots) == 0 {
			return nil, errors.New("no roots configured; add a [[roots]] entry to the config or pass --root")
		}
		return cfg.Roots, nil
	}
	path, err := config.ExpandPath(rootPath)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}
	store, err := launcher.ParseStore(storeName)
	if err != nil {
		return nil, err
	}
	return []launcher.Root{{Path: path, Store: store}}, nil
}

// scanAll scans roots in order. A title found in several roots keeps the
// entry from the last one.
func scanAll(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, finder titles.Finder, roots []launcher.Root) *launcher.Games {
	loader := heroic.NewLoader(logger, heroic.WithLegendaryConfigDir(cfg.Heroic.LegendaryConfigDir))
	scanner := heroic.NewScanner(finder, logger,
		heroic.WithLoader(loader),
		heroic.WithDebug(cfg.Diagnostics.Debug),
		heroic.WithDiagnostics(cmd.ErrOrStderr()),
	)

	games := launcher.NewGames()
	for _, root := range roots {
		found := scanner.Scan(root)
		logger.Debug("scanned root",
			logging.String(logging.FieldRoot, root.Path),
			logging.String("store", root.Store.String()),
			logging.Int("game_count", found.Len()))
		games.Merge(found)
	}
	return games
}

func scanEntries(games *launcher.Games) []scanEntry {
	entries := make([]scanEntry, 0, games.Len())
	games.Each(func(title string, game launcher.Game) bool {
		entries = append(entries, scanEntry{Title: title, Game: game})
		return true
	})
	return entries
}

func renderGames(out io.Writer, games *launcher.Games) error {
	if games.Len() == 0 {
		_, err := fmt.Fprintln(out, "No games found")
		return err
	}
	rows := make([][]string, 0, games.Len())
	games.Each(func(title string, game launcher.Game) bool {
		rows = append(rows, []string{title, game.Platform.String(), game.InstallDir, game.Prefix})
		return true
	})
	return renderRows(out, []string{"Title", "Platform", "Install Dir", "Prefix"}, rows, nil)
}

func storeNames() string {
	stores := launcher.Stores()
	names := make([]string, 0, len(stores))
	for _, store := range stores {
		names = append(names, store.String())
	}
	return strings.Join(names, ", ")
}
