package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"savescout/internal/config"
	"savescout/internal/titles"
)

func newTitlesCommand(ctx *commandContext) *cobra.Command {
	titlesCmd := &cobra.Command{
		Use:   "titles",
		Short: "Manage the canonical title database",
	}

	titlesCmd.AddCommand(newTitlesImportCommand(ctx))
	titlesCmd.AddCommand(newTitlesListCommand(ctx))
	titlesCmd.AddCommand(newTitlesCountCommand(ctx))
	titlesCmd.AddCommand(newTitlesSuggestCommand(ctx))

	return titlesCmd
}

func newTitlesImportCommand(ctx *commandContext) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import titles from a file with one title per line (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := readTitleFile(cmd, args[0])
			if err != nil {
				return err
			}
			return ctx.withTitles(func(_ *config.Config, _ *slog.Logger, db *titles.Database) error {
				added, err := db.Import(cmd.Context(), list, replace)
				if err != nil {
					return fmt.Errorf("import titles: %w", err)
				}
				total, err := db.Count(cmd.Context())
				if err != nil {
					return fmt.Errorf("count titles: %w", err)
				}
				result := map[string]int{"read": len(list), "added": added, "total": total}
				return ctx.emit(cmd, result, func(out io.Writer) error {
					_, err := fmt.Fprintf(out, "Imported %d new titles (%d read, %d total)\n", added, len(list), total)
					return err
				})
			})
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Drop existing titles before importing")
	return cmd
}

func readTitleFile(cmd *cobra.Command, path string) ([]string, error) {
	if path == "-" {
		return titles.ReadTitleList(cmd.InOrStdin())
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve title file: %w", err)
	}
	file, err := os.Open(expanded)
	if err != nil {
		return nil, fmt.Errorf("open title file: %w", err)
	}
	defer file.Close()
	list, err := titles.ReadTitleList(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", expanded, err)
	}
	return list, nil
}

func newTitlesListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withTitles(func(_ *config.Config, _ *slog.Logger, db *titles.Database) error {
				list, err := db.List(cmd.Context())
				if err != nil {
					return fmt.Errorf("list titles: %w", err)
				}
				if list == nil {
					list = []string{}
				}
				return ctx.emit(cmd, list, func(out io.Writer) error {
					if len(list) == 0 {
						_, err := fmt.Fprintln(out, "No titles stored")
						return err
					}
					rows := make([][]string, 0, len(list))
					for i, title := range list {
						rows = append(rows, []string{strconv.Itoa(i + 1), title})
					}
					return renderRows(out, []string{"#", "Title"}, rows, []columnAlignment{alignRight, alignLeft})
				})
			})
		},
	}
}

func newTitlesCountCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of stored titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withTitles(func(_ *config.Config, _ *slog.Logger, db *titles.Database) error {
				count, err := db.Count(cmd.Context())
				if err != nil {
					return fmt.Errorf("count titles: %w", err)
				}
				return ctx.emit(cmd, map[string]int{"count": count}, func(out io.Writer) error {
					_, err := fmt.Fprintln(out, count)
					return err
				})
			})
		},
	}
}

func newTitlesSuggestCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "suggest NAME",
		Short: "Show stored titles closest to a launcher's title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			return ctx.withTitles(func(_ *config.Config, _ *slog.Logger, db *titles.Database) error {
				if match, ok := db.FindOne(titles.Query{Names: []string{name}, Normalized: true}); ok {
					return ctx.emit(cmd, []titles.Suggestion{{Title: match, Score: 1}}, func(out io.Writer) error {
						_, err := fmt.Fprintf(out, "%s (matches)\n", match)
						return err
					})
				}
				list, err := db.List(cmd.Context())
				if err != nil {
					return fmt.Errorf("list titles: %w", err)
				}
				suggestions := titles.Suggest(list, name, limit)
				if suggestions == nil {
					suggestions = []titles.Suggestion{}
				}
				return ctx.emit(cmd, suggestions, func(out io.Writer) error {
					if len(suggestions) == 0 {
						_, err := fmt.Fprintln(out, "No similar titles")
						return err
					}
					rows := make([][]string, 0, len(suggestions))
					for _, s := range suggestions {
						rows = append(rows, []string{strconv.FormatFloat(s.Score, 'f', 2, 64), s.Title})
					}
					return renderRows(out, []string{"Score", "Title"}, rows, []columnAlignment{alignRight, alignLeft})
				})
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "Maximum number of suggestions")
	return cmd
}
