package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"savescout/internal/heroic"
	"savescout/internal/logging"
	"savescout/internal/wrap"
)

// errNoMatch is returned when no root knows the game.
var errNoMatch = errors.New("no match")

type resolveResult struct {
	Title   string `json:"title"`
	AppName string `json:"app_name,omitempty"`
	Runner  string `json:"runner,omitempty"`
}

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var appName string
	var runner string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the title of the game Heroic is launching",
		Long: "Resolve a Heroic app name to its title. Without flags the app name and runner\n" +
			"are read from " + wrap.EnvAppName + " and " + wrap.EnvAppRunner + ", which Heroic sets\n" +
			"for the processes it launches.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appName = strings.TrimSpace(appName)
			runner = strings.TrimSpace(runner)
			if (appName == "") != (runner == "") {
				return errors.New("--app-name and --runner must be given together")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			loader := heroic.NewLoader(logger, heroic.WithLegendaryConfigDir(cfg.Heroic.LegendaryConfigDir))
			resolver := wrap.NewResolver(loader, logger)

			var (
				title string
				ok    bool
			)
			if appName != "" {
				title, ok = resolver.FindInRoots(cfg.HeroicRoots(), appName, wrap.ParseRunner(runner))
			} else {
				title, ok = resolver.FromEnvironment(cfg.HeroicRoots(), nil)
			}
			if !ok {
				logging.Trace(logger, "no heroic game resolved",
					logging.String(logging.FieldAppName, appName),
					logging.String(logging.FieldRunner, runner))
				return errNoMatch
			}

			result := resolveResult{Title: title, AppName: appName, Runner: runner}
			return ctx.emit(cmd, result, func(out io.Writer) error {
				_, err := fmt.Fprintln(out, title)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&appName, "app-name", "", "Heroic app name (defaults to $"+wrap.EnvAppName+")")
	cmd.Flags().StringVar(&runner, "runner", "", "Heroic runner: gog, legendary, nile, sideload (defaults to $"+wrap.EnvAppRunner+")")
	return cmd
}
