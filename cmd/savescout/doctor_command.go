package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"savescout/internal/preflight"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

const doctorLabelWidth = 28

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that roots and the title database are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(cmd.Context(), cfg)

			if err := ctx.emit(cmd, results, func(out io.Writer) error {
				colorize := isTerminal(out)
				for _, result := range results {
					fmt.Fprintln(out, renderCheckLine(result, colorize))
				}
				return nil
			}); err != nil {
				return err
			}

			failed := 0
			for _, result := range results {
				if !result.Passed {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(results))
			}
			return nil
		},
	}
}

func renderCheckLine(result preflight.Result, colorize bool) string {
	status, color := "OK", ansiGreen
	if !result.Passed {
		status, color = "FAIL", ansiRed
	}
	line := fmt.Sprintf("  %-*s [%s]", doctorLabelWidth, result.Name+":", status)
	if result.Detail != "" {
		line += " " + result.Detail
	}
	if colorize {
		return color + line + ansiReset
	}
	return line
}

