package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wikiturtles/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check directories, dictionary, browser, and service credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			results := preflight.RunAll(cmd.Context(), cfg)
			out := cmd.OutOrStdout()
			color := shouldColorize(out)
			rows := make([][]string, 0, len(results))
			failed := 0
			for _, r := range results {
				mark := colorize("ok", ansiGreen, color)
				if !r.Passed {
					mark = colorize("fail", ansiRed, color)
					failed++
				}
				rows = append(rows, []string{r.Name, mark, r.Detail})
			}
			fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows))
			if failed > 0 {
				return errors.New(pluralize(failed, "check", "checks") + " failed")
			}
			return nil
		},
	}
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
