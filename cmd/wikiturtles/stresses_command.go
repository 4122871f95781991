package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wikiturtles/internal/meter"
)

func newStressesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stresses TITLE",
		Short: "Show how a title resolves to a stress pattern, token by token",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier, err := ctx.classifier()
			if err != nil {
				return err
			}
			analysis := classifier.Analyze(strings.Join(args, " "))

			out := cmd.OutOrStdout()
			if len(analysis.Steps) > 0 {
				fmt.Fprintln(out, renderTable(
					[]string{"Token", "Result", "Source", "Stresses"},
					stepRows(analysis.Steps),
					3,
				))
			}
			color := shouldColorize(out)
			fmt.Fprintf(out, "Cleaned:  %s\n", analysis.Cleaned)
			fmt.Fprintf(out, "Stresses: %s\n", analysis.Stresses)
			fmt.Fprintf(out, "Verdict:  %s\n", colorize(string(analysis.Verdict), verdictColor(analysis.Verdict), color))
			return nil
		},
	}
}

func stepRows(steps []meter.Step) [][]string {
	rows := make([][]string, 0, len(steps))
	for _, step := range steps {
		res := step.Resolution
		value := res.StressString()
		if res.Kind == meter.Expanded {
			value = strings.Join(res.Expansion, " ")
		}
		rows = append(rows, []string{step.Token, res.Kind.String(), string(res.Source), value})
	}
	return rows
}
