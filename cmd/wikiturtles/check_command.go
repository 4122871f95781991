package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var showVerdict bool

	cmd := &cobra.Command{
		Use:   "check [TITLE...]",
		Short: "Report whether titles scan like Teenage Mutant Ninja Turtles",
		Long: "Report yes or no for each title. Each argument is one title; with no\n" +
			"arguments titles are read from stdin, one per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier, err := ctx.classifier()
			if err != nil {
				return err
			}

			titles := args
			if len(titles) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					if line := strings.TrimSpace(scanner.Text()); line != "" {
						titles = append(titles, line)
					}
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("read titles: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			color := shouldColorize(out)
			for _, title := range titles {
				analysis := classifier.Analyze(title)
				mark := fmt.Sprintf("%-3s", yesNo(analysis.Accepted))
				mark = colorize(mark, verdictColor(analysis.Verdict), color)
				if showVerdict {
					fmt.Fprintf(out, "%s  %s (%s)\n", mark, title, analysis.Verdict)
				} else {
					fmt.Fprintf(out, "%s  %s\n", mark, title)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showVerdict, "verdict", "v", false, "Show why each title was accepted or rejected")
	return cmd
}
