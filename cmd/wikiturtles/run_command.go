package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"wikiturtles/internal/botrun"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var noRender bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Find a title, draw its logo, and post it",
		RunE: func(cmd *cobra.Command, args []string) error {
			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			result, err := botrun.Run(signalCtx, cfg, botrun.Options{
				DryRun:   dryRun,
				NoRender: noRender,
				Logger:   logger,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run:      %s (%s)\n", result.RunID, result.Outcome)
			fmt.Fprintf(out, "Title:    %s\n", result.Title)
			fmt.Fprintf(out, "Stresses: %s\n", result.Stresses)
			fmt.Fprintf(out, "Link:     %s\n", result.WikiURL)
			if result.LogoPath != "" {
				fmt.Fprintf(out, "Logo:     %s\n", result.LogoPath)
			}
			if result.Receipt.URL != "" {
				fmt.Fprintf(out, "Posted:   %s\n", result.Receipt.URL)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log the status instead of posting it")
	cmd.Flags().BoolVar(&noRender, "no-render", false, "Skip drawing the logo")
	return cmd
}
