package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"wikiturtles/internal/botrun"
	"wikiturtles/internal/config"
	"wikiturtles/internal/fileutil"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "render TITLE",
		Short: "Draw the logo for a title with headless Chrome",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			renderer, err := botrun.NewRenderer(cfg, logger)
			if err != nil {
				return err
			}

			path, err := renderer.Render(signalCtx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if target := strings.TrimSpace(outPath); target != "" {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
				if err := fileutil.CopyFile(path, expanded); err != nil {
					return fmt.Errorf("copy logo: %w", err)
				}
				path = expanded
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logo written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Also copy the logo to this path")
	return cmd
}
