package main

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"wikiturtles/internal/botrun"
	"wikiturtles/internal/search"
	"wikiturtles/internal/title"
	"wikiturtles/internal/wikipedia"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var attempts int
	var batch int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Pull random Wikipedia titles until one scans",
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
			classifier, err := ctx.classifier()
			if err != nil {
				return err
			}
			botrun.WarnSeedOnly(cfg, logger)
			client, err := wikipedia.New(cfg.Wikipedia.APIURL, cfg.Wikipedia.UserAgent,
				wikipedia.WithTimeout(time.Duration(cfg.Wikipedia.TimeoutSeconds)*time.Second))
			if err != nil {
				return err
			}

			opts := search.Options{
				MaxAttempts:    cfg.Search.MaxAttempts,
				BatchSize:      cfg.Search.BatchSize,
				Backoff:        cfg.SearchBackoff(),
				TimeoutBackoff: cfg.SearchTimeoutBackoff(),
				Logger:         logger,
			}
			if attempts > 0 {
				opts.MaxAttempts = attempts
			}
			if batch > 0 {
				opts.BatchSize = batch
			}
			searcher, err := search.New(client, classifier, opts)
			if err != nil {
				return err
			}

			match, stats, err := searcher.Find(signalCtx)
			out := cmd.OutOrStdout()
			if err != nil {
				if errors.Is(err, search.ErrNoMatch) {
					fmt.Fprintf(out, "No title scanned after %d attempts (%d titles, %d timeouts)\n",
						stats.Attempts, stats.TitlesChecked, stats.Timeouts)
				}
				return err
			}
			fmt.Fprintf(out, "Title:    %s\n", match.Title)
			fmt.Fprintf(out, "Stresses: %s\n", match.Stresses)
			fmt.Fprintf(out, "Link:     %s\n", title.WikiURLWithBase(cfg.Wikipedia.ArticleBaseURL, match.Title))
			fmt.Fprintf(out, "Attempts: %d (%d titles checked)\n", match.Attempts, match.TitlesChecked)
			return nil
		},
	}

	cmd.Flags().IntVar(&attempts, "attempts", 0, "Override search.max_attempts")
	cmd.Flags().IntVar(&batch, "batch", 0, "Override search.batch_size")
	return cmd
}
