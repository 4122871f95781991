package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"wikiturtles/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent posts and runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			posts, err := store.RecentPosts(cmd.Context(), limit)
			if err != nil {
				return err
			}
			runs, err := store.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(posts) == 0 {
				fmt.Fprintln(out, "No posts yet")
			} else {
				rows := make([][]string, 0, len(posts))
				for _, p := range posts {
					rows = append(rows, []string{formatStamp(p.PostedAt), p.Title, p.Stresses, p.StatusURL})
				}
				fmt.Fprintln(out, renderTable([]string{"Posted", "Title", "Stresses", "Status"}, rows))
			}

			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs yet")
				return nil
			}
			rows := make([][]string, 0, len(runs))
			for _, r := range runs {
				rows = append(rows, []string{
					formatStamp(r.StartedAt),
					string(r.Outcome),
					strconv.Itoa(r.Attempts),
					strconv.Itoa(r.TitlesChecked),
					r.Title,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Started", "Outcome", "Attempts", "Checked", "Title"},
				rows,
				2, 3,
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of posts and runs to show")
	return cmd
}

func formatStamp(ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format("2006-01-02 15:04")
}
