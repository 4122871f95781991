package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wikiturtles/internal/title"
)

func newPadCommand() *cobra.Command {
	var fragment bool

	cmd := &cobra.Command{
		Use:         "pad TITLE",
		Short:       "Pad a title for the logo generator",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			padded := title.AddPadding(strings.Join(args, " "))
			if fragment {
				padded = title.LogoFragment(padded)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q\n", padded)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fragment, "fragment", false, "Print the URL fragment instead of the padded title")
	return cmd
}

func newURLCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "url TITLE",
		Short: "Print the Wikipedia article link for a title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), title.WikiURLWithBase(cfg.Wikipedia.ArticleBaseURL, strings.Join(args, " ")))
			return nil
		},
	}
}
