package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/council-cli/internal/adapters/render/console"
	"github.com/spf13/cobra"
)

func newRosterCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Inspect and initialize the council roster",
	}

	cmd.AddCommand(newRosterShowCmd(app), newRosterInitCmd(app))

	return cmd
}

func newRosterShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show endpoints, personas and key status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := app.rosters.Status(cmd.Context())
			if err != nil {
				return err
			}

			rendered, err := console.RenderRoster(status)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(rendered, "\n"))
			return err
		},
	}
}

func newRosterInitCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the effective roster to disk for editing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			roster, err := app.rosters.Init(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Roster written to %s (%d endpoints, %d personas).\n",
				app.rosterPath, len(roster.Endpoints), len(roster.Personas))
			return err
		},
	}
}
