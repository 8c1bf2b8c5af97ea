package cmd

import (
	"fmt"

	"github.com/bnema/council-cli/internal/adapters/render/console"
	"github.com/spf13/cobra"
)

func newTranscriptCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcript",
		Short: "Inspect or clear the saved conversation",
	}

	cmd.AddCommand(newTranscriptShowCmd(app), newTranscriptClearCmd(app))

	return cmd
}

func newTranscriptShowCmd(app *app) *cobra.Command {
	var asJSON bool
	var includeSystem bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved transcript",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			messages := app.newTranscriptStore().Load(cmd.Context()).Messages()

			if asJSON {
				rendered, err := console.RenderTranscriptJSON(messages)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), console.RenderTranscript(messages, includeSystem))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the transcript as stored JSON")
	cmd.Flags().BoolVar(&includeSystem, "system", false, "Include the system prompt")

	return cmd
}

func newTranscriptClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Reset the transcript to the system prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := app.newTranscriptStore()
			store.Load(cmd.Context())
			if err := store.Reset(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Transcript cleared (%s).\n", app.transcripts.Path())
			return err
		},
	}
}
