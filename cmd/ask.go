package cmd

import (
	"strings"

	"github.com/bnema/council-cli/internal/adapters/render/console"
	"github.com/spf13/cobra"
)

func newAskCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask the fallback endpoints directly, skipping the debate",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sess, err := app.openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.close()

			sess.store.Load(ctx)
			report, err := sess.conversation.Quick(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			console.NewPrinter(cmd.OutOrStdout()).Quick(report)

			return sess.store.Persist(ctx)
		},
	}
}
