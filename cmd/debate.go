package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/council-cli/internal/adapters/render/console"
	"github.com/bnema/council-cli/internal/application"
	"github.com/spf13/cobra"
)

func newDebateCmd(app *app) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "debate <prompt...>",
		Short: "Run one full council turn and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sess, err := app.openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.close()

			sess.store.Load(ctx)
			printer := console.NewPrinter(cmd.OutOrStdout())

			report, turnErr := app.turn(ctx, sess, strings.Join(args, " "), cmd.ErrOrStderr())
			if verbose {
				writeContributions(cmd.OutOrStdout(), report.Debate.Contributions)
			}
			if turnErr == nil {
				printer.Turn(report)
			}

			if err := sess.store.Persist(ctx); err != nil {
				return err
			}
			return turnErr
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every persona contribution before the answer")

	return cmd
}

func runTurn(ctx context.Context, app *app, sess *session, input string, printer *console.Printer, spinnerOut io.Writer) error {
	report, err := app.turn(ctx, sess, input, spinnerOut)
	if err != nil {
		return err
	}
	printer.Turn(report)

	return nil
}

func turn(ctx context.Context, sess *session, input string, spinnerOut io.Writer) (application.TurnReport, error) {
	var report application.TurnReport
	err := runWithSpinner(ctx, spinnerOut, debateTask, func(ctx context.Context) error {
		var err error
		report, err = sess.conversation.Turn(ctx, input)
		return err
	})

	return report, err
}

func writeContributions(w io.Writer, contributions []application.Contribution) {
	for _, contribution := range contributions {
		_, _ = fmt.Fprintf(w, "[round %d] %s: %s\n", contribution.Round, contribution.Persona, contribution.Reply)
	}
}
