package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	jsonlexperience "github.com/bnema/council-cli/internal/adapters/experience/jsonl"
	"github.com/bnema/council-cli/internal/application"
	"github.com/spf13/cobra"
)

var errExperienceDisabled = errors.New("experience log is disabled (experience.backend = off)")

func newSuperviseCmd(app *app) *cobra.Command {
	var outPath string
	var limit int
	var endpoint string

	cmd := &cobra.Command{
		Use:   "supervise",
		Short: "Turn recorded experiences into supervised training samples",
		Long: "Each recorded experience is sent to an endpoint with a request to improve the original answer; " +
			"the rewrite is appended to a JSONL dataset of {context, response} samples.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if app.settings.experienceBackend == experienceBackendOff {
				return errExperienceDisabled
			}

			sess, err := app.openSession(ctx)
			if err != nil {
				return err
			}
			defer sess.close()

			target := endpoint
			if target == "" {
				target = sess.roster.EvaluatorEndpoint()
			}
			if !sess.router.Has(target) {
				return fmt.Errorf("endpoint %q is not available", target)
			}

			if outPath == "" {
				outPath = filepath.Join(filepath.Dir(app.settings.experiencePath), "dataset.jsonl")
			}
			sink, err := jsonlexperience.NewDatasetWriter(outPath)
			if err != nil {
				return err
			}

			supervisor := application.NewSupervisorService(sess.experiences, sink, sess.router, target, app.settings.systemPrompt, app.logger)

			var report application.SupervisionReport
			err = runWithSpinner(ctx, cmd.ErrOrStderr(), superviseTask, func(ctx context.Context) error {
				var err error
				report, err = supervisor.Run(ctx, limit)
				return err
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Supervised %d experiences via %s: %d written, %d skipped (%s).\n",
				report.Processed, target, report.Written, report.Skipped, outPath)
			return err
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Dataset path (default dataset.jsonl next to the experience log)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum experiences to process (0 for all)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Endpoint that rewrites answers (default the evaluator)")

	return cmd
}
