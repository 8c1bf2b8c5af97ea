package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "council",
		Short: "council: a terminal assistant backed by a debating panel of models",
		Long: "council sends every prompt to a roster of model personas that debate for a few rounds, " +
			"lets a moderator synthesize one answer, and runs any COUNCIL_CMD shell directives it contains " +
			"behind a blocklist, feeding the output back into a persistent transcript.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	chatCmd := newChatCmd(app)
	rootCmd.RunE = chatCmd.RunE

	rootCmd.AddCommand(
		newVersionCmd(),
		chatCmd,
		newAskCmd(app),
		newDebateCmd(app),
		newTranscriptCmd(app),
		newRosterCmd(app),
		newAuthCmd(app),
		newSuperviseCmd(app),
	)

	return rootCmd
}
