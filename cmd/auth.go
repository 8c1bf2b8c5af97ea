package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage endpoint API keys in the secret store",
	}

	cmd.AddCommand(newAuthSetCmd(app), newAuthRemoveCmd(app))

	return cmd
}

func newAuthSetCmd(app *app) *cobra.Command {
	var endpoint string
	var secretValue string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the API key for an endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.credentials.SetKey(cmd.Context(), endpoint, secretValue); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Stored API key for endpoint %q.\n", endpoint)
			return err
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Endpoint name from the roster")
	cmd.Flags().StringVar(&secretValue, "secret-value", "", "API key value")
	_ = cmd.MarkFlagRequired("endpoint")
	_ = cmd.MarkFlagRequired("secret-value")

	return cmd
}

func newAuthRemoveCmd(app *app) *cobra.Command {
	var endpoint string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove the stored API key for an endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.credentials.RemoveKey(cmd.Context(), endpoint); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Removed API key for endpoint %q.\n", endpoint)
			return err
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Endpoint name from the roster")
	_ = cmd.MarkFlagRequired("endpoint")

	return cmd
}
