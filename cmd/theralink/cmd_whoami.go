package main

import (
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently authenticated user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		user, err := client.Auth().Me(ctx)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), user)
	},
}
