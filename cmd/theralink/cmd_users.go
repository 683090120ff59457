package main

import (
	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage practitioner and administrator accounts",
}

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
	}
	opts := listFlags(listCmd)
	listCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		users, page, err := client.Users().List(ctx, opts())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), struct {
			Users any `json:"users"`
			Meta  any `json:"meta,omitempty"`
		}{users, page})
	}

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			user, err := client.Users().Get(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), user)
		},
	}

	usersCmd.AddCommand(listCmd, getCmd)
}
