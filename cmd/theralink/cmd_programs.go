package main

import (
	"github.com/spf13/cobra"
)

var programsCmd = &cobra.Command{
	Use:   "programs",
	Short: "Manage rehabilitation programs",
}

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List programs",
	}
	opts := listFlags(listCmd)
	listCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		programs, page, err := client.Programs().List(ctx, opts())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), struct {
			Programs any `json:"programs"`
			Meta     any `json:"meta,omitempty"`
		}{programs, page})
	}

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			program, err := client.Programs().Get(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), program)
		},
	}

	assignCmd := &cobra.Command{
		Use:   "assign <program-id> <client-id>",
		Short: "Assign a program to a client",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			program, err := client.Programs().Assign(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), program)
		},
	}

	programsCmd.AddCommand(listCmd, getCmd, assignCmd)
}
