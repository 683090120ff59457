package main

import (
	"github.com/spf13/cobra"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage client (patient) records",
}

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List client records",
	}
	opts := listFlags(listCmd)
	listCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		records, page, err := client.Clients().List(ctx, opts())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), struct {
			Clients any `json:"clients"`
			Meta    any `json:"meta,omitempty"`
		}{records, page})
	}

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single client record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			record, err := client.Clients().Get(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), record)
		},
	}

	clientProgramsCmd := &cobra.Command{
		Use:   "programs <id>",
		Short: "List programs assigned to a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			programs, err := client.Clients().Programs(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), programs)
		},
	}

	clientsCmd.AddCommand(listCmd, getCmd, clientProgramsCmd)
}
