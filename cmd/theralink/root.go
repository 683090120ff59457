package main

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/spf13/cobra"

	theralink "github.com/theralink/client-go"
)

var rootFlags struct {
	baseURL string
	env     string
	timeout time.Duration
}

var rootCmd = &cobra.Command{
	Use:           "theralink",
	Short:         "Command-line access to the TheraLink API",
	Long:          "theralink wraps the TheraLink Go SDK.\nThe API key is read from THERALINK_API_KEY (a .env file in the working directory is honored).",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.baseURL, "base-url", "", "API base URL (overrides --env)")
	pf.StringVar(&rootFlags.env, "env", "", "Named environment: development, staging, production")
	pf.DurationVar(&rootFlags.timeout, "timeout", 0, "Per-attempt request timeout")

	rootCmd.AddCommand(whoamiCmd, usersCmd, clientsCmd, programsCmd)
}

// newClient builds an SDK client from the environment plus any flags.
func newClient() (*theralink.Client, error) {
	var opts []theralink.Option
	if rootFlags.env != "" {
		opts = append(opts, theralink.WithEnvironment(theralink.Environment(rootFlags.env)))
	}
	if rootFlags.baseURL != "" {
		opts = append(opts, theralink.WithBaseURL(rootFlags.baseURL))
	}
	if rootFlags.timeout > 0 {
		opts = append(opts, theralink.WithTimeout(rootFlags.timeout))
	}
	return theralink.NewFromEnv(opts...)
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 2*time.Minute)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// listFlags adds the shared pagination flags and returns accessors.
func listFlags(cmd *cobra.Command) func() theralink.ListOptions {
	var page, limit int
	var search string
	f := cmd.Flags()
	f.IntVar(&page, "page", 0, "Page number (1-based)")
	f.IntVar(&limit, "limit", 0, "Page size (1-100)")
	f.StringVar(&search, "search", "", "Search filter")
	return func() theralink.ListOptions {
		return theralink.ListOptions{Page: page, Limit: limit, Search: search}
	}
}
