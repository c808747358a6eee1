package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

const (
	FlagServer  = "server"
	FlagOutput  = "output"
	FlagTimeout = "timeout"

	DefaultServer = "http://localhost:4000"
)

// New returns the abrctl root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "abrctl",
		Short: "Inspect and operate the Readarr request bridge",
		Long: `abrctl talks to a running bridge service. It lists and inspects recorded
book requests, retries failed requests, removes added books from the
bridge's records and manages the catalog response caches.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			format, err := cmd.Flags().GetString(FlagOutput)
			if err != nil {
				return err
			}
			return validateOutput(format)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().String(FlagServer, DefaultServer, "base URL of the bridge service")
	cmd.PersistentFlags().StringP(FlagOutput, "o", OutputTable, "output format (table, json)")
	cmd.PersistentFlags().Duration(FlagTimeout, 30*time.Second, "timeout for each call to the service")

	cmd.AddCommand(newRequestsCommand())
	cmd.AddCommand(newCachesCommand())

	return cmd
}

// commandContext is the resolved state shared by all subcommands.
type commandContext struct {
	client *Client
	output string
}

func fromCommand(cmd *cobra.Command) (*commandContext, error) {
	server, err := cmd.Flags().GetString(FlagServer)
	if err != nil {
		return nil, fmt.Errorf("getting server flag failed: %w", err)
	}
	output, err := cmd.Flags().GetString(FlagOutput)
	if err != nil {
		return nil, fmt.Errorf("getting output flag failed: %w", err)
	}
	timeout, err := cmd.Flags().GetDuration(FlagTimeout)
	if err != nil {
		return nil, fmt.Errorf("getting timeout flag failed: %w", err)
	}

	return &commandContext{
		client: NewClient(server, &http.Client{Timeout: timeout}),
		output: output,
	}, nil
}
