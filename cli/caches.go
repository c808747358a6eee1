package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCachesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "caches",
		Aliases:           []string{"cache"},
		Short:             "Inspect and flush the catalog response caches",
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:               "list",
		Short:             "List caches with their hit and miss counters",
		Args:              cobra.NoArgs,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := fromCommand(cmd)
			if err != nil {
				return err
			}
			caches, err := cc.client.ListCaches(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing caches failed: %w", err)
			}
			return renderCaches(cmd.OutOrStdout(), cc.output, caches)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:               "flush <id>",
		Short:             "Drop every entry of a cache",
		Args:              cobra.ExactArgs(1),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := fromCommand(cmd)
			if err != nil {
				return err
			}
			info, err := cc.client.FlushCache(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("flushing cache %s failed: %w", args[0], err)
			}
			if cc.output == OutputJSON {
				return renderJSON(cmd.OutOrStdout(), info)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "cache %s flushed\n", info.ID)
			return err
		},
	})

	return cmd
}
