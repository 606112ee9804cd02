package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var flags indexFlags
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show index statistics for a word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := flags.build(cmd.Context())
			if err != nil {
				return err
			}
			stats := idx.Stats()
			out := cmd.OutOrStdout()

			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}

			fmt.Fprintf(out, "Words:          %d\n", stats.Words)
			fmt.Fprintf(out, "Groups:         %d\n", stats.Groups)
			fmt.Fprintf(out, "Anagram groups: %d\n", stats.AnagramGroups)
			fmt.Fprintf(out, "Largest group:  %d\n", stats.LargestGroup)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
