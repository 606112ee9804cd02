package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newLookupCmd() *cobra.Command {
	var flags indexFlags

	cmd := &cobra.Command{
		Use:   "lookup WORD...",
		Short: "Print the anagrams of each word",
		Long: `Print one JSON array per word, listing the dictionary words that are
rearrangements of it in the order they appear in the word list.
An empty array means no anagrams were found.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := flags.build(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, word := range args {
				if err := enc.Encode(idx.Lookup(word)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
