package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"anagram/internal/app"
)

func newSignatureCmd() *cobra.Command {
	var policy app.Policy

	cmd := &cobra.Command{
		Use:   "signature WORD...",
		Short: "Print the character counts that identify a word's anagram group",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, word := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", word, app.NewSignature(policy.Normalize(word)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&policy.CaseFold, "case-fold", false, "Fold case before counting")
	cmd.Flags().BoolVar(&policy.StripAccents, "strip-accents", false, "Drop diacritics before counting")
	return cmd
}
