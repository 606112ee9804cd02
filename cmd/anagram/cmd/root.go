// Package cmd provides the commands of the anagram CLI.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"anagram/internal/app"
	"anagram/internal/repository"
)

// NewRootCmd creates the root command for the anagram CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anagram",
		Short: "Look up anagrams in a word list",
		Long: `anagram builds the same signature index the HTTP service uses
and answers lookups from the command line.

The word list is a plain-text file with one word per line.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newLookupCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newSignatureCmd())
	return cmd
}

// Execute runs the root command.
func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// indexFlags are shared by every command that needs a built index.
type indexFlags struct {
	dict         string
	encoding     string
	caseFold     bool
	stripAccents bool
	dedupe       bool
	workers      int
}

func (f *indexFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.dict, "dict", "d", "", "Path to the word list (one word per line)")
	cmd.Flags().StringVar(&f.encoding, "encoding", "utf-8", "Character encoding of the word list")
	cmd.Flags().BoolVar(&f.caseFold, "case-fold", false, "Match words case-insensitively")
	cmd.Flags().BoolVar(&f.stripAccents, "strip-accents", false, "Ignore diacritics when matching")
	cmd.Flags().BoolVar(&f.dedupe, "dedupe", false, "Keep only the first occurrence of repeated words")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Signature workers while building (0 = GOMAXPROCS)")
	_ = cmd.MarkFlagRequired("dict")
}

func (f *indexFlags) build(ctx context.Context) (*repository.InMemoryIndex, error) {
	return repository.BuildFromFile(ctx, f.dict, repository.Options{
		Policy: app.Policy{
			CaseFold:     f.caseFold,
			StripAccents: f.stripAccents,
		},
		Encoding: f.encoding,
		Dedupe:   f.dedupe,
		Workers:  f.workers,
	})
}
