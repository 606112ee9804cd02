package repository

import (
	"anagram/internal/app"
	"anagram/internal/dictionary"
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Index is the read side the HTTP layer depends on.
type Index interface {
	// Lookup returns the dictionary words sharing word's signature, in load
	// order. The slice is owned by the caller; an unknown word yields an
	// empty slice.
	Lookup(word string) []string
	Stats() Stats
}

type Options struct {
	Policy   app.Policy
	Encoding string
	// Dedupe keeps only the first occurrence of a repeated word.
	Dedupe  bool
	Workers int
}

type Stats struct {
	Words         int        `json:"words"`
	Groups        int        `json:"groups"`
	AnagramGroups int        `json:"anagram_groups"`
	LargestGroup  int        `json:"largest_group"`
	Policy        app.Policy `json:"policy"`
}

// InMemoryIndex maps signatures to the words that produced them. It is never
// modified after Build returns, so it is safe for concurrent readers.
type InMemoryIndex struct {
	groups map[app.Signature][]string
	policy app.Policy
	stats  Stats
}

// BuildFromFile reads the word list at path and builds the index from it.
// Any read failure wraps app.ErrSourceUnavailable.
func BuildFromFile(ctx context.Context, path string, opts Options) (*InMemoryIndex, error) {
	src, err := dictionary.Open(path, opts.Encoding)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return BuildFromSource(ctx, src, opts)
}

// BuildFromSource builds the index from an opened word list. opts.Encoding
// is ignored, the source already carries its own.
func BuildFromSource(ctx context.Context, src *dictionary.Source, opts Options) (*InMemoryIndex, error) {
	lines, err := src.Lines()
	if err != nil {
		return nil, err
	}
	return Build(ctx, lines, opts)
}

func Build(ctx context.Context, lines []string, opts Options) (*InMemoryIndex, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	words, sigs, err := signLines(ctx, lines, opts)
	if err != nil {
		return nil, err
	}

	idx := &InMemoryIndex{
		groups: make(map[app.Signature][]string),
		policy: opts.Policy,
	}
	var seen map[string]struct{}
	if opts.Dedupe {
		seen = make(map[string]struct{})
	}
	for i, word := range words {
		if word == "" {
			continue
		}
		if seen != nil {
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
		}
		idx.groups[sigs[i]] = append(idx.groups[sigs[i]], word)
		idx.stats.Words++
	}

	idx.stats.Groups = len(idx.groups)
	idx.stats.Policy = opts.Policy
	for _, group := range idx.groups {
		if len(group) > 1 {
			idx.stats.AnagramGroups++
		}
		idx.stats.LargestGroup = max(idx.stats.LargestGroup, len(group))
	}
	return idx, nil
}

// signLines normalizes every line and computes its signature. Chunks are
// processed in parallel, results land at their line's position so the
// caller can group them in input order.
func signLines(ctx context.Context, lines []string, opts Options) ([]string, []app.Signature, error) {
	words := make([]string, len(lines))
	sigs := make([]app.Signature, len(lines))
	if len(lines) == 0 {
		return words, sigs, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := (len(lines) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(lines); lo += chunk {
		hi := min(lo+chunk, len(lines))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)%1024 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				word := opts.Policy.Normalize(lines[i])
				words[i] = word
				if word != "" {
					sigs[i] = app.NewSignature(word)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return words, sigs, nil
}

func (idx *InMemoryIndex) Lookup(word string) []string {
	group := idx.groups[app.NewSignature(idx.policy.Normalize(word))]
	return append(make([]string, 0, len(group)), group...)
}

func (idx *InMemoryIndex) Stats() Stats {
	return idx.stats
}

func (idx *InMemoryIndex) Policy() app.Policy {
	return idx.policy
}
