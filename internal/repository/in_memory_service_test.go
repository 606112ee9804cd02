package repository

import (
	"anagram/internal/app"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
)

var scenario = []string{"listen", "silent", "enlist", "google", "banana"}

func mustBuild(t *testing.T, lines []string, opts Options) *InMemoryIndex {
	t.Helper()
	idx, err := Build(context.Background(), lines, opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return idx
}

func TestLookupScenario(t *testing.T) {
	idx := mustBuild(t, scenario, Options{})

	tests := []struct {
		query string
		want  []string
	}{
		{"listen", []string{"listen", "silent", "enlist"}},
		{"tinsel", []string{"listen", "silent", "enlist"}},
		{"elgoog", []string{"google"}},
		{"xyz", []string{}},
		{"zzqx", []string{}},
		{"", []string{}},
		{"  banana ", []string{"banana"}},
	}

	for _, tt := range tests {
		got := idx.Lookup(tt.query)
		if got == nil {
			t.Errorf("Lookup(%q) returned nil, want empty slice", tt.query)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("Lookup(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestLookupSelfInclusionAndSymmetry(t *testing.T) {
	lines := []string{"пятак", "пятка", "тяпка", "листок", "слиток", "столик", "стол", "кот", "ток", "окт"}
	idx := mustBuild(t, lines, Options{})

	for _, a := range lines {
		group := idx.Lookup(a)
		if !slices.Contains(group, a) {
			t.Fatalf("Lookup(%q) = %v does not contain the word itself", a, group)
		}
		for _, b := range group {
			if !slices.Contains(idx.Lookup(b), a) {
				t.Fatalf("Lookup(%q) contains %q but Lookup(%q) does not contain %q", a, b, b, a)
			}
		}
	}
}

func TestBuildSkipsBlankLines(t *testing.T) {
	idx := mustBuild(t, []string{"", "  ", "\t", "cat", " act "}, Options{})

	if got := idx.Lookup(""); len(got) != 0 {
		t.Fatalf("expected no words for empty query, got %v", got)
	}
	if got := idx.Lookup("tac"); !slices.Equal(got, []string{"cat", "act"}) {
		t.Fatalf("unexpected group: %v", got)
	}
	if idx.Stats().Words != 2 {
		t.Fatalf("expected 2 words, got %d", idx.Stats().Words)
	}
}

func TestBuildDuplicates(t *testing.T) {
	lines := []string{"stop", "pots", "stop", "tops", "pots"}

	idx := mustBuild(t, lines, Options{})
	if got := idx.Lookup("stop"); !slices.Equal(got, lines) {
		t.Fatalf("duplicates must be kept by default, got %v", got)
	}

	deduped := mustBuild(t, lines, Options{Dedupe: true})
	if got := deduped.Lookup("stop"); !slices.Equal(got, []string{"stop", "pots", "tops"}) {
		t.Fatalf("unexpected deduped group: %v", got)
	}
	if deduped.Stats().Words != 3 {
		t.Fatalf("expected 3 words after dedupe, got %d", deduped.Stats().Words)
	}
}

func TestLookupPolicy(t *testing.T) {
	lines := []string{"Listen", "silent", "Crème", "merce"}

	sensitive := mustBuild(t, lines, Options{})
	if got := sensitive.Lookup("listen"); !slices.Equal(got, []string{"silent"}) {
		t.Fatalf("case sensitive lookup = %v", got)
	}

	folded := mustBuild(t, lines, Options{Policy: app.Policy{CaseFold: true}})
	if got := folded.Lookup("TINSEL"); !slices.Equal(got, []string{"listen", "silent"}) {
		t.Fatalf("case folded lookup = %v", got)
	}

	stripped := mustBuild(t, lines, Options{Policy: app.Policy{CaseFold: true, StripAccents: true}})
	if got := stripped.Lookup("MERCE"); !slices.Equal(got, []string{"creme", "merce"}) {
		t.Fatalf("accent stripped lookup = %v", got)
	}
	if stripped.Policy() != (app.Policy{CaseFold: true, StripAccents: true}) {
		t.Fatalf("unexpected policy %+v", stripped.Policy())
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	idx := mustBuild(t, scenario, Options{})

	got := idx.Lookup("listen")
	got[0] = "mutated"
	_ = append(got[:1], "appended")

	if again := idx.Lookup("listen"); !slices.Equal(again, []string{"listen", "silent", "enlist"}) {
		t.Fatalf("index changed through returned slice: %v", again)
	}
}

func TestBuildDeterministic(t *testing.T) {
	var lines []string
	for i := 0; i < 5000; i++ {
		lines = append(lines, fmt.Sprintf("w%03d", i%700), fmt.Sprintf("%03dw", i%700))
	}

	sequential := mustBuild(t, lines, Options{Workers: 1})
	parallel := mustBuild(t, lines, Options{Workers: 7})
	again := mustBuild(t, lines, Options{Workers: 7})

	if sequential.Stats() != parallel.Stats() {
		t.Fatalf("stats differ: %+v vs %+v", sequential.Stats(), parallel.Stats())
	}
	for _, q := range []string{"w123", "321w", "w000", "nothing"} {
		a, b, c := sequential.Lookup(q), parallel.Lookup(q), again.Lookup(q)
		if !slices.Equal(a, b) || !slices.Equal(b, c) {
			t.Fatalf("Lookup(%q) not deterministic: %v / %v / %v", q, a, b, c)
		}
	}
}

func TestBuildStats(t *testing.T) {
	idx := mustBuild(t, scenario, Options{})
	want := Stats{Words: 5, Groups: 3, AnagramGroups: 1, LargestGroup: 3}
	if got := idx.Stats(); got != want {
		t.Fatalf("Stats() = %+v, want %+v", got, want)
	}

	empty := mustBuild(t, nil, Options{})
	if got := empty.Stats(); got != (Stats{}) {
		t.Fatalf("expected zero stats for empty index, got %+v", got)
	}
	if got := empty.Lookup("a"); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestBuildCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Build(ctx, scenario, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestBuildFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mywordlist.txt")
	if err := os.WriteFile(path, []byte("listen\nsilent\nenlist\ngoogle\nbanana\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	idx, err := BuildFromFile(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("BuildFromFile failed: %v", err)
	}
	if got := idx.Lookup("listen"); !slices.Equal(got, []string{"listen", "silent", "enlist"}) {
		t.Fatalf("unexpected group: %v", got)
	}
}

func TestBuildFromFileInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mywordlist.txt")
	if err := os.WriteFile(path, []byte("caf\xe9\ncaf\xe8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	idx, err := BuildFromFile(context.Background(), path, Options{})
	if !errors.Is(err, app.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable for invalid UTF-8, got %v", err)
	}
	if idx != nil {
		t.Fatal("no index must be returned on failure")
	}

	latin1, err := BuildFromFile(context.Background(), path, Options{Encoding: "iso-8859-1"})
	if err != nil {
		t.Fatalf("BuildFromFile failed: %v", err)
	}
	for _, w := range []string{"café", "cafè"} {
		if got := latin1.Lookup(w); !slices.Equal(got, []string{w}) {
			t.Fatalf("Lookup(%q) = %v, want only the word itself", w, got)
		}
	}
}

func TestBuildFromFileMissing(t *testing.T) {
	idx, err := BuildFromFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), Options{})
	if err == nil {
		t.Fatal("expected error for missing word list")
	}
	if !errors.Is(err, app.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if idx != nil {
		t.Fatal("no index must be returned on failure")
	}
}

func TestConcurrentLookups(t *testing.T) {
	idx := mustBuild(t, scenario, Options{})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if got := idx.Lookup("silent"); len(got) != 3 {
					t.Errorf("unexpected group size %d", len(got))
					return
				}
			}
		}()
	}
	wg.Wait()
}
