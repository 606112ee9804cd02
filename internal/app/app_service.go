package app

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrSourceUnavailable = errors.New("word source unavailable")
	ErrInvalidInput      = errors.New("invalid input")
)

// Policy decides how a raw word is normalized before its signature is taken.
// The zero value only strips surrounding whitespace: matching is case
// sensitive and every character counts.
type Policy struct {
	CaseFold     bool `yaml:"case_fold" json:"case_fold"`
	StripAccents bool `yaml:"strip_accents" json:"strip_accents"`
}

func (p Policy) Normalize(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return word
	}
	// transformers keep state between calls, so each call builds its own
	if p.StripAccents {
		strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if s, _, err := transform.String(strip, word); err == nil {
			word = s
		}
	}
	if p.CaseFold {
		word = cases.Fold().String(word)
	}
	return word
}
