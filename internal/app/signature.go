package app

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Signature is the canonical form of a word's character multiset: every
// character as a fixed-width code, sorted ascending. Two words share a
// Signature iff one is a permutation of the other.
type Signature string

// CharCount is one (character, count) pair of a Signature.
type CharCount struct {
	Char  string `json:"char"`
	Count int    `json:"count"`
}

const codeWidth = 4

func NewSignature(word string) Signature {
	codes := sortedCodes(word)
	buf := make([]byte, len(codes)*codeWidth)
	for i, c := range codes {
		binary.BigEndian.PutUint32(buf[i*codeWidth:], uint32(c))
	}
	return Signature(buf)
}

// sortedCodes splits word into characters and sorts them. A valid rune keeps
// its code point, a byte that is not valid UTF-8 becomes -(b+1) so it can
// never collide with a rune or with another byte.
func sortedCodes(word string) []int32 {
	codes := make([]int32, 0, len(word))
	for i := 0; i < len(word); {
		r, size := utf8.DecodeRuneInString(word[i:])
		if r == utf8.RuneError && size == 1 {
			codes = append(codes, -int32(word[i])-1)
		} else {
			codes = append(codes, r)
		}
		i += size
	}
	slices.Sort(codes)
	return codes
}

// Len returns the number of characters the signature was built from.
func (s Signature) Len() int {
	return len(s) / codeWidth
}

// Pairs returns the (character, count) view of the signature, ordered by character.
func (s Signature) Pairs() []CharCount {
	var pairs []CharCount
	for i := 0; i+codeWidth <= len(s); i += codeWidth {
		code := int32(binary.BigEndian.Uint32([]byte(s[i : i+codeWidth])))
		char := charOf(code)
		if n := len(pairs); n > 0 && pairs[n-1].Char == char {
			pairs[n-1].Count++
			continue
		}
		pairs = append(pairs, CharCount{Char: char, Count: 1})
	}
	return pairs
}

func (s Signature) String() string {
	var b strings.Builder
	for i, p := range s.Pairs() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.Char)
		b.WriteString(strconv.Itoa(p.Count))
	}
	return b.String()
}

func charOf(code int32) string {
	if code < 0 {
		return fmt.Sprintf(`\x%02x`, byte(-code-1))
	}
	return string(rune(code))
}
