// Package dictionary reads plain-text word lists, one word per line.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"anagram/internal/app"

	"golang.org/x/exp/mmap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineSize bounds a single line of the word list.
const maxLineSize = 1 << 20

// Source is a memory-mapped word list file.
type Source struct {
	path     string
	encoding encoding.Encoding
	reader   *mmap.ReaderAt
}

// Open maps the file at path. encodingName is a WHATWG label such as "utf-8",
// "windows-1251" or "koi8-r"; empty means UTF-8.
func Open(path, encodingName string) (*Source, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrSourceUnavailable, err)
	}
	return &Source{
		path:     path,
		encoding: enc,
		reader:   r,
	}, nil
}

func (s *Source) Path() string {
	return s.path
}

// Size returns the size of the mapped file in bytes.
func (s *Source) Size() int {
	return s.reader.Len()
}

// Lines decodes the whole file and returns its raw lines.
func (s *Source) Lines() ([]string, error) {
	return readLines(io.NewSectionReader(s.reader, 0, int64(s.reader.Len())), s.encoding)
}

func (s *Source) Close() error {
	return s.reader.Close()
}

// ReadLines decodes r with the named encoding and returns its raw lines.
func ReadLines(r io.Reader, encodingName string) ([]string, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	return readLines(r, enc)
}

// readLines scans r line by line. A nil enc means UTF-8: bytes pass through
// untouched apart from a leading byte order mark, and a line that is not
// valid UTF-8 fails the read instead of being patched with U+FFFD.
func readLines(r io.Reader, enc encoding.Encoding) ([]string, error) {
	var decoder transform.Transformer = unicode.BOMOverride(transform.Nop)
	if enc != nil {
		decoder = enc.NewDecoder()
	}
	scanner := bufio.NewScanner(transform.NewReader(r, decoder))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if enc == nil && !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: line %d is not valid UTF-8", app.ErrSourceUnavailable, n)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrSourceUnavailable, err)
	}
	return lines, nil
}

// lookupEncoding resolves a WHATWG label. UTF-8 resolves to nil.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown encoding %q", app.ErrSourceUnavailable, name)
	}
	return enc, nil
}
