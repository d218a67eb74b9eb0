// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package translit converts text between NABCC and Unicode braille one line
// at a time. Characters without a mapping pass through unchanged and every
// line keeps its own terminator. Input must be UTF-8.
package translit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/pdiddy/braille-convert/internal/braille"
)

// ErrInvalidUTF8 reports input that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// Mapping substitutes one rune for another. It must return r unchanged for
// runes it does not handle.
type Mapping func(r rune) rune

// ToUnicode maps NABCC characters to Unicode braille patterns.
func ToUnicode(r rune) rune {
	if u, ok := braille.NABCCToUnicode(r); ok {
		return u
	}
	return r
}

// ToNABCC maps Unicode braille patterns to NABCC characters.
func ToNABCC(r rune) rune {
	if a, ok := braille.UnicodeToNABCC(r); ok {
		return a
	}
	return r
}

// String applies m to every rune of s.
func String(s string, m Mapping) (string, error) {
	if !utf8.ValidString(s) {
		return "", ErrInvalidUTF8
	}
	out, _, err := transform.String(runes.Map(m), s)
	return out, err
}

// Copy reads src line by line, applies m, and writes each line to dst. It
// returns the number of lines written. A line that is not valid UTF-8 stops
// the copy with an error wrapping ErrInvalidUTF8; nothing from that line is
// written.
func Copy(dst io.Writer, src io.Reader, m Mapping) (int, error) {
	br := bufio.NewReader(src)
	bw := bufio.NewWriter(dst)
	t := runes.Map(m)

	n := 0
	for {
		line, readErr := br.ReadString('\n')
		if len(line) > 0 {
			if !utf8.ValidString(line) {
				return n, fmt.Errorf("line %d: %w", n+1, ErrInvalidUTF8)
			}
			out, _, err := transform.String(t, line)
			if err != nil {
				return n, fmt.Errorf("transliterating line %d: %w", n+1, err)
			}
			if _, err := bw.WriteString(out); err != nil {
				return n, fmt.Errorf("writing line %d: %w", n+1, err)
			}
			n++
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return n, fmt.Errorf("reading line %d: %w", n+1, readErr)
		}
	}
	return n, bw.Flush()
}
