// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emit serializes decoded braille lines to text encodings.
package emit

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pdiddy/braille-convert/internal/braille"
)

// Encoding describes a line-oriented text output format.
type Encoding struct {
	// Name identifies the encoding in logs and history records.
	Name string
	// Ext is the file extension used when deriving output paths.
	Ext string
	// Terminator is written after every line, including the last.
	Terminator string
	// ASCII restricts output to single bytes; runes above 0x7F are written
	// as braille.Unknown.
	ASCII bool
}

var (
	// BRF is Braille Ready Format: ASCII, CRLF line endings.
	BRF = Encoding{Name: "brf", Ext: ".brf", Terminator: "\r\n", ASCII: true}
	// UnicodeText is Unicode braille patterns as UTF-8, LF line endings.
	UnicodeText = Encoding{Name: "unicode", Ext: ".txt", Terminator: "\n"}
)

// Lookup returns the encoding registered under name.
func Lookup(name string) (Encoding, error) {
	switch name {
	case BRF.Name:
		return BRF, nil
	case UnicodeText.Name:
		return UnicodeText, nil
	default:
		return Encoding{}, fmt.Errorf("unknown output encoding %q: use brf or unicode", name)
	}
}

// Write writes each line followed by the encoding's terminator. No lines
// produce no output.
func Write(w io.Writer, lines [][]rune, enc Encoding) error {
	bw := bufio.NewWriter(w)
	for i, line := range lines {
		for _, r := range line {
			if enc.ASCII && r >= utf8.RuneSelf {
				r = braille.Unknown
			}
			if _, err := bw.WriteRune(r); err != nil {
				return fmt.Errorf("writing line %d: %w", i+1, err)
			}
		}
		if _, err := bw.WriteString(enc.Terminator); err != nil {
			return fmt.Errorf("writing line %d: %w", i+1, err)
		}
	}
	return bw.Flush()
}

// Bytes renders lines into memory.
func Bytes(lines [][]rune, enc Encoding) []byte {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = Write(&buf, lines, enc)
	return buf.Bytes()
}
