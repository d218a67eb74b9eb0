// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bes

import (
	"errors"
	"fmt"

	"github.com/pdiddy/braille-convert/internal/braille"
)

// ErrMalformed is matched by every FormatError.
var ErrMalformed = errors.New("malformed BES input")

// FormatError reports an input too short to hold the BES header, or a
// negative header length.
type FormatError struct {
	Size int
	Want int
}

func (e *FormatError) Error() string {
	if e.Want < 0 {
		return fmt.Sprintf("invalid BES header length %d", e.Want)
	}
	return fmt.Sprintf("BES input is %d bytes; the data section starts at 0x%04X (%d bytes)", e.Size, e.Want, e.Want)
}

// Is lets errors.Is(err, ErrMalformed) match.
func (e *FormatError) Is(target error) bool {
	return target == ErrMalformed
}

// Stats counts what the decoder saw in the data section.
type Stats struct {
	Pages   int `json:"pages" yaml:"pages"`
	Lines   int `json:"lines" yaml:"lines"`
	Cells   int `json:"cells" yaml:"cells"`
	Ignored int `json:"ignored" yaml:"ignored"`
	Unknown int `json:"unknown" yaml:"unknown"`
}

// Document is the result of decoding one BES input.
type Document struct {
	Lines [][]rune
	Stats Stats
}

// Decoder decodes BES data sections with a fixed header length and symbol table.
type Decoder struct {
	HeaderLength int
	Table        braille.SymbolTable
}

// NewDecoder returns a decoder for table. A non-positive headerLength selects
// DefaultHeaderLength.
func NewDecoder(headerLength int, table braille.SymbolTable) *Decoder {
	if headerLength <= 0 {
		headerLength = DefaultHeaderLength
	}
	return &Decoder{HeaderLength: headerLength, Table: table}
}

// Decode decodes a complete BES file held in data.
func (d *Decoder) Decode(data []byte) (*Document, error) {
	return Decode(data, d.HeaderLength, d.Table)
}

// Decode skips headerLength bytes of data and decodes the remaining data
// section into lines of table symbols. It fails with a *FormatError when data
// is shorter than headerLength or headerLength is negative.
func Decode(data []byte, headerLength int, table braille.SymbolTable) (*Document, error) {
	if headerLength < 0 || len(data) < headerLength {
		return nil, &FormatError{Size: len(data), Want: headerLength}
	}
	return DecodeSection(data[headerLength:], table), nil
}

// DecodeSection decodes a data section with no header.
func DecodeSection(section []byte, table braille.SymbolTable) *Document {
	doc := &Document{}
	blank := table.Blank()
	var line []rune

	for i := 0; i < len(section); {
		b := section[i]
		switch Classify(b) {
		case KindPageStart:
			doc.Stats.Pages++
			i += pageMarkerLength
		case KindLineStart, KindCarriageReturn:
			i++
		case KindLineEnd:
			doc.Lines = append(doc.Lines, trimBlank(line, blank))
			line = nil
			i++
		case KindCell:
			r, ok := table.Symbol(CellOf(b))
			if !ok {
				r = braille.Unknown
				doc.Stats.Unknown++
			}
			line = append(line, r)
			doc.Stats.Cells++
			i++
		default:
			doc.Stats.Ignored++
			i++
		}
	}

	if len(line) > 0 {
		doc.Lines = append(doc.Lines, trimBlank(line, blank))
	}
	doc.Stats.Lines = len(doc.Lines)
	return doc
}

// trimBlank drops the trailing run of blank symbols. The result is never nil
// so an all-blank line still counts as a line.
func trimBlank(line []rune, blank rune) []rune {
	end := len(line)
	for end > 0 && line[end-1] == blank {
		end--
	}
	if end == 0 {
		return []rune{}
	}
	return line[:end]
}
