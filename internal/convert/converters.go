// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdiddy/braille-convert/internal/bes"
	"github.com/pdiddy/braille-convert/internal/braille"
	"github.com/pdiddy/braille-convert/internal/emit"
	"github.com/pdiddy/braille-convert/internal/translit"
)

// BESConverter decodes BES input and emits it in a text encoding.
type BESConverter struct {
	decoder  *bes.Decoder
	encoding emit.Encoding
}

// NewBESConverter returns a converter from BES to enc. The symbol table is
// chosen to match the encoding: BRF characters for BRF, braille patterns for
// Unicode text.
func NewBESConverter(headerLength int, enc emit.Encoding) *BESConverter {
	table := braille.UnicodeBraille
	if enc.ASCII {
		table = braille.BRF
	}
	return &BESConverter{
		decoder:  bes.NewDecoder(headerLength, table),
		encoding: enc,
	}
}

func (c *BESConverter) Name() string { return "bes2" + c.encoding.Name }

func (c *BESConverter) Ext() string { return c.encoding.Ext }

// Convert decodes the whole input before writing anything to w.
func (c *BESConverter) Convert(src []byte, w io.Writer) (Report, error) {
	doc, err := c.decoder.DecodeReader(bytes.NewReader(src))
	if err != nil {
		return Report{}, err
	}
	if err := emit.Write(w, doc.Lines, c.encoding); err != nil {
		return Report{}, fmt.Errorf("emitting %s: %w", c.encoding.Name, err)
	}
	return Report{
		Lines:   len(doc.Lines),
		Pages:   doc.Stats.Pages,
		Ignored: doc.Stats.Ignored,
		Unknown: doc.Stats.Unknown,
	}, nil
}

// TextConverter applies a character mapping to text input.
type TextConverter struct {
	name    string
	ext     string
	mapping translit.Mapping
}

// NABCCToUnicode converts NABCC text to Unicode braille text.
var NABCCToUnicode = &TextConverter{name: "nabcc2unicode", ext: ".txt", mapping: translit.ToUnicode}

// UnicodeToNABCC converts Unicode braille text to NABCC text.
var UnicodeToNABCC = &TextConverter{name: "unicode2nabcc", ext: ".brl", mapping: translit.ToNABCC}

func (c *TextConverter) Name() string { return c.name }

func (c *TextConverter) Ext() string { return c.ext }

func (c *TextConverter) Convert(src []byte, w io.Writer) (Report, error) {
	n, err := translit.Copy(w, bytes.NewReader(src), c.mapping)
	if err != nil {
		return Report{}, err
	}
	return Report{Lines: n}, nil
}
