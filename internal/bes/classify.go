// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bes decodes BES binary braille documents into lines of output
// symbols.
//
// A BES file is a fixed-length header (opaque to the decoder) followed by a
// data section. The data section interleaves control bytes with braille cell
// bytes:
//
//	0xFF        page start, followed by two bytes of page metadata
//	0xFD        line start
//	0xFE        line end
//	0x0D        carriage return (ignored)
//	0xA0-0xDF   braille cell, pattern = byte - 0xA0
package bes

import "github.com/pdiddy/braille-convert/internal/braille"

const (
	// DefaultHeaderLength is the size of the header region preceding the data section.
	DefaultHeaderLength = 0x400

	BytePageStart      = 0xFF
	ByteLineStart      = 0xFD
	ByteLineEnd        = 0xFE
	ByteCarriageReturn = 0x0D
	// ByteCellBase is the lowest braille byte; it encodes the blank cell.
	ByteCellBase = 0xA0

	// pageMarkerLength covers the page start byte and its metadata.
	pageMarkerLength = 3
)

// ByteKind classifies a data section byte.
type ByteKind int

const (
	KindOther ByteKind = iota
	KindPageStart
	KindLineStart
	KindLineEnd
	KindCarriageReturn
	KindCell
)

func (k ByteKind) String() string {
	switch k {
	case KindPageStart:
		return "page-start"
	case KindLineStart:
		return "line-start"
	case KindLineEnd:
		return "line-end"
	case KindCarriageReturn:
		return "carriage-return"
	case KindCell:
		return "cell"
	default:
		return "other"
	}
}

// Classify returns the kind of b. Control bytes take priority over the
// braille range: 0xFD-0xFF sit above ByteCellBase but are never cells.
func Classify(b byte) ByteKind {
	switch {
	case b == BytePageStart:
		return KindPageStart
	case b == ByteLineStart:
		return KindLineStart
	case b == ByteLineEnd:
		return KindLineEnd
	case b == ByteCarriageReturn:
		return KindCarriageReturn
	case b >= ByteCellBase:
		return KindCell
	default:
		return KindOther
	}
}

// CellOf returns the braille cell pattern encoded by a cell byte. Bytes above
// 0xDF produce patterns outside the six-dot domain.
func CellOf(b byte) braille.Cell {
	return braille.Cell(b - ByteCellBase)
}

// Encode returns the data section byte for a cell.
func Encode(c braille.Cell) byte {
	return ByteCellBase + byte(c&braille.MaxCell)
}
