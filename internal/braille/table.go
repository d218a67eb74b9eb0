// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package braille

// Unknown is the placeholder symbol emitted for a cell a table cannot map.
const Unknown = '?'

// UnicodeBase is the first code point of the Unicode braille patterns block.
const UnicodeBase rune = 0x2800

// SymbolTable maps braille cells to output symbols. Implementations are
// immutable and safe to share.
type SymbolTable interface {
	// Symbol returns the output symbol for c. The boolean is false when the
	// table has no entry for c.
	Symbol(c Cell) (rune, bool)

	// Blank returns the symbol for the blank cell. Decoders trim trailing
	// runs of this symbol from each line.
	Blank() rune
}

// brfTable maps every cell to its Braille Ready Format ASCII character.
var brfTable = [NumCells]byte{
	0x20, 0x41, 0x31, 0x42, 0x27, 0x4B, 0x32, 0x4C, // 0-7:   space A 1 B ' K 2 L
	0x40, 0x43, 0x49, 0x46, 0x2F, 0x4D, 0x53, 0x50, // 8-15:  @ C I F / M S P
	0x22, 0x45, 0x33, 0x48, 0x39, 0x4F, 0x36, 0x52, // 16-23: " E 3 H 9 O 6 R
	0x5E, 0x44, 0x4A, 0x47, 0x3E, 0x4E, 0x54, 0x51, // 24-31: ^ D J G > N T Q
	0x2C, 0x2A, 0x35, 0x3C, 0x2D, 0x55, 0x38, 0x56, // 32-39: , * 5 < - U 8 V
	0x2E, 0x25, 0x5B, 0x24, 0x2B, 0x58, 0x21, 0x26, // 40-47: . % [ $ + X ! &
	0x3B, 0x3A, 0x34, 0x5C, 0x30, 0x5A, 0x37, 0x28, // 48-55: ; : 4 \ 0 Z 7 (
	0x5F, 0x3F, 0x57, 0x5D, 0x23, 0x59, 0x29, 0x3D, // 56-63: _ ? W ] # Y ) =
}

type brf struct{}

// BRF maps cells to Braille Ready Format ASCII characters (0x20-0x5F).
var BRF SymbolTable = brf{}

func (brf) Symbol(c Cell) (rune, bool) {
	if !c.Valid() {
		return Unknown, false
	}
	return rune(brfTable[c]), true
}

func (brf) Blank() rune { return rune(brfTable[Blank]) }

type unicodeBraille struct{}

// UnicodeBraille maps cells to code points in the Unicode braille patterns
// block by adding the cell value to UnicodeBase. It has an entry for every
// cell value, so patterns above MaxCell land on eight-dot code points.
var UnicodeBraille SymbolTable = unicodeBraille{}

func (unicodeBraille) Symbol(c Cell) (rune, bool) {
	return UnicodeBase + rune(c), true
}

func (unicodeBraille) Blank() rune { return UnicodeBase }

// CellFromUnicode returns the cell encoded by a Unicode braille pattern code
// point. Eight-dot patterns and runes outside the block report false.
func CellFromUnicode(r rune) (Cell, bool) {
	if r < UnicodeBase || r > UnicodeBase+rune(MaxCell) {
		return 0, false
	}
	return Cell(r - UnicodeBase), true
}
