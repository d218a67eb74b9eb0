// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package braille

// NABCC text uses the same character assignment as BRF for every non-blank
// cell, so both directions are derived from brfTable. Blank stays unmapped:
// an ASCII space is ordinary text in NABCC files.
var (
	nabccToUnicode = func() map[rune]rune {
		m := make(map[rune]rune, NumCells-1)
		for c := Cell(1); c <= MaxCell; c++ {
			m[rune(brfTable[c])] = UnicodeBase + rune(c)
		}
		return m
	}()

	unicodeToNABCC = func() map[rune]rune {
		m := make(map[rune]rune, len(nabccToUnicode))
		for ascii, u := range nabccToUnicode {
			m[u] = ascii
		}
		return m
	}()
)

// NABCCToUnicode returns the Unicode braille code point for an NABCC
// character. Lowercase letters, whitespace and other runes report false.
func NABCCToUnicode(r rune) (rune, bool) {
	u, ok := nabccToUnicode[r]
	return u, ok
}

// UnicodeToNABCC returns the NABCC character for a Unicode braille code point.
func UnicodeToNABCC(r rune) (rune, bool) {
	a, ok := unicodeToNABCC[r]
	return a, ok
}

// NABCCSymbols returns the NABCC characters that have a braille mapping,
// in cell order.
func NABCCSymbols() []rune {
	out := make([]rune, 0, NumCells-1)
	for c := Cell(1); c <= MaxCell; c++ {
		out = append(out, rune(brfTable[c]))
	}
	return out
}
