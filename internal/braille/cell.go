// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package braille defines the six-dot braille cell and the fixed symbol
// tables that map cells to output characters: BRF ASCII, Unicode braille
// patterns, and the NABCC text convention.
//
// All tables are package-level data initialized once and never mutated.
package braille

import "strings"

// Cell is a six-dot braille cell. Bit 0 is dot 1 through bit 5 for dot 6.
// Every value in [0, 63] is a legal cell; 0 is the blank cell.
type Cell uint8

const (
	// Blank is the cell with no raised dots.
	Blank Cell = 0
	// MaxCell is the cell with all six dots raised.
	MaxCell Cell = 0x3F
	// NumCells is the number of distinct six-dot cells.
	NumCells = 64
)

// Valid reports whether c lies in the six-dot domain.
func (c Cell) Valid() bool {
	return c <= MaxCell
}

// Dots returns the raised dot numbers (1-6) in ascending order.
func (c Cell) Dots() []int {
	var dots []int
	for d := 1; d <= 6; d++ {
		if c&(1<<(d-1)) != 0 {
			dots = append(dots, d)
		}
	}
	return dots
}

// String renders the cell as "dots-125", or "blank" for the empty cell.
func (c Cell) String() string {
	if c == Blank {
		return "blank"
	}
	if !c.Valid() {
		return "invalid"
	}
	var b strings.Builder
	b.WriteString("dots-")
	for _, d := range c.Dots() {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// FromDots builds a cell from dot numbers. Numbers outside 1-6 are ignored.
func FromDots(dots ...int) Cell {
	var c Cell
	for _, d := range dots {
		if d >= 1 && d <= 6 {
			c |= 1 << (d - 1)
		}
	}
	return c
}
