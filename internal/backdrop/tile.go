package backdrop

import "unicode/utf8"

// Tile is a rectangular pattern repeated across the screen.
type Tile struct {
	rows  [][]rune
	width int
}

// NewTile builds a tile from rows, padding short rows with spaces so every
// row has the width of the longest one.
func NewTile(rows ...string) Tile {
	width := 0
	for _, r := range rows {
		width = max(width, utf8.RuneCountInString(r))
	}

	t := Tile{width: width, rows: make([][]rune, len(rows))}
	for i, r := range rows {
		line := make([]rune, width)
		for j := range line {
			line[j] = ' '
		}
		copy(line, []rune(r))
		t.rows[i] = line
	}
	return t
}

// DogeTile is the default pattern.
func DogeTile() Tile {
	return NewTile(
		"  wow           ",
		"         such   ",
		"    /^-^\\       ",
		"   / o o \\  very",
		"   \\  V  /      ",
		" much \\_/       ",
		"          doge  ",
	)
}

// Width returns the tile width in cells.
func (t Tile) Width() int {
	return t.width
}

// Height returns the tile height in cells.
func (t Tile) Height() int {
	return len(t.rows)
}

// At returns the pattern rune at (x, y), wrapping in both directions.
func (t Tile) At(x, y int) rune {
	if t.width == 0 || len(t.rows) == 0 {
		return ' '
	}
	return t.rows[mod(y, len(t.rows))][mod(x, t.width)]
}

// Paint covers s with the tile, shifted left by offset cells.
func Paint(s *Screen, t Tile, offset int) {
	for y := range s.Height() {
		for x := range s.Width() {
			s.Set(x, y, t.At(x+offset, y))
		}
	}
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
