package tui

import "strings"

// Braille cells pack 2x4 dots per terminal character, giving a drawing
// resolution of (cols*2) x (rows*4) from Unicode offset 0x2800.
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type canvas struct {
	cols, rows int
	cells      [][]rune
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cols: cols, rows: rows, cells: make([][]rune, rows)}
	for i := range c.cells {
		c.cells[i] = make([]rune, cols)
	}
	c.clear()
	return c
}

// plot sets the dot at sub-pixel coordinates (x, y); out-of-range
// coordinates are ignored.
func (c *canvas) plot(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.cols || row >= c.rows {
		return
	}
	c.cells[row][col] |= dotBits[y%4][x%2]
}

func (c *canvas) clear() {
	for _, row := range c.cells {
		for i := range row {
			row[i] = 0x2800
		}
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
