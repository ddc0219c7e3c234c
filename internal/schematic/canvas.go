package schematic

import "strings"

// canvas is a fixed-size grid of runes addressed by (x, y).
type canvas struct {
	cells [][]rune
}

func newCanvas(width, height int) *canvas {
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(" ", width))
	}
	return &canvas{cells: cells}
}

// put writes s starting at (x, y). Runes outside the grid are dropped.
func (c *canvas) put(x, y int, s string) {
	if y < 0 || y >= len(c.cells) {
		return
	}
	row := c.cells[y]
	for _, r := range s {
		if x >= 0 && x < len(row) {
			row[x] = r
		}
		x++
	}
}

// hline draws a horizontal wire over [x0, x1).
func (c *canvas) hline(x0, x1, y int) {
	for x := x0; x < x1; x++ {
		c.put(x, y, "─")
	}
}

// vline draws a vertical wire over [y0, y1).
func (c *canvas) vline(x, y0, y1 int) {
	for y := y0; y < y1; y++ {
		c.put(x, y, "│")
	}
}

func (c *canvas) String() string {
	lines := make([]string, len(c.cells))
	for i, row := range c.cells {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}
