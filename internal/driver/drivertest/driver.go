// Package drivertest provides an in-memory Driver for tests. It keeps
// a cell grid the way a terminal backend would, so tests can assert on
// rendered rows and highlight state without a real screen.
package drivertest

import (
	"strings"

	"conbox/internal/driver"
)

type Driver struct {
	Cols, Rows int
	CellW      int
	CellH      int

	cells [][]rune
	rev   [][]bool

	clip      string
	Presented int
	Closed    bool
}

func New(cols, rows int) *Driver {
	d := &Driver{Cols: cols, Rows: rows, CellW: 1, CellH: 1}
	d.Clear()
	return d
}

func (d *Driver) Size() (int, int) {
	return d.Cols * d.CellW, d.Rows * d.CellH
}

func (d *Driver) CellSize() (int, int) {
	return d.CellW, d.CellH
}

func (d *Driver) Clear() {
	d.cells = make([][]rune, d.Rows)
	d.rev = make([][]bool, d.Rows)
	for y := range d.cells {
		d.cells[y] = make([]rune, d.Cols)
		d.rev[y] = make([]bool, d.Cols)
		for x := range d.cells[y] {
			d.cells[y][x] = ' '
		}
	}
}

func (d *Driver) DrawText(col, row int, text string, reverse bool) {
	if row < 0 || row >= d.Rows {
		return
	}
	x := col
	for _, r := range text {
		if x < 0 || x >= d.Cols {
			x++
			continue
		}
		d.cells[row][x] = r
		d.rev[row][x] = reverse
		x++
	}
}

func (d *Driver) FillRect(r driver.Rect, reverse bool) {
	x0, y0 := r.X/d.CellW, r.Y/d.CellH
	x1, y1 := (r.X+r.W)/d.CellW, (r.Y+r.H)/d.CellH
	for y := y0; y < y1 && y < d.Rows; y++ {
		if y < 0 {
			continue
		}
		for x := x0; x < x1 && x < d.Cols; x++ {
			if x < 0 {
				continue
			}
			d.rev[y][x] = reverse
		}
	}
}

func (d *Driver) Present() {
	d.Presented++
}

func (d *Driver) SetClipboard(text string) error {
	d.clip = text
	return nil
}

func (d *Driver) Clipboard() (string, error) {
	return d.clip, nil
}

func (d *Driver) Close() {
	d.Closed = true
}

// Row returns the text of a rendered row with trailing blanks trimmed.
func (d *Driver) Row(y int) string {
	if y < 0 || y >= d.Rows {
		return ""
	}
	return strings.TrimRight(string(d.cells[y]), " ")
}

// Reversed reports whether the cell at (col, row) has the highlight
// style applied.
func (d *Driver) Reversed(col, row int) bool {
	if row < 0 || row >= d.Rows || col < 0 || col >= d.Cols {
		return false
	}
	return d.rev[row][col]
}

var _ driver.Driver = (*Driver)(nil)
