package core

import "math"

// GridLayout places n items in rows of at most Cols, centred on the origin.
type GridLayout struct {
	N    int
	Cols int
	Rows int
	// DX and DY are the distances between neighbouring centres.
	DX, DY float64
}

// NewGridLayout wraps n items into rows of at most maxCols.
func NewGridLayout(n, maxCols int, dx, dy float64) GridLayout {
	if n < 0 {
		n = 0
	}
	if maxCols <= 0 {
		maxCols = 1
	}
	cols := n
	if cols > maxCols {
		cols = maxCols
	}
	rows := 0
	if cols > 0 {
		rows = int(math.Ceil(float64(n) / float64(cols)))
	}
	return GridLayout{N: n, Cols: cols, Rows: rows, DX: dx, DY: dy}
}

// Cell returns the row and column of item idx.
func (g GridLayout) Cell(idx int) (row, col int) {
	if g.Cols == 0 {
		return 0, 0
	}
	return idx / g.Cols, idx % g.Cols
}

// Offset returns the centre of item idx; row 0 is the top row.
func (g GridLayout) Offset(idx int) (x, y float64) {
	row, col := g.Cell(idx)
	x = (float64(col) - float64(g.Cols-1)/2) * g.DX
	y = (float64(g.Rows-1)/2 - float64(row)) * g.DY
	return x, y
}
