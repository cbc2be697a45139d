package tetris

import (
	"github.com/pkg/errors"
)

const (
	Width         = 10
	VisibleHeight = 20
	HiddenHeight  = 6
	Rows          = VisibleHeight + HiddenHeight
)

var ErrCellOccupied = errors.New("cell already occupied")

type Cell struct {
	Filled bool
	Color  Color
}

var EmptyCell = Cell{}

// Grid is the whole board, row-major with y growing upward.
// Rows [VisibleHeight, Rows) form the hidden buffer.
type Grid struct {
	cells [Width * Rows]Cell
}

func NewGrid() *Grid {
	return &Grid{}
}

func index(x, y int) int {
	return y*Width + x
}

func inside(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Rows
}

func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = EmptyCell
	}
}

func (g *Grid) Cell(x, y int) Cell {
	if !inside(x, y) {
		return EmptyCell
	}
	return g.cells[index(x, y)]
}

func (g *Grid) set(x, y int, c Cell) {
	g.cells[index(x, y)] = c
}

// IsOccupied reports whether a block may not be placed at (x, y).
// Left, right and below the board count as occupied. Above the stored rows is open headroom.
func (g *Grid) IsOccupied(x, y int) bool {
	if x < 0 || x >= Width || y < 0 {
		return true
	}
	if y >= Rows {
		return false
	}
	return g.cells[index(x, y)].Filled
}

// WouldCollide is the only collision predicate. Movement, rotation kicks,
// gravity, resting checks, drop projection and spawn all go through it.
func (g *Grid) WouldCollide(shape Shape, pos Position) bool {
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if shape[y][x] && g.IsOccupied(pos.X+x, pos.Y-y) {
				return true
			}
		}
	}
	return false
}

// Lock writes the piece into the grid. The grid is untouched when it fails.
func (g *Grid) Lock(p Piece) error {
	cells := p.Cells()
	for _, c := range cells {
		if !inside(c.X, c.Y) {
			return errors.Wrapf(ErrCellOccupied, "lock %s at (%d,%d): outside the board", p.Letter, c.X, c.Y)
		}
		if g.cells[index(c.X, c.Y)].Filled {
			return errors.Wrapf(ErrCellOccupied, "lock %s at (%d,%d)", p.Letter, c.X, c.Y)
		}
	}
	for _, c := range cells {
		g.set(c.X, c.Y, Cell{Filled: true, Color: p.Color})
	}
	return nil
}

func (g *Grid) isRowFull(y int) bool {
	for x := 0; x < Width; x++ {
		if !g.cells[index(x, y)].Filled {
			return false
		}
	}
	return true
}

func (g *Grid) FullRows() []int {
	var rows []int
	for y := 0; y < Rows; y++ {
		if g.isRowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearFullRows drops every full row, shifts the rows above down and
// fills the top with empty rows. It returns how many rows were removed.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	for y := 0; y < Rows; y++ {
		if g.isRowFull(y) {
			cleared++
			continue
		}
		if cleared > 0 {
			copy(g.cells[index(0, y-cleared):index(0, y-cleared+1)], g.cells[index(0, y):index(0, y+1)])
		}
	}
	for y := Rows - cleared; y < Rows; y++ {
		for x := 0; x < Width; x++ {
			g.set(x, y, EmptyCell)
		}
	}
	return cleared
}

func (g *Grid) IsEmpty() bool {
	for _, c := range g.cells {
		if c.Filled {
			return false
		}
	}
	return true
}

// Cells returns a copy of the board in index order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells[:])
	return cells
}
