package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(g *Grid, y int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < Width; x++ {
		if !skip[x] {
			g.set(x, y, Cell{Filled: true, Color: ColorRed})
		}
	}
}

func TestIsOccupied(t *testing.T) {
	g := NewGrid()
	g.set(4, 4, Cell{Filled: true, Color: ColorBlue})

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "empty cell", x: 0, y: 0},
		{name: "filled cell", x: 4, y: 4, want: true},
		{name: "left of board", x: -1, y: 3, want: true},
		{name: "right of board", x: Width, y: 3, want: true},
		{name: "below floor", x: 3, y: -1, want: true},
		{name: "top hidden row", x: 3, y: Rows - 1},
		{name: "headroom above the stored rows", x: 3, y: Rows + 2},
		{name: "headroom does not extend sideways", x: -1, y: Rows + 2, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.IsOccupied(tt.x, tt.y))
		})
	}
}

func TestWouldCollide(t *testing.T) {
	g := NewGrid()
	g.set(5, 0, Cell{Filled: true})

	assert.False(t, g.WouldCollide(ShapeJ, Position{X: 0, Y: 1}))
	assert.True(t, g.WouldCollide(ShapeJ, Position{X: 0, Y: 0}), "second row is below the floor")
	assert.True(t, g.WouldCollide(ShapeJ, Position{X: 3, Y: 1}), "overlaps the stack at (5,0)")
	assert.True(t, g.WouldCollide(ShapeJ, Position{X: 8, Y: 5}), "sticks out of the right wall")
	assert.False(t, g.WouldCollide(ShapeI, Position{X: 3, Y: Rows + 1}), "headroom above the board")
}

func TestLock(t *testing.T) {
	g := NewGrid()
	p := NewPiece(LetterT)
	p.Position = Position{X: 0, Y: 1}

	require.NoError(t, g.Lock(p))
	for _, c := range p.Cells() {
		assert.Equal(t, Cell{Filled: true, Color: ColorMagenta}, g.Cell(c.X, c.Y))
	}
	assert.False(t, g.Cell(0, 1).Filled)

	before := g.Cells()
	p.Position = Position{X: 1, Y: 1}
	err := g.Lock(p)
	assert.ErrorIs(t, err, ErrCellOccupied)
	assert.Equal(t, before, g.Cells(), "a failed lock must not write anything")
}

func TestLockOutsideBoard(t *testing.T) {
	g := NewGrid()
	p := NewPiece(LetterI)
	p.Position = Position{X: 3, Y: Rows}

	assert.ErrorIs(t, g.Lock(p), ErrCellOccupied)
	assert.True(t, g.IsEmpty())
}

func TestClearFullRowsNoFullRow(t *testing.T) {
	g := NewGrid()
	fillRow(g, 0, 4)
	fillRow(g, 1, 0, 9)
	before := g.Cells()

	assert.Equal(t, 0, g.ClearFullRows())
	assert.Equal(t, before, g.Cells())
	assert.Equal(t, 0, g.ClearFullRows())
	assert.Equal(t, before, g.Cells())
}

func TestClearFullRows(t *testing.T) {
	g := NewGrid()
	fillRow(g, 0)
	fillRow(g, 1, 2)
	fillRow(g, 2)
	g.set(7, 3, Cell{Filled: true, Color: ColorGreen})
	fillRow(g, Rows-1, 5)

	assert.Equal(t, []int{0, 2}, g.FullRows())
	assert.Equal(t, 2, g.ClearFullRows())
	assert.Len(t, g.Cells(), Width*Rows)

	for x := 0; x < Width; x++ {
		assert.Equal(t, x != 2, g.Cell(x, 0).Filled, "partial row shifts to the floor, x=%d", x)
		assert.Equal(t, x == 7, g.Cell(x, 1).Filled, "marker row keeps its order, x=%d", x)
		assert.Equal(t, x != 5, g.Cell(x, Rows-3).Filled, "top row shifts down by two, x=%d", x)
		assert.False(t, g.Cell(x, Rows-1).Filled)
		assert.False(t, g.Cell(x, Rows-2).Filled)
	}
	assert.Empty(t, g.FullRows())
}

func TestReset(t *testing.T) {
	g := NewGrid()
	fillRow(g, 3)
	assert.False(t, g.IsEmpty())

	g.Reset()
	assert.True(t, g.IsEmpty())
}
