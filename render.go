package tetris

type TileKind int

const (
	TileEmpty TileKind = iota
	TileLocked
	TileGhost
	TileActive
)

type Tile struct {
	Kind  TileKind
	Color Color
}

// Render returns the visible rows top-down, row 0 being the highest visible
// row, with the ghost and the active piece drawn over the locked cells.
// The returned frame is reused by the next call.
func (b *Board) Render() [][]Tile {
	for y := 0; y < VisibleHeight; y++ {
		for x := 0; x < Width; x++ {
			cell := b.grid.Cell(x, VisibleHeight-1-y)
			if cell.Filled {
				b.renderFrame[y][x] = Tile{Kind: TileLocked, Color: cell.Color}
			} else {
				b.renderFrame[y][x] = Tile{}
			}
		}
	}

	if b.active == nil {
		return b.renderFrame
	}

	b.overlay(Ghost(b.grid, *b.active), TileGhost)
	b.overlay(*b.active, TileActive)
	return b.renderFrame
}

func (b *Board) overlay(p Piece, kind TileKind) {
	for _, c := range p.Cells() {
		frameY := VisibleHeight - 1 - c.Y
		if c.X >= 0 && c.X < Width && frameY >= 0 && frameY < VisibleHeight {
			b.renderFrame[frameY][c.X] = Tile{Kind: kind, Color: p.Color}
		}
	}
}
