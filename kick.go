package tetris

// Offset is a kick candidate in the table convention, where dy grows downward.
type Offset struct {
	DX, DY int
}

// Board converts the offset to the board convention, where y grows upward.
func (o Offset) Board() (dx, dy int) {
	return o.DX, -o.DY
}

type transition struct {
	from, to int
}

var kicksJLSTZ = map[transition][]Offset{
	{0, 1}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{1, 2}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{2, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{3, 0}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{1, 0}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{2, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{3, 2}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{0, 3}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
}

var kicksI = map[transition][]Offset{
	{0, 1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{1, 2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{2, 3}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{3, 0}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{1, 0}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{2, 1}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{3, 2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{0, 3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
}

// KickTable returns the ordered candidates for rotating letter from one rotation index to another.
// O has none and unknown transitions have none.
func KickTable(letter Letter, from, to int) []Offset {
	switch letter {
	case LetterI:
		return kicksI[transition{from, to}]
	case LetterJ, LetterL, LetterS, LetterT, LetterZ:
		return kicksJLSTZ[transition{from, to}]
	}
	return nil
}

func nextRotation(rotation int, clockwise bool) int {
	if clockwise {
		return (rotation + 1) % 4
	}
	return (rotation + 3) % 4
}

// Rotate tries to turn the piece, kicking it through the SRS table when the
// plain rotation collides. On failure the unchanged piece is returned with false.
func Rotate(g *Grid, p Piece, clockwise bool) (Piece, bool) {
	if p.Letter == LetterO {
		return p, false
	}

	to := nextRotation(p.Rotation, clockwise)
	shape := p.Shape.Rotate(clockwise)
	for _, offset := range KickTable(p.Letter, p.Rotation, to) {
		dx, dy := offset.Board()
		pos := p.Position.Add(dx, dy)
		if g.WouldCollide(shape, pos) {
			continue
		}
		p.Shape = shape
		p.Position = pos
		p.Rotation = to
		return p, true
	}
	return p, false
}

func Translate(g *Grid, p Piece, dx, dy int) (Piece, bool) {
	pos := p.Position.Add(dx, dy)
	if g.WouldCollide(p.Shape, pos) {
		return p, false
	}
	p.Position = pos
	return p, true
}

// IsResting reports whether the piece is sitting on the floor or on the stack.
func IsResting(g *Grid, p Piece) bool {
	return g.WouldCollide(p.Shape, p.Position.Add(0, -1))
}

func DropDistance(g *Grid, p Piece) int {
	distance := 0
	for !g.WouldCollide(p.Shape, p.Position.Add(0, -distance-1)) {
		distance++
	}
	return distance
}

// Ghost is the piece projected to where a hard drop would leave it.
func Ghost(g *Grid, p Piece) Piece {
	p.Position = p.Position.Add(0, -DropDistance(g, p))
	return p
}
