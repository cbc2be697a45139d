package tetris

type Letter int

const (
	LetterI Letter = iota
	LetterJ
	LetterL
	LetterO
	LetterS
	LetterZ
	LetterT
)

// Letters lists the seven tetrominoes in canonical order.
var Letters = [7]Letter{LetterI, LetterJ, LetterL, LetterO, LetterS, LetterZ, LetterT}

func (l Letter) String() string {
	switch l {
	case LetterI:
		return "I"
	case LetterJ:
		return "J"
	case LetterL:
		return "L"
	case LetterO:
		return "O"
	case LetterS:
		return "S"
	case LetterZ:
		return "Z"
	case LetterT:
		return "T"
	}
	return "?"
}

func (l Letter) valid() bool {
	return l >= LetterI && l <= LetterT
}

// Color only identifies which piece filled a cell. The engine never branches on it.
type Color int

const (
	ColorNone Color = iota
	ColorCyan
	ColorBlue
	ColorOrange
	ColorYellow
	ColorGreen
	ColorRed
	ColorMagenta
)

func (c Color) String() string {
	switch c {
	case ColorCyan:
		return "cyan"
	case ColorBlue:
		return "blue"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorMagenta:
		return "magenta"
	}
	return "none"
}

// Shape is a 4x4 local frame. Row 0 is the top row of the piece.
type Shape [4][4]bool

var (
	ShapeI = Shape{{true, true, true, true}, {false, false, false, false}, {false, false, false, false}, {false, false, false, false}}
	ShapeJ = Shape{{true, false, false, false}, {true, true, true, false}, {false, false, false, false}, {false, false, false, false}}
	ShapeL = Shape{{false, false, true, false}, {true, true, true, false}, {false, false, false, false}, {false, false, false, false}}
	ShapeO = Shape{{true, true, false, false}, {true, true, false, false}, {false, false, false, false}, {false, false, false, false}}
	ShapeS = Shape{{false, true, true, false}, {true, true, false, false}, {false, false, false, false}, {false, false, false, false}}
	ShapeZ = Shape{{true, true, false, false}, {false, true, true, false}, {false, false, false, false}, {false, false, false, false}}
	ShapeT = Shape{{false, true, false, false}, {true, true, true, false}, {false, false, false, false}, {false, false, false, false}}
)

var spawnShapes = map[Letter]Shape{
	LetterI: ShapeI,
	LetterJ: ShapeJ,
	LetterL: ShapeL,
	LetterO: ShapeO,
	LetterS: ShapeS,
	LetterZ: ShapeZ,
	LetterT: ShapeT,
}

var letterColors = map[Letter]Color{
	LetterI: ColorCyan,
	LetterJ: ColorBlue,
	LetterL: ColorOrange,
	LetterO: ColorYellow,
	LetterS: ColorGreen,
	LetterZ: ColorRed,
	LetterT: ColorMagenta,
}

// Rotate returns the shape turned a quarter turn. The receiver is not modified.
func (s Shape) Rotate(clockwise bool) Shape {
	var r Shape
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if clockwise {
				r[x][3-y] = s[y][x]
			} else {
				r[3-x][y] = s[y][x]
			}
		}
	}
	return r
}

func (s Shape) Count() int {
	n := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if s[y][x] {
				n++
			}
		}
	}
	return n
}

type Position struct {
	X, Y int
}

func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// SpawnPosition is where the top-left corner of every new piece's local frame lands.
// Both of its first two rows sit in the hidden buffer.
var SpawnPosition = Position{X: 3, Y: 21}

type Piece struct {
	Letter   Letter
	Shape    Shape
	Position Position
	Rotation int
	Color    Color
}

func NewPiece(letter Letter) Piece {
	return Piece{
		Letter:   letter,
		Shape:    spawnShapes[letter],
		Position: SpawnPosition,
		Rotation: 0,
		Color:    letterColors[letter],
	}
}

// Cells maps the set cells of the local shape to board coordinates.
// Local row r lands on board row Position.Y - r.
func (p Piece) Cells() []Position {
	cells := make([]Position, 0, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if p.Shape[y][x] {
				cells = append(cells, Position{X: p.Position.X + x, Y: p.Position.Y - y})
			}
		}
	}
	return cells
}
