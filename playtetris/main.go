package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/JoelOtter/termloop"
	"github.com/google/uuid"
	"github.com/jauhararifin/srstetris"
)

var helpTexts = []string{
	"ENTER  start",
	"LEFT/RIGHT  move",
	"DOWN  soft drop",
	"UP/X  rotate cw",
	"Z  rotate ccw",
	"SPACE  hard drop",
	"R  restart",
	"H  hide help",
}

func main() {
	seed := flag.Int64("seed", 0, "bag randomizer seed, 0 picks one from the clock")
	sequence := flag.String("sequence", "", "fixed bag order such as IJLOSZT, overrides -seed")
	fps := flag.Float64("fps", 60, "frames per second")
	lockDelay := flag.Duration("lock-delay", tetris.DefaultLockDelay, "how long a resting piece waits before locking")
	hardDropLock := flag.Bool("hard-drop-lock", false, "lock immediately on hard drop")
	logPath := flag.String("log", "", "write engine logs to this file")
	flag.Parse()

	logger, closeLog, err := openLogger(*logPath)
	if err != nil {
		log.Fatalf("cannot open log file: %v", err)
	}
	defer closeLog()

	options := []tetris.BoardOption{
		tetris.WithLockDelay(*lockDelay),
		tetris.WithHardDropLock(*hardDropLock),
		tetris.WithLogger(logger),
	}
	if *seed != 0 {
		options = append(options, tetris.WithSeed(*seed))
	}
	if *sequence != "" {
		letters, err := tetris.ParseLetters(*sequence)
		if err != nil {
			log.Fatalf("invalid -sequence: %v", err)
		}
		options = append(options, tetris.WithBagGenerator(tetris.NewFixedBagGenerator(letters...)))
	}

	game := termloop.NewGame()
	game.Screen().SetFps(*fps)
	level := termloop.NewBaseLevel(termloop.Cell{})
	level.AddEntity(NewBoardPlayer(0, 0, logger, options...))
	game.Screen().SetLevel(level)
	game.Start()
}

func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "playtetris ", log.LstdFlags), func() { f.Close() }, nil
}

type boardPlayer struct {
	board  *tetris.Board
	logger *log.Logger
	x, y   int

	pending   []tetris.Action
	showHelp  bool
	sessionID string

	scoreText  *termloop.Text
	levelText  *termloop.Text
	linesText  *termloop.Text
	statusText *termloop.Text
	helpText   []*termloop.Text
}

func NewBoardPlayer(x, y int, logger *log.Logger, options ...tetris.BoardOption) *boardPlayer {
	b := &boardPlayer{
		board:    tetris.NewBoard(options...),
		logger:   logger,
		x:        x,
		y:        y,
		showHelp: true,

		scoreText:  termloop.NewText(x+tetris.Width+3, y+8, "", termloop.ColorWhite, termloop.ColorDefault),
		levelText:  termloop.NewText(x+tetris.Width+3, y+9, "", termloop.ColorWhite, termloop.ColorDefault),
		linesText:  termloop.NewText(x+tetris.Width+3, y+10, "", termloop.ColorWhite, termloop.ColorDefault),
		statusText: termloop.NewText(x+1, y+tetris.VisibleHeight/2, "", termloop.ColorRed, termloop.ColorDefault),
	}
	for i, text := range helpTexts {
		b.helpText = append(b.helpText, termloop.NewText(x+tetris.Width+3, y+13+i, text, termloop.ColorWhite, termloop.ColorDefault))
	}
	return b
}

func (b *boardPlayer) Tick(ev termloop.Event) {
	if ev.Type != termloop.EventKey {
		return
	}

	switch ev.Key {
	case termloop.KeyEnter:
		b.pending = append(b.pending, tetris.ActionStart)
	case termloop.KeyArrowLeft:
		b.pending = append(b.pending, tetris.ActionMoveLeft)
	case termloop.KeyArrowRight:
		b.pending = append(b.pending, tetris.ActionMoveRight)
	case termloop.KeyArrowDown:
		b.pending = append(b.pending, tetris.ActionSoftDrop)
	case termloop.KeyArrowUp:
		b.pending = append(b.pending, tetris.ActionRotateCW)
	case termloop.KeySpace:
		b.pending = append(b.pending, tetris.ActionHardDrop)
	}

	switch ev.Ch {
	case 'x', 'X':
		b.pending = append(b.pending, tetris.ActionRotateCW)
	case 'z', 'Z':
		b.pending = append(b.pending, tetris.ActionRotateCCW)
	case 'r', 'R':
		b.pending = append(b.pending, tetris.ActionRestart)
	case 'h', 'H':
		b.pending = append(b.pending, tetris.ActionToggleHelp)
	}
}

func (b *boardPlayer) step(s *termloop.Screen) {
	actions := b.pending
	b.pending = nil

	for _, action := range actions {
		switch action {
		case tetris.ActionToggleHelp:
			b.showHelp = !b.showHelp
		case tetris.ActionStart, tetris.ActionRestart:
			if action == tetris.ActionStart && b.board.Phase() != tetris.PhaseNotStarted {
				continue
			}
			b.newSession()
		}
	}

	elapsed := time.Duration(s.TimeDelta() * float64(time.Second))
	for _, ev := range b.board.Tick(elapsed, actions...) {
		switch ev.Type {
		case tetris.EventLevelChanged:
			b.logger.Printf("session %s: level %d\n", b.sessionID, ev.Level)
		case tetris.EventLinesCleared:
			b.logger.Printf("session %s: cleared %d lines\n", b.sessionID, ev.Lines)
		case tetris.EventGameOver:
			b.logger.Printf("session %s: game over, score=%d lines=%d level=%d\n", b.sessionID, ev.Score, ev.Lines, ev.Level)
		}
	}
}

func (b *boardPlayer) newSession() {
	id, err := uuid.NewUUID()
	if err != nil {
		b.logger.Printf("cannot generate session id: %v\n", err)
		return
	}
	b.sessionID = id.String()
	b.logger.Printf("session %s: started\n", b.sessionID)
}

func colorAttr(c tetris.Color) termloop.Attr {
	switch c {
	case tetris.ColorCyan:
		return termloop.ColorCyan
	case tetris.ColorBlue:
		return termloop.ColorBlue
	case tetris.ColorYellow:
		return termloop.ColorYellow
	case tetris.ColorGreen:
		return termloop.ColorGreen
	case tetris.ColorRed:
		return termloop.ColorRed
	case tetris.ColorMagenta:
		return termloop.ColorMagenta
	}
	return termloop.ColorWhite
}

func (b *boardPlayer) border(s *termloop.Screen, x, y int) {
	s.RenderCell(x, y, &termloop.Cell{
		Fg: termloop.ColorWhite,
		Bg: termloop.ColorBlack,
		Ch: '+',
	})
}

func (b *boardPlayer) Draw(s *termloop.Screen) {
	b.step(s)

	width, height := tetris.Width, tetris.VisibleHeight
	for i := 0; i < width+2; i++ {
		b.border(s, b.x+i, b.y)
		b.border(s, b.x+i, b.y+height+1)
	}
	for i := 0; i < height+2; i++ {
		b.border(s, b.x, b.y+i)
		b.border(s, b.x+width+1, b.y+i)
	}

	for i := 0; i < 6; i++ {
		b.border(s, b.x+width+3+i, b.y)
		b.border(s, b.x+width+3+i, b.y+5)
		b.border(s, b.x+width+3, b.y+i)
		b.border(s, b.x+width+8, b.y+i)
	}

	scoring := b.board.Scoring()
	b.scoreText.SetText(fmt.Sprintf("Score: %d", scoring.Score))
	b.scoreText.Draw(s)
	b.levelText.SetText(fmt.Sprintf("Level: %d", scoring.Level))
	b.levelText.Draw(s)
	b.linesText.SetText(fmt.Sprintf("Lines: %d", scoring.Lines))
	b.linesText.Draw(s)

	if next, ok := b.board.Next(); ok && b.board.Phase() == tetris.PhasePlaying {
		piece := tetris.NewPiece(next)
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				ch := rune(0)
				if piece.Shape[y][x] {
					ch = '@'
				}
				s.RenderCell(b.x+width+4+x, b.y+1+y, &termloop.Cell{
					Fg: colorAttr(piece.Color),
					Bg: termloop.ColorBlack,
					Ch: ch,
				})
			}
		}
	}

	tiles := b.board.Render()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fg := termloop.ColorWhite
			bg := termloop.ColorBlack
			ch := rune(0)

			tile := tiles[y][x]
			switch tile.Kind {
			case tetris.TileActive:
				fg = colorAttr(tile.Color)
				ch = '@'
			case tetris.TileGhost:
				fg = colorAttr(tile.Color)
				ch = '.'
			case tetris.TileLocked:
				fg = colorAttr(tile.Color)
				ch = '#'
			}

			s.RenderCell(b.x+1+x, b.y+1+y, &termloop.Cell{
				Fg: fg,
				Bg: bg,
				Ch: ch,
			})
		}
	}

	switch b.board.Phase() {
	case tetris.PhaseNotStarted:
		b.statusText.SetText("ENTER to start")
		b.statusText.Draw(s)
	case tetris.PhaseLost:
		b.statusText.SetText("You Lose! R")
		b.statusText.Draw(s)
	}

	if b.showHelp {
		for _, text := range b.helpText {
			text.Draw(s)
		}
	}
}
