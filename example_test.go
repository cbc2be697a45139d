package tetris_test

import (
	"fmt"
	"time"

	"github.com/jauhararifin/srstetris"
)

func ExampleBoard() {
	board := tetris.NewBoard(tetris.WithBagGenerator(tetris.NewFixedBagGenerator(
		tetris.LetterT, tetris.LetterI, tetris.LetterO, tetris.LetterJ, tetris.LetterL, tetris.LetterS, tetris.LetterZ,
	)))

	for _, ev := range board.Tick(0, tetris.ActionStart) {
		fmt.Println(ev.Type)
	}

	board.Tick(16*time.Millisecond, tetris.ActionHardDrop)
	for _, ev := range board.Tick(tetris.DefaultLockDelay) {
		fmt.Println(ev.Type)
	}

	active, _ := board.Active()
	next, _ := board.Next()
	fmt.Println(active.Letter, next, board.Phase())
	// Output:
	// piece-spawned
	// queue-changed
	// piece-locked
	// grid-changed
	// piece-spawned
	// queue-changed
	// I O playing
}

func ExampleScoreDelta() {
	level := tetris.LevelForLines(25)
	fmt.Println(level, tetris.ScoreDelta(4, level))
	// Output: 3 2400
}
