// Package tetris is a falling-block puzzle engine: a 10x20 board with a six row
// hidden buffer, SRS rotation with wall kicks, 7-bag piece supply, lock delay,
// gravity that speeds up with the level, and guideline line-clear scoring.
//
// The engine is tick driven and single threaded. Callers feed elapsed time and
// logical actions into Board.Tick and receive the resulting events.
package tetris

import (
	"io"
	"log"
	"time"

	"github.com/pkg/errors"
)

// DefaultLockDelay is how long a piece may rest before it locks.
const DefaultLockDelay = 500 * time.Millisecond

type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhasePlaying:
		return "playing"
	case PhaseLost:
		return "lost"
	}
	return "unknown"
}

type LockState int

const (
	LockFalling LockState = iota
	LockResting
	LockLocked
)

func (s LockState) String() string {
	switch s {
	case LockFalling:
		return "falling"
	case LockResting:
		return "resting"
	case LockLocked:
		return "locked"
	}
	return "unknown"
}

type State struct {
	Cells          []Cell
	Active         *Piece
	Ghost          *Piece
	Next           Letter
	HasNext        bool
	Queue          []Letter
	Scoring        Scoring
	Phase          Phase
	LockState      LockState
	LockElapsed    time.Duration
	GravityElapsed time.Duration
	GravityPeriod  time.Duration
}

type Board struct {
	generator    BagGenerator
	lockDelay    time.Duration
	hardDropLock bool
	logger       *log.Logger

	grid      *Grid
	queue     *Queue
	scoring   Scoring
	active    *Piece
	lockState LockState
	gravity   timer
	lock      timer
	phase     Phase
	started   bool

	events      []Event
	renderFrame [][]Tile
}

type BoardOption func(*Board)

func WithBagGenerator(generator BagGenerator) BoardOption {
	return func(board *Board) {
		board.generator = generator
	}
}

func WithSeed(seed int64) BoardOption {
	return func(board *Board) {
		board.generator = NewRandomBagGenerator(seed)
	}
}

func WithLockDelay(delay time.Duration) BoardOption {
	if delay < 0 {
		panic(errors.Errorf("lock delay cannot be negative, got %s", delay))
	}
	return func(board *Board) {
		board.lockDelay = delay
	}
}

// WithHardDropLock makes a hard drop lock the piece at once instead of
// waiting out the lock delay.
func WithHardDropLock(enabled bool) BoardOption {
	return func(board *Board) {
		board.hardDropLock = enabled
	}
}

func WithLogger(logger *log.Logger) BoardOption {
	return func(board *Board) {
		board.logger = logger
	}
}

func NewBoard(options ...BoardOption) *Board {
	board := &Board{
		generator: NewRandomBagGenerator(time.Now().UnixNano()),
		lockDelay: DefaultLockDelay,
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range options {
		opt(board)
	}

	board.grid = NewGrid()
	board.queue = NewQueue(board.generator)
	board.renderFrame = make([][]Tile, VisibleHeight)
	for i := range board.renderFrame {
		board.renderFrame[i] = make([]Tile, Width)
	}
	board.reset()

	return board
}

// Tick runs one simulation step. Actions are applied first, in order, so a
// move made in this tick can still reset the lock timer before gravity and
// lock resolution run.
func (b *Board) Tick(elapsed time.Duration, actions ...Action) []Event {
	b.events = nil
	b.started = false

	for _, action := range actions {
		b.apply(action)
	}

	// A game started or restarted in this tick begins with neutral timers.
	if !b.started && b.phase == PhasePlaying {
		b.applyGravity(elapsed)
		b.advanceLockTimer(elapsed)
		b.resolveLock()
	}

	return b.flush()
}

// Apply handles a single action without advancing time.
func (b *Board) Apply(action Action) []Event {
	b.events = nil
	b.apply(action)
	return b.flush()
}

func (b *Board) flush() []Event {
	events := b.events
	b.events = nil
	return events
}

func (b *Board) emit(e Event) {
	b.events = append(b.events, e)
}

func (b *Board) apply(action Action) {
	switch action {
	case ActionStart:
		if b.phase == PhaseNotStarted {
			b.start()
		}
		return
	case ActionRestart:
		b.logger.Printf("restarting game from phase %s\n", b.phase)
		b.reset()
		b.start()
		return
	case ActionToggleHelp:
		return
	}

	if b.phase != PhasePlaying || b.active == nil {
		return
	}

	switch action {
	case ActionMoveLeft:
		b.applyShift(-1)
	case ActionMoveRight:
		b.applyShift(1)
	case ActionSoftDrop:
		b.applySoftDrop()
	case ActionHardDrop:
		b.applyHardDrop()
	case ActionRotateCW:
		b.applyRotate(true)
	case ActionRotateCCW:
		b.applyRotate(false)
	}
}

func (b *Board) reset() {
	b.grid.Reset()
	b.queue.Reset()
	b.scoring.Reset()
	b.active = nil
	b.lockState = LockFalling
	b.gravity = newTimer(GravityPeriod(b.scoring.Level))
	b.lock = newTimer(b.lockDelay)
	b.phase = PhaseNotStarted

	b.emit(Event{Type: EventGridChanged})
	b.emit(Event{Type: EventScoreChanged, Score: b.scoring.Score})
	b.emit(Event{Type: EventLevelChanged, Level: b.scoring.Level})
}

func (b *Board) start() {
	b.logger.Printf("game started\n")
	b.phase = PhasePlaying
	b.started = true
	b.queue.Refill()
	b.spawn()
}

func (b *Board) spawn() {
	letter, err := b.queue.Pop()
	if err != nil {
		panic(errors.Wrap(err, "cannot spawn next piece"))
	}
	if b.queue.LowWatermark() {
		b.queue.Refill()
	}

	piece := NewPiece(letter)
	b.active = &piece
	b.lockState = LockFalling
	b.gravity.reset()
	b.lock.reset()

	b.emit(Event{Type: EventPieceSpawned, Piece: piece})
	next, _ := b.queue.Peek()
	b.emit(Event{Type: EventQueueChanged, Next: next})

	if b.grid.WouldCollide(piece.Shape, piece.Position) {
		b.logger.Printf("block out: %s cannot spawn\n", letter)
		b.gameOver()
	}
}

func (b *Board) gameOver() {
	b.phase = PhaseLost
	b.emit(Event{Type: EventGameOver, Score: b.scoring.Score, Level: b.scoring.Level, Lines: b.scoring.Lines})
}

func (b *Board) moved(p Piece) {
	b.active = &p
	b.lock.reset()
	b.refreshLockState()
	b.emit(Event{Type: EventPieceMoved, Piece: p})
}

func (b *Board) refreshLockState() {
	if IsResting(b.grid, *b.active) {
		b.lockState = LockResting
	} else {
		b.lockState = LockFalling
	}
}

func (b *Board) applyShift(dx int) {
	if p, ok := Translate(b.grid, *b.active, dx, 0); ok {
		b.moved(p)
	}
}

func (b *Board) applySoftDrop() {
	if p, ok := Translate(b.grid, *b.active, 0, -1); ok {
		b.gravity.reset()
		b.moved(p)
	}
}

func (b *Board) applyHardDrop() {
	distance := DropDistance(b.grid, *b.active)
	p, _ := Translate(b.grid, *b.active, 0, -distance)
	b.gravity.reset()
	if distance > 0 {
		b.moved(p)
	} else {
		b.lock.reset()
		b.refreshLockState()
	}

	if b.hardDropLock {
		b.lockPiece()
	}
}

func (b *Board) applyRotate(clockwise bool) {
	if p, ok := Rotate(b.grid, *b.active, clockwise); ok {
		b.moved(p)
	}
}

func (b *Board) applyGravity(elapsed time.Duration) {
	fired := b.gravity.advance(elapsed)
	for i := 0; i < fired; i++ {
		p, ok := Translate(b.grid, *b.active, 0, -1)
		if !ok {
			return
		}
		b.moved(p)
	}
}

func (b *Board) advanceLockTimer(elapsed time.Duration) {
	if !IsResting(b.grid, *b.active) {
		b.lockState = LockFalling
		b.lock.reset()
		return
	}
	b.lockState = LockResting
	b.lock.add(elapsed)
}

func (b *Board) resolveLock() {
	if b.lockState == LockResting && b.lock.done() {
		b.lockPiece()
	}
}

func (b *Board) lockPiece() {
	piece := *b.active
	if err := b.grid.Lock(piece); err != nil {
		panic(errors.Wrap(err, "lock invariant violated"))
	}
	b.active = nil
	b.lockState = LockLocked
	b.gravity.reset()
	b.lock.reset()
	b.emit(Event{Type: EventPieceLocked, Piece: piece})
	b.logger.Printf("locked %s at (%d,%d) rotation %d\n", piece.Letter, piece.Position.X, piece.Position.Y, piece.Rotation)

	if isToppedOut(piece) {
		b.logger.Printf("top out: %s locked above the visible field, score=%d lines=%d\n", piece.Letter, b.scoring.Score, b.scoring.Lines)
		b.emit(Event{Type: EventGridChanged})
		b.gameOver()
		return
	}

	if cleared := b.grid.ClearFullRows(); cleared > 0 {
		b.emit(Event{Type: EventLinesCleared, Lines: cleared})
		scoreChanged, levelChanged := b.scoring.Apply(cleared)
		b.logger.Printf("cleared %d rows, score=%d lines=%d level=%d\n", cleared, b.scoring.Score, b.scoring.Lines, b.scoring.Level)
		if scoreChanged {
			b.emit(Event{Type: EventScoreChanged, Score: b.scoring.Score})
		}
		if levelChanged {
			b.gravity.setPeriod(GravityPeriod(b.scoring.Level))
			b.emit(Event{Type: EventLevelChanged, Level: b.scoring.Level})
		}
	}
	b.emit(Event{Type: EventGridChanged})

	b.spawn()
}

// isToppedOut reports whether any cell of a locking piece lies in the hidden buffer.
func isToppedOut(p Piece) bool {
	for _, c := range p.Cells() {
		if c.Y >= VisibleHeight {
			return true
		}
	}
	return false
}

func (b *Board) Phase() Phase {
	return b.phase
}

func (b *Board) Scoring() Scoring {
	return b.scoring
}

func (b *Board) Active() (Piece, bool) {
	if b.active == nil {
		return Piece{}, false
	}
	return *b.active, true
}

func (b *Board) Next() (Letter, bool) {
	return b.queue.Peek()
}

func (b *Board) GetState() State {
	state := State{
		Cells:          b.grid.Cells(),
		Queue:          b.queue.Letters(),
		Scoring:        b.scoring,
		Phase:          b.phase,
		LockState:      b.lockState,
		LockElapsed:    b.lock.elapsed,
		GravityElapsed: b.gravity.elapsed,
		GravityPeriod:  b.gravity.period,
	}
	state.Next, state.HasNext = b.queue.Peek()
	if b.active != nil {
		active := *b.active
		ghost := Ghost(b.grid, active)
		state.Active = &active
		state.Ghost = &ghost
	}
	return state
}
