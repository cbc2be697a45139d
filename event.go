package tetris

type EventType int

const (
	EventPieceSpawned EventType = iota
	EventPieceMoved
	EventPieceLocked
	EventLinesCleared
	EventLevelChanged
	EventScoreChanged
	EventGridChanged
	EventQueueChanged
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventPieceSpawned:
		return "piece-spawned"
	case EventPieceMoved:
		return "piece-moved"
	case EventPieceLocked:
		return "piece-locked"
	case EventLinesCleared:
		return "lines-cleared"
	case EventLevelChanged:
		return "level-changed"
	case EventScoreChanged:
		return "score-changed"
	case EventGridChanged:
		return "grid-changed"
	case EventQueueChanged:
		return "queue-changed"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

// Event is an outbound notification. Only the fields relevant to Type are set.
type Event struct {
	Type  EventType
	Piece Piece
	Lines int
	Level int
	Score int
	Next  Letter
}
