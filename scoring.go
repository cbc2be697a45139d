package tetris

import "time"

const linesPerLevel = 10

// MinGravityPeriod is one row per frame at 60 frames per second.
const MinGravityPeriod = time.Second / 60

// gravityPeriods follows (0.8-(level-1)*0.007)^(level-1) seconds, index 0 is level 1.
var gravityPeriods = []time.Duration{
	1000 * time.Millisecond,
	793 * time.Millisecond,
	618 * time.Millisecond,
	473 * time.Millisecond,
	355 * time.Millisecond,
	262 * time.Millisecond,
	190 * time.Millisecond,
	135 * time.Millisecond,
	94 * time.Millisecond,
	64 * time.Millisecond,
	43 * time.Millisecond,
	28 * time.Millisecond,
	18 * time.Millisecond,
}

func LevelForLines(lines int) int {
	return lines/linesPerLevel + 1
}

// ScoreDelta is the reward for clearing lines rows with a single lock.
func ScoreDelta(lines, level int) int {
	switch lines {
	case 1:
		return 100 * level
	case 2:
		return 300 * level
	case 3:
		return 500 * level
	case 4:
		return 800 * level
	}
	return 0
}

func GravityPeriod(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	if level > len(gravityPeriods) {
		return MinGravityPeriod
	}
	return gravityPeriods[level-1]
}

type Scoring struct {
	Level int
	Score int
	Lines int
}

func NewScoring() Scoring {
	return Scoring{Level: 1}
}

func (s *Scoring) Reset() {
	*s = NewScoring()
}

// Apply credits a clear of the given size at the current level, then
// recomputes the level from the new line total.
func (s *Scoring) Apply(cleared int) (scoreChanged, levelChanged bool) {
	if cleared <= 0 {
		return false, false
	}

	delta := ScoreDelta(cleared, s.Level)
	s.Score += delta
	s.Lines += cleared

	level := LevelForLines(s.Lines)
	levelChanged = level != s.Level
	s.Level = level
	return delta != 0, levelChanged
}
