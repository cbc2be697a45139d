package tetris

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLevelForLines(t *testing.T) {
	tests := []struct {
		lines, want int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{25, 3},
		{99, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForLines(tt.lines), "lines=%d", tt.lines)
	}
}

func TestScoreDelta(t *testing.T) {
	tests := []struct {
		lines, level, want int
	}{
		{1, 1, 100},
		{2, 1, 300},
		{3, 2, 1000},
		{4, 3, 2400},
		{0, 5, 0},
		{5, 1, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d lines at level %d", tt.lines, tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreDelta(tt.lines, tt.level))
		})
	}
}

func TestGravityPeriod(t *testing.T) {
	assert.Equal(t, time.Second, GravityPeriod(1))
	assert.Equal(t, time.Second, GravityPeriod(0))
	assert.Equal(t, MinGravityPeriod, GravityPeriod(30))

	prev := GravityPeriod(1)
	for level := 2; level <= 40; level++ {
		period := GravityPeriod(level)
		assert.LessOrEqual(t, period, prev, "level %d", level)
		assert.GreaterOrEqual(t, period, MinGravityPeriod, "level %d", level)
		prev = period
	}
}

func TestScoringApply(t *testing.T) {
	s := NewScoring()
	assert.Equal(t, Scoring{Level: 1}, s)

	scoreChanged, levelChanged := s.Apply(0)
	assert.False(t, scoreChanged)
	assert.False(t, levelChanged)

	s.Lines = 8
	scoreChanged, levelChanged = s.Apply(1)
	assert.True(t, scoreChanged)
	assert.False(t, levelChanged)
	assert.Equal(t, Scoring{Level: 1, Score: 100, Lines: 9}, s)

	// the clear is paid at the level it was made on
	scoreChanged, levelChanged = s.Apply(4)
	assert.True(t, scoreChanged)
	assert.True(t, levelChanged)
	assert.Equal(t, Scoring{Level: 2, Score: 900, Lines: 13}, s)

	s.Reset()
	assert.Equal(t, NewScoring(), s)
}
