package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPermutation(t *testing.T, letters []Letter) {
	t.Helper()
	require.Len(t, letters, len(Letters))
	assert.ElementsMatch(t, Letters[:], letters)
}

func TestRandomBagGenerator(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1234567} {
		g := NewRandomBagGenerator(seed)
		for i := 0; i < 20; i++ {
			bag := g.NextBag()
			assertPermutation(t, bag[:])
		}
	}
}

func TestRandomBagGeneratorDeterministic(t *testing.T) {
	a, b := NewRandomBagGenerator(99), NewRandomBagGenerator(99)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.NextBag(), b.NextBag())
	}
}

func TestFixedBagGenerator(t *testing.T) {
	g := NewFixedBagGenerator(LetterT, LetterS, LetterZ, LetterO, LetterI, LetterJ, LetterL)
	want := [7]Letter{LetterT, LetterS, LetterZ, LetterO, LetterI, LetterJ, LetterL}
	assert.Equal(t, want, g.NextBag())
	assert.Equal(t, want, g.NextBag())

	assert.Panics(t, func() { NewFixedBagGenerator(LetterT, LetterS) })
	assert.Panics(t, func() {
		NewFixedBagGenerator(LetterT, LetterT, LetterZ, LetterO, LetterI, LetterJ, LetterL)
	})
	assert.Panics(t, func() {
		NewFixedBagGenerator(LetterT, Letter(9), LetterZ, LetterO, LetterI, LetterJ, LetterL)
	})
}

func TestParseLetters(t *testing.T) {
	letters, err := ParseLetters("TIO")
	require.NoError(t, err)
	assert.Equal(t, []Letter{LetterT, LetterI, LetterO}, letters)

	_, err = ParseLetters("TIX")
	assert.Error(t, err)
}

func TestQueue(t *testing.T) {
	q := NewQueue(NewFixedBagGenerator(Letters[:]...))
	assert.True(t, q.LowWatermark())

	_, err := q.Pop()
	assert.ErrorIs(t, err, ErrQueueEmpty)
	_, ok := q.Peek()
	assert.False(t, ok)

	q.Refill()
	assert.Equal(t, 7, q.Len())
	assert.False(t, q.LowWatermark())

	head, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, LetterI, head)
	assert.Equal(t, 7, q.Len(), "peek does not consume")

	for i := 0; i < 6; i++ {
		l, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, Letters[i], l)
	}
	assert.True(t, q.LowWatermark())
	assert.Equal(t, []Letter{LetterT}, q.Letters())

	q.Refill()
	assert.Equal(t, 8, q.Len())

	q.Reset()
	assert.Equal(t, 0, q.Len())
	q.Refill()
	assertPermutation(t, q.Letters())
}
