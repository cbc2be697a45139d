package tetris

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
)

var ErrQueueEmpty = errors.New("piece queue is empty")

type BagGenerator interface {
	NextBag() [7]Letter
}

type RandomBagGenerator struct {
	randomizer *rand.Rand
}

func NewRandomBagGenerator(seed int64) *RandomBagGenerator {
	return &RandomBagGenerator{randomizer: rand.New(rand.NewSource(seed))}
}

func (r *RandomBagGenerator) NextBag() [7]Letter {
	bag := Letters
	r.randomizer.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	return bag
}

// FixedBagGenerator hands out the same permutation every time.
type FixedBagGenerator struct {
	order [7]Letter
}

func NewFixedBagGenerator(order ...Letter) *FixedBagGenerator {
	if len(order) != len(Letters) {
		panic(fmt.Errorf("a bag needs exactly %d letters, got %d", len(Letters), len(order)))
	}
	seen := make(map[Letter]bool, len(order))
	g := &FixedBagGenerator{}
	for i, l := range order {
		if !l.valid() || seen[l] {
			panic(fmt.Errorf("bag order must use each letter once, %s repeated or invalid", l))
		}
		seen[l] = true
		g.order[i] = l
	}
	return g
}

func (f *FixedBagGenerator) NextBag() [7]Letter {
	return f.order
}

// ParseLetters turns a string such as "IJLOSZT" into letters.
func ParseLetters(s string) ([]Letter, error) {
	letters := make([]Letter, 0, len(s))
	for _, r := range s {
		found := false
		for _, l := range Letters {
			if l.String() == string(r) {
				letters = append(letters, l)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Errorf("unknown tetromino letter %q", r)
		}
	}
	return letters, nil
}

// Queue is the FIFO of upcoming letters, refilled one bag at a time.
type Queue struct {
	generator BagGenerator
	queue     []Letter
}

func NewQueue(generator BagGenerator) *Queue {
	return &Queue{generator: generator, queue: make([]Letter, 0, 2*len(Letters))}
}

func (q *Queue) Refill() {
	bag := q.generator.NextBag()
	q.queue = append(q.queue, bag[:]...)
}

// LowWatermark reports that the queue must be refilled before the next spawn.
func (q *Queue) LowWatermark() bool {
	return len(q.queue) <= 1
}

func (q *Queue) Pop() (Letter, error) {
	if len(q.queue) == 0 {
		return 0, ErrQueueEmpty
	}
	l := q.queue[0]
	q.queue = q.queue[1:]
	return l, nil
}

func (q *Queue) Peek() (Letter, bool) {
	if len(q.queue) == 0 {
		return 0, false
	}
	return q.queue[0], true
}

func (q *Queue) Len() int {
	return len(q.queue)
}

func (q *Queue) Letters() []Letter {
	letters := make([]Letter, len(q.queue))
	copy(letters, q.queue)
	return letters
}

func (q *Queue) Reset() {
	q.queue = q.queue[:0]
}
