package tetris

import "time"

// timer accumulates elapsed time against a period.
type timer struct {
	elapsed time.Duration
	period  time.Duration
}

func newTimer(period time.Duration) timer {
	return timer{period: period}
}

// advance adds dt and returns how many whole periods completed, keeping the remainder.
func (t *timer) advance(dt time.Duration) int {
	t.elapsed += dt
	if t.period <= 0 {
		return 0
	}
	fired := int(t.elapsed / t.period)
	t.elapsed -= time.Duration(fired) * t.period
	return fired
}

// add accumulates without wrapping, for one-shot use.
func (t *timer) add(dt time.Duration) {
	t.elapsed += dt
}

func (t *timer) done() bool {
	return t.elapsed >= t.period
}

// setPeriod changes the period and keeps the accumulated phase.
func (t *timer) setPeriod(period time.Duration) {
	t.period = period
}

func (t *timer) reset() {
	t.elapsed = 0
}
