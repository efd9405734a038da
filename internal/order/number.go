package order

import (
	"fmt"
	"sync"
	"time"
)

const maxDailySequence = 9999

// NumberGenerator produces date-scoped, human-readable order numbers of the
// form ORD-20240115-0001. The (date, sequence) pair is the only shared
// in-memory state in the system; every call runs the whole
// read-date/maybe-reset/increment step under one mutex so concurrent callers
// never observe the same sequence number and a number can never belong to a
// previous date's epoch.
type NumberGenerator struct {
	mu   sync.Mutex
	date string
	seq  int
	now  func() time.Time
}

func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{now: time.Now}
}

// Next returns the next order number for the current UTC date. The sequence
// resets to 1 on date rollover. Past 9999 orders in one day it returns
// ErrSequenceExhausted instead of wrapping around: a refused order is
// recoverable, a duplicate order number is not.
func (g *NumberGenerator) Next() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	today := g.now().UTC().Format("20060102")
	if today != g.date {
		g.date = today
		g.seq = 0
	}

	if g.seq >= maxDailySequence {
		return "", fmt.Errorf("%w: %d orders issued on %s", ErrSequenceExhausted, g.seq, today)
	}
	g.seq++

	return fmt.Sprintf("ORD-%s-%04d", today, g.seq), nil
}
