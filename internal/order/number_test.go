package order

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNumberGenerator_Format(t *testing.T) {
	g := NewNumberGenerator()
	g.now = fixedClock(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))

	n, err := g.Next()
	require.NoError(t, err)
	assert.Equal(t, "ORD-20240115-0001", n)

	n, err = g.Next()
	require.NoError(t, err)
	assert.Equal(t, "ORD-20240115-0002", n)
}

func TestNumberGenerator_DateRolloverResetsSequence(t *testing.T) {
	g := NewNumberGenerator()
	g.now = fixedClock(time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC))

	for i := 0; i < 3; i++ {
		_, err := g.Next()
		require.NoError(t, err)
	}

	g.now = fixedClock(time.Date(2024, 1, 16, 0, 1, 0, 0, time.UTC))

	n, err := g.Next()
	require.NoError(t, err)
	assert.Equal(t, "ORD-20240116-0001", n, "sequence should restart at 1 on a new date")
}

func TestNumberGenerator_TwoDatesNeverCollide(t *testing.T) {
	g := NewNumberGenerator()
	seen := make(map[string]bool)

	g.now = fixedClock(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	for i := 0; i < 50; i++ {
		n, err := g.Next()
		require.NoError(t, err)
		assert.False(t, seen[n])
		seen[n] = true
	}

	g.now = fixedClock(time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC))
	for i := 0; i < 50; i++ {
		n, err := g.Next()
		require.NoError(t, err)
		assert.False(t, seen[n])
		seen[n] = true
	}
}

func TestNumberGenerator_SequenceExhausted(t *testing.T) {
	g := NewNumberGenerator()
	g.now = fixedClock(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	g.date = "20240115"
	g.seq = maxDailySequence - 1

	n, err := g.Next()
	require.NoError(t, err)
	assert.Equal(t, "ORD-20240115-9999", n)

	_, err = g.Next()
	assert.ErrorIs(t, err, ErrSequenceExhausted)

	// The next day recovers.
	g.now = fixedClock(time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC))
	n, err = g.Next()
	require.NoError(t, err)
	assert.Equal(t, "ORD-20240116-0001", n)
}

func TestNumberGenerator_ConcurrentCallsAreDistinct(t *testing.T) {
	const callers = 200

	g := NewNumberGenerator()
	g.now = fixedClock(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))

	var wg sync.WaitGroup
	results := make(chan string, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := g.Next()
			if err != nil {
				results <- fmt.Sprintf("error: %v", err)
				return
			}
			results <- n
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool, callers)
	for n := range results {
		assert.False(t, seen[n], "duplicate order number %s", n)
		seen[n] = true
	}
	assert.Len(t, seen, callers)
}
