package journal_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/journal"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/storage"
)

// clock is a settable time source.
type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// seqIDs returns ids "e1", "e2", ...
func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("e%d", n)
	}
}

type fixture struct {
	slot  *storage.MemorySlot
	clock *clock
	store *journal.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		slot:  storage.NewMemorySlot(),
		clock: &clock{t: time.Date(2026, 2, 27, 9, 30, 0, 0, time.UTC)},
	}
	f.store = f.open()
	return f
}

// open builds a fresh store over the fixture's slot, simulating a reload.
func (f *fixture) open() *journal.Store {
	return journal.Open(context.Background(), f.slot,
		journal.WithClock(f.clock.Now),
		journal.WithLocation(time.UTC),
		journal.WithIDGenerator(seqIDs()),
	)
}
