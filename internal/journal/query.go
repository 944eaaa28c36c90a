package journal

import (
	"sort"
	"strings"
	"time"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/model"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/timecalc"
)

// Query narrows the collection. Empty fields impose no constraint. From and To
// are inclusive ISO dates compared lexically.
type Query struct {
	Text string
	From string
	To   string
}

// Match reports whether e satisfies every set condition of q.
func (q Query) Match(e model.Entry) bool {
	if q.Text != "" && !strings.Contains(e.SearchText(), strings.ToLower(q.Text)) {
		return false
	}
	if q.From != "" && e.Date < q.From {
		return false
	}
	if q.To != "" && e.Date > q.To {
		return false
	}
	return true
}

// Filter returns the entries matching q in insertion order.
func (s *Store) Filter(q Query) []model.Entry {
	out := []model.Entry{}
	for _, e := range s.entries {
		if q.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// Sorted returns a copy of entries in display order: newest date first, ties
// broken by most recently saved.
func Sorted(entries []model.Entry) []model.Entry {
	out := append([]model.Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].SavedAt > out[j].SavedAt
	})
	return out
}

// Streak counts consecutive days ending today that have at least one entry.
func (s *Store) Streak() int {
	return Streak(s.entries, s.now().In(s.loc))
}

// Streak counts consecutive calendar days, walking back from the day of now,
// on which some entry is dated. It stops at the first day without one.
func Streak(entries []model.Entry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}
	days := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		days[e.Date] = struct{}{}
	}

	streak := 0
	for d := timecalc.StartOfDay(now); ; d = timecalc.PreviousDay(d) {
		if _, ok := days[timecalc.ISODate(d)]; !ok {
			return streak
		}
		streak++
	}
}

// CountByDate tallies entries per ISO date.
func CountByDate(entries []model.Entry) map[string]int {
	counts := map[string]int{}
	for _, e := range entries {
		counts[e.Date]++
	}
	return counts
}
