package journal_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/journal"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/model"
)

func ids(entries []model.Entry) []string {
	out := []string{}
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestStreak(t *testing.T) {
	now := time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"empty", nil, 0},
		{"three days then gap", []string{"2026-03-01", "2026-02-28", "2026-02-27", "2026-02-25"}, 3},
		{"duplicates on one day count once", []string{"2026-03-01", "2026-03-01", "2026-03-01"}, 1},
		{"nothing today", []string{"2026-02-28", "2026-02-27"}, 0},
		{"future entries ignored", []string{"2026-03-02", "2026-03-01"}, 1},
		{"crosses leap-free february", []string{"2026-03-01", "2026-02-28"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []model.Entry
			for _, d := range tt.dates {
				entries = append(entries, model.Entry{Date: d})
			}
			assert.Equal(t, tt.want, journal.Streak(entries, now))
		})
	}
}

func TestStore_Streak(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	assert.Equal(t, 0, f.store.Streak())

	for _, d := range []string{"2026-02-27", "2026-02-26", "2026-02-25", "2026-02-23"} {
		_, err := f.store.Save(ctx, model.Draft{Date: d}, "")
		require.NoError(t, err)
	}
	assert.Equal(t, 3, f.store.Streak())
}

func TestFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	save := func(d model.Draft) model.Entry {
		e, err := f.store.Save(ctx, d, "")
		require.NoError(t, err)
		return e
	}
	calm := save(model.Draft{Date: "2026-02-10", Notes: "A Calm evening"})
	calmOutside := save(model.Draft{Date: "2026-01-05", Notes: "calm too"})
	tagged := save(model.Draft{Date: "2026-02-12", Tags: "family, CALMNESS"})
	other := save(model.Draft{Date: "2026-02-15", G1: "sunshine", Feel: "bright"})

	tests := []struct {
		name string
		q    journal.Query
		want []string
	}{
		{"no filters", journal.Query{}, []string{calm.ID, calmOutside.ID, tagged.ID, other.ID}},
		{"text case-insensitive", journal.Query{Text: "CALM"}, []string{calm.ID, calmOutside.ID, tagged.ID}},
		{"text with range", journal.Query{Text: "calm", From: "2026-02-01", To: "2026-02-28"}, []string{calm.ID, tagged.ID}},
		{"inclusive bounds", journal.Query{From: "2026-02-12", To: "2026-02-15"}, []string{tagged.ID, other.ID}},
		{"only upper bound", journal.Query{To: "2026-02-10"}, []string{calm.ID, calmOutside.ID}},
		{"feel field", journal.Query{Text: "bright"}, []string{other.ID}},
		{"mood field", journal.Query{Text: model.DefaultMood}, []string{calm.ID, calmOutside.ID, tagged.ID, other.ID}},
		{"no match", journal.Query{Text: "storm"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(f.store.Filter(tt.q)))
		})
	}
	assert.Equal(t, 4, f.store.Len(), "filter must not mutate")
}

func TestSorted(t *testing.T) {
	in := []model.Entry{
		{ID: "old", Date: "2026-01-01", SavedAt: 5},
		{ID: "new-early", Date: "2026-02-01", SavedAt: 1},
		{ID: "new-late", Date: "2026-02-01", SavedAt: 9},
		{ID: "mid", Date: "2026-01-15", SavedAt: 3},
	}
	got := journal.Sorted(in)
	assert.Equal(t, []string{"new-late", "new-early", "mid", "old"}, ids(got))
	assert.Equal(t, "old", in[0].ID, "input must not be reordered")
}

func TestCountByDate(t *testing.T) {
	counts := journal.CountByDate([]model.Entry{{Date: "a"}, {Date: "b"}, {Date: "a"}})
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, counts)
}
