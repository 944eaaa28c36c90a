// Package journal implements the gratitude entry store: an ordered collection
// of entries mirrored as one JSON array into a storage.Slot after every
// mutation, with filtering, streak counting and JSON/CSV import and export.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/logging"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/model"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/storage"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/timecalc"
)

// DefaultKey is the slot key the entry collection is stored under.
const DefaultKey = "gratitude.v1.entries"

// Store owns the entry collection. It is not safe for concurrent use; the
// CLI drives it from a single goroutine.
type Store struct {
	slot    storage.Slot
	key     string
	log     logging.Logger
	now     func() time.Time
	loc     *time.Location
	mood    string
	newID   func() string
	entries []model.Entry
	index   map[string]int
}

// Option customizes a Store.
type Option func(*Store)

func WithKey(key string) Option { return func(s *Store) { s.key = key } }

func WithLogger(l logging.Logger) Option { return func(s *Store) { s.log = l } }

// WithClock sets the time source used for savedAt and "today".
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// WithLocation sets the timezone calendar days are computed in.
func WithLocation(loc *time.Location) Option { return func(s *Store) { s.loc = loc } }

func WithDefaultMood(mood string) Option { return func(s *Store) { s.mood = mood } }

// WithIDGenerator replaces the UUID generator, mainly for tests.
func WithIDGenerator(gen func() string) Option { return func(s *Store) { s.newID = gen } }

// Open creates a Store on slot and loads the persisted collection.
func Open(ctx context.Context, slot storage.Slot, opts ...Option) *Store {
	s := &Store{
		slot:  slot,
		key:   DefaultKey,
		log:   logging.Discard(),
		now:   time.Now,
		loc:   time.Local,
		mood:  model.DefaultMood,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Load(ctx)
	return s
}

// Load replaces the in-memory collection with the persisted one. Missing,
// unreadable or malformed data yields an empty collection.
func (s *Store) Load(ctx context.Context) {
	s.setEntries(nil)

	data, err := s.slot.Get(ctx, s.key)
	if err != nil {
		s.log.Warn(ctx, "journal unreadable, starting empty", "key", s.key, "err", err)
		return
	}
	if data == nil {
		s.log.Debug(ctx, "no journal stored yet", "key", s.key)
		return
	}

	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.log.Warn(ctx, "journal corrupt, starting empty", "key", s.key, "err", err)
		if b, ok := s.slot.(storage.Backuper); ok {
			if err := b.Backup(ctx, s.key); err != nil {
				s.log.Error(ctx, "backing up corrupt journal failed", "key", s.key, "err", err)
			}
		}
		return
	}
	for i := range entries {
		entries[i].Tags = model.CleanTags(entries[i].Tags)
	}
	s.setEntries(entries)
	s.log.Debug(ctx, "journal loaded", "key", s.key, "entries", len(entries))
}

// setEntries replaces the collection and rebuilds the id index. When ids
// repeat, the index points at the first occurrence.
func (s *Store) setEntries(entries []model.Entry) {
	if entries == nil {
		entries = []model.Entry{}
	}
	s.entries = entries
	s.index = make(map[string]int, len(entries))
	for i, e := range entries {
		if _, seen := s.index[e.ID]; !seen {
			s.index[e.ID] = i
		}
	}
}

func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("encoding journal: %w", err)
	}
	if err := s.slot.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("persisting journal: %w", err)
	}
	return nil
}

// Entries returns a copy of the collection in insertion order.
func (s *Store) Entries() []model.Entry {
	return append([]model.Entry(nil), s.entries...)
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.entries) }

// Get looks up an entry by id.
func (s *Store) Get(id string) (model.Entry, bool) {
	i, ok := s.index[id]
	if !ok {
		return model.Entry{}, false
	}
	return s.entries[i], true
}

// Today returns the current calendar day in the store's location.
func (s *Store) Today() string {
	return timecalc.ISODate(s.now().In(s.loc))
}

// Location returns the timezone calendar days are computed in.
func (s *Store) Location() *time.Location { return s.loc }

// Save creates or updates an entry from d. When targetID names an existing
// entry it is replaced in place with its id kept; otherwise a new entry is
// appended. savedAt is refreshed either way.
func (s *Store) Save(ctx context.Context, d model.Draft, targetID string) (model.Entry, error) {
	e := model.Entry{
		Date:    strings.TrimSpace(d.Date),
		G1:      strings.TrimSpace(d.G1),
		G2:      strings.TrimSpace(d.G2),
		G3:      strings.TrimSpace(d.G3),
		Notes:   strings.TrimSpace(d.Notes),
		Mood:    d.Mood,
		Tags:    model.ParseTags(d.Tags),
		Feel:    strings.TrimSpace(d.Feel),
		SavedAt: timecalc.Millis(s.now()),
	}
	if e.Date == "" {
		e.Date = s.Today()
	}
	if e.Mood == "" {
		e.Mood = s.mood
	}

	if i, ok := s.index[targetID]; ok && targetID != "" {
		e.ID = targetID
		// The clock may step backwards; savedAt must not.
		if prev := s.entries[i].SavedAt; e.SavedAt < prev {
			e.SavedAt = prev
		}
		s.entries[i] = e
		s.log.Debug(ctx, "entry updated", "id", e.ID)
	} else {
		e.ID = s.uniqueID()
		s.index[e.ID] = len(s.entries)
		s.entries = append(s.entries, e)
		s.log.Debug(ctx, "entry created", "id", e.ID)
	}

	if err := s.persist(ctx); err != nil {
		return model.Entry{}, err
	}
	return e, nil
}

// Duplicate appends a copy of the entry with the given id under a fresh id.
// It reports false and does nothing when id is unknown.
func (s *Store) Duplicate(ctx context.Context, id string) (model.Entry, bool, error) {
	src, ok := s.Get(id)
	if !ok {
		return model.Entry{}, false, nil
	}
	cp := src
	cp.Tags = append([]string{}, src.Tags...)
	cp.ID = s.uniqueID()
	cp.SavedAt = timecalc.Millis(s.now())

	s.index[cp.ID] = len(s.entries)
	s.entries = append(s.entries, cp)
	if err := s.persist(ctx); err != nil {
		return model.Entry{}, false, err
	}
	return cp, true, nil
}

// Delete removes every entry with the given id once c confirms. The
// collection is written back even when nothing matched. It reports whether
// an entry was removed.
func (s *Store) Delete(ctx context.Context, id string, c Confirmer) (bool, error) {
	ok, err := c.Confirm("Delete this entry?")
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	kept := make([]model.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	removed := len(kept) != len(s.entries)
	s.setEntries(kept)

	if err := s.persist(ctx); err != nil {
		return false, err
	}
	return removed, nil
}

// uniqueID draws ids until one is not in use.
func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if _, taken := s.index[id]; !taken && id != "" {
			return id
		}
	}
}
