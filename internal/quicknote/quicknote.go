// Package quicknote is the minimal journal variant: one line of text and a
// timestamp per note, deleted by position. It uses its own slot key and
// never reads or writes gratitude entries.
package quicknote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/logging"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/storage"
)

// DefaultKey is the slot key quick notes are stored under.
const DefaultKey = "gratitude.quick.v1"

// ErrEmpty is returned when adding a note with no text.
var ErrEmpty = errors.New("note text is empty")

// Note is a single quick note. At is milliseconds since the Unix epoch.
type Note struct {
	Text string `json:"text"`
	At   int64  `json:"at"`
}

// Store holds notes newest first.
type Store struct {
	slot  storage.Slot
	key   string
	log   logging.Logger
	now   func() time.Time
	notes []Note
}

func Open(ctx context.Context, slot storage.Slot, log logging.Logger, now func() time.Time) *Store {
	s := &Store{slot: slot, key: DefaultKey, log: log, now: now}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	s.notes = []Note{}
	data, err := s.slot.Get(ctx, s.key)
	if err != nil || data == nil {
		if err != nil {
			s.log.Warn(ctx, "quick notes unreadable, starting empty", "key", s.key, "err", err)
		}
		return
	}
	var notes []Note
	if err := json.Unmarshal(data, &notes); err != nil {
		s.log.Warn(ctx, "quick notes corrupt, starting empty", "key", s.key, "err", err)
		return
	}
	if notes != nil {
		s.notes = notes
	}
}

func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.notes)
	if err != nil {
		return fmt.Errorf("encoding quick notes: %w", err)
	}
	if err := s.slot.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("persisting quick notes: %w", err)
	}
	return nil
}

// Add prepends a note.
func (s *Store) Add(ctx context.Context, text string) (Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Note{}, ErrEmpty
	}
	n := Note{Text: text, At: s.now().UnixMilli()}
	s.notes = append([]Note{n}, s.notes...)
	if err := s.persist(ctx); err != nil {
		return Note{}, err
	}
	return n, nil
}

// List returns the notes, newest first.
func (s *Store) List() []Note {
	return append([]Note(nil), s.notes...)
}

// DeleteAt removes the note at index i of List. Out-of-range indexes are
// ignored and reported as false.
func (s *Store) DeleteAt(ctx context.Context, i int) (bool, error) {
	if i < 0 || i >= len(s.notes) {
		return false, nil
	}
	s.notes = append(s.notes[:i], s.notes[i+1:]...)
	if err := s.persist(ctx); err != nil {
		return false, err
	}
	return true, nil
}
