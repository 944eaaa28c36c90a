package journal

import (
	"context"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/model"
)

// Session tracks which entry, if any, the editor is currently bound to. The
// next Save updates that entry instead of creating a new one.
type Session struct {
	store   *Store
	editing string
}

func NewSession(store *Store) *Session {
	return &Session{store: store}
}

// Edit binds the session to id and returns the entry's editable draft.
func (s *Session) Edit(id string) (model.Draft, bool) {
	e, ok := s.store.Get(id)
	if !ok {
		return model.Draft{}, false
	}
	s.editing = id
	return model.DraftOf(e), true
}

// Editing returns the bound id, or "" when the next save creates an entry.
func (s *Session) Editing() string { return s.editing }

// Clear unbinds the session.
func (s *Session) Clear() { s.editing = "" }

// Save stores d as an update of the bound entry, or as a new entry, and
// unbinds the session on success.
func (s *Session) Save(ctx context.Context, d model.Draft) (model.Entry, error) {
	e, err := s.store.Save(ctx, d, s.editing)
	if err != nil {
		return model.Entry{}, err
	}
	s.Clear()
	return e, nil
}
