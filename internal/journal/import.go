package journal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/model"
)

var (
	// ErrImportParse means the import content is not valid JSON, or an
	// element of the array is not an entry object.
	ErrImportParse = errors.New("could not parse JSON")
	// ErrImportNotArray means the content is valid JSON but not an array.
	ErrImportNotArray = errors.New("invalid file: expected a JSON array")
)

// ImportResult counts what a merge did.
type ImportResult struct {
	Added    int
	Replaced int
}

// Import merges a JSON array of entries read from r into the collection.
// An incoming record whose id matches an existing entry replaces it
// entirely, in place; other records are appended. Nothing changes unless the
// whole input is valid.
func (s *Store) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("reading import: %w", err)
	}
	incoming, err := decodeImport(data)
	if err != nil {
		return ImportResult{}, err
	}

	merged := append([]model.Entry(nil), s.entries...)
	pos := make(map[string]int, len(merged))
	for i, e := range merged {
		pos[e.ID] = i
	}

	var res ImportResult
	for _, in := range incoming {
		in.Tags = model.CleanTags(in.Tags)
		if in.ID == "" {
			in.ID = s.newID()
		}
		if i, ok := pos[in.ID]; ok {
			merged[i] = in
			res.Replaced++
			continue
		}
		pos[in.ID] = len(merged)
		merged = append(merged, in)
		res.Added++
	}

	// Ids that repeated before the merge collapse to their last position.
	deduped := make([]model.Entry, 0, len(merged))
	for i, e := range merged {
		if pos[e.ID] == i {
			deduped = append(deduped, e)
		}
	}
	s.setEntries(deduped)

	if err := s.persist(ctx); err != nil {
		return ImportResult{}, err
	}
	s.log.Info(ctx, "import complete", "added", res.Added, "replaced", res.Replaced)
	return res, nil
}

func decodeImport(data []byte) ([]model.Entry, error) {
	if !json.Valid(data) {
		return nil, ErrImportParse
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		// Valid JSON that is not an array (null included).
		return nil, ErrImportNotArray
	}

	entries := make([]model.Entry, 0, len(items))
	for i, item := range items {
		if t := bytes.TrimSpace(item); len(t) == 0 || t[0] != '{' {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrImportParse, i)
		}
		var e model.Entry
		if err := json.Unmarshal(item, &e); err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrImportParse, i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
