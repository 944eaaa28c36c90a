package journal

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/model"
)

// Default download names for the two export formats.
const (
	JSONExportName = "gratitude-entries.json"
	CSVExportName  = "gratitude-entries.csv"
)

// CSVColumns is the fixed export column order.
var CSVColumns = []string{"id", "date", "g1", "g2", "g3", "notes", "mood", "tags", "feel", "savedAt"}

// ExportJSON writes the collection in insertion order as indented JSON.
func (s *Store) ExportJSON(w io.Writer) error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportCSV writes the collection in insertion order. The header is bare;
// every data field is quoted. Rows are separated by "\n" without a trailing
// newline.
func (s *Store) ExportCSV(w io.Writer) error {
	lines := make([]string, 0, len(s.entries)+1)
	lines = append(lines, strings.Join(CSVColumns, ","))
	for _, e := range s.entries {
		fields := csvFields(e)
		for i, f := range fields {
			fields[i] = quoteField(f)
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

func csvFields(e model.Entry) []string {
	return []string{
		e.ID,
		e.Date,
		e.G1,
		e.G2,
		e.G3,
		e.Notes,
		e.Mood,
		strings.Join(e.Tags, "|"),
		e.Feel,
		strconv.FormatInt(e.SavedAt, 10),
	}
}

// quoteField wraps s in double quotes, doubling any quotes inside it.
func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
