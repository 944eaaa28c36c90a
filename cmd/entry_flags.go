package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/model"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/timecalc"
)

// draftFlags binds the editable entry fields to a command's flags.
type draftFlags struct {
	date  string
	g1    string
	g2    string
	g3    string
	notes string
	mood  string
	tags  string
	feel  string
}

func (f *draftFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "Day the entry belongs to (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&f.g1, "g1", "", "First thing you are grateful for")
	cmd.Flags().StringVar(&f.g2, "g2", "", "Second thing you are grateful for")
	cmd.Flags().StringVar(&f.g3, "g3", "", "Third thing you are grateful for")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Free-text notes")
	cmd.Flags().StringVar(&f.mood, "mood", "", "Mood label or emoji")
	cmd.Flags().StringVar(&f.tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&f.feel, "feel", "", "How you feel")
}

// apply overwrites the fields of d whose flags were set on cmd.
func (f *draftFlags) apply(cmd *cobra.Command, d *model.Draft) {
	for name, pair := range map[string]struct {
		dst *string
		src string
	}{
		"date":  {&d.Date, f.date},
		"g1":    {&d.G1, f.g1},
		"g2":    {&d.G2, f.g2},
		"g3":    {&d.G3, f.g3},
		"notes": {&d.Notes, f.notes},
		"mood":  {&d.Mood, f.mood},
		"tags":  {&d.Tags, f.tags},
		"feel":  {&d.Feel, f.feel},
	} {
		if cmd.Flags().Changed(name) {
			*pair.dst = pair.src
		}
	}
}

// validateDate rejects dates that are set but not ISO calendar days.
func validateDate(d model.Draft) error {
	if d.Date == "" {
		return nil
	}
	if _, err := timecalc.ParseDate(d.Date, app.loc); err != nil {
		return fmt.Errorf("invalid --date value: %w", err)
	}
	return nil
}
