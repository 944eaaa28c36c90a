package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/model"
)

var addFlags draftFlags

var addCmd = &cobra.Command{
	Use:   "add [gratitude...]",
	Short: "Save a new entry",
	Long: `Save a new entry. Up to three positional arguments fill the three
gratitude lines; the --g1/--g2/--g3 flags take precedence.`,
	Args: cobra.MaximumNArgs(3),
	RunE: runAdd,
}

func init() {
	addFlags.bind(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	var d model.Draft
	lines := []*string{&d.G1, &d.G2, &d.G3}
	for i, a := range args {
		*lines[i] = a
	}
	addFlags.apply(cmd, &d)
	if err := validateDate(d); err != nil {
		return err
	}

	e, err := app.store.Save(cmd.Context(), d, "")
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved entry %s for %s.\n", e.ID, e.Date)
	return nil
}
