package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/journal"
)

var editFlags draftFlags

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update an existing entry",
	Long: `Update an existing entry in place. Only the fields given as flags
change; the entry keeps its id and its saved-at time is refreshed.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editFlags.bind(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	id := args[0]
	session := journal.NewSession(app.store)

	d, ok := session.Edit(id)
	if !ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "No entry with id %q.\n", id)
		return nil
	}
	editFlags.apply(cmd, &d)
	if err := validateDate(d); err != nil {
		return err
	}

	e, err := session.Save(cmd.Context(), d)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %s for %s.\n", e.ID, e.Date)
	return nil
}
