package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/journal"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/prompt"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry after confirmation",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Do not ask for confirmation")
}

// newConfirmer asks on the terminal; tests replace it.
var newConfirmer = func(cmd *cobra.Command) journal.Confirmer {
	term := prompt.Stdio()
	term.In = cmd.InOrStdin()
	term.Out = cmd.ErrOrStderr()
	return term
}

func runDelete(cmd *cobra.Command, args []string) error {
	var confirmer journal.Confirmer = journal.AlwaysConfirm
	if !deleteYes {
		confirmer = newConfirmer(cmd)
	}

	removed, err := app.store.Delete(cmd.Context(), args[0], confirmer)
	if err != nil {
		return err
	}
	if removed {
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s.\n", args[0])
	}
	return nil
}
