package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var duplicateCmd = &cobra.Command{
	Use:   "duplicate <id>",
	Short: "Copy an entry under a new id",
	Args:  cobra.ExactArgs(1),
	RunE:  runDuplicate,
}

func runDuplicate(cmd *cobra.Command, args []string) error {
	e, ok, err := app.store.Duplicate(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "No entry with id %q.\n", args[0])
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Duplicated %s as %s.\n", args[0], e.ID)
	return nil
}
