package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/quicknote"
)

var quickCmd = &cobra.Command{
	Use:   "quick",
	Short: "One-line quick notes, kept apart from journal entries",
}

var quickAddCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Add a quick note",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := openQuick(cmd).Add(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Noted at %s.\n", formatNoteTime(n.At))
		return nil
	},
}

var quickListCmd = &cobra.Command{
	Use:   "list",
	Short: "List quick notes, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		notes := openQuick(cmd).List()
		if len(notes) == 0 {
			fmt.Fprintln(out, "No quick notes.")
			return nil
		}
		for i, n := range notes {
			fmt.Fprintf(out, "%3d  %s  %s\n", i, formatNoteTime(n.At), n.Text)
		}
		return nil
	},
}

var quickDeleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete the quick note at the index shown by list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[0], err)
		}
		removed, err := openQuick(cmd).DeleteAt(cmd.Context(), i)
		if err != nil {
			return err
		}
		if !removed {
			fmt.Fprintf(cmd.ErrOrStderr(), "No quick note at index %d.\n", i)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted quick note %d.\n", i)
		return nil
	},
}

func init() {
	quickCmd.AddCommand(quickAddCmd)
	quickCmd.AddCommand(quickListCmd)
	quickCmd.AddCommand(quickDeleteCmd)
}

func openQuick(cmd *cobra.Command) *quicknote.Store {
	return quicknote.Open(cmd.Context(), app.slot, app.log, now)
}

func formatNoteTime(ms int64) string {
	return time.UnixMilli(ms).In(app.loc).Format("2006-01-02 15:04")
}
