package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/journal"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/timecalc"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's entries and the current streak",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	today := app.store.Today()
	todays := app.store.Filter(journal.Query{From: today, To: today})

	fmt.Fprintf(out, "Today: %s\n", today)
	if len(todays) == 0 {
		fmt.Fprintln(out, "  Nothing written yet.")
	} else {
		latest := journal.Sorted(todays)[0]
		fmt.Fprintf(out, "  %s, last saved %s\n",
			countLabel(len(todays)), timecalc.FormatSavedAt(latest.SavedAt, app.loc))
	}
	fmt.Fprintf(out, "Total: %s\n", countLabel(app.store.Len()))
	fmt.Fprintf(out, "Streak: %d\n", app.store.Streak())
	return nil
}
