package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/journal"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/model"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/timecalc"
)

var (
	listQuery string
	listFrom  string
	listTo    string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Case-insensitive text search")
	listCmd.Flags().StringVar(&listFrom, "from", "", "Earliest date to include (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listTo, "to", "", "Latest date to include (YYYY-MM-DD)")
}

func runList(cmd *cobra.Command, _ []string) error {
	for _, d := range []string{listFrom, listTo} {
		if d == "" {
			continue
		}
		if _, err := timecalc.ParseDate(d, app.loc); err != nil {
			return err
		}
	}

	q := journal.Query{Text: listQuery, From: listFrom, To: listTo}
	entries := journal.Sorted(app.store.Filter(q))

	out := cmd.OutOrStdout()
	printList(out, entries)
	fmt.Fprintf(out, "\n%s · streak %d\n", countLabel(len(entries)), app.store.Streak())
	return nil
}

// printList groups entries by date and prints them in the order given.
func printList(w io.Writer, entries []model.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}

	var currentDay string
	for _, e := range entries {
		if e.Date != currentDay {
			fmt.Fprintln(w, e.Date)
			currentDay = e.Date
		}

		fmt.Fprintf(w, "  %s  %s  %s\n", e.ID, e.Mood, e.Preview())
		if e.Notes != "" {
			fmt.Fprintf(w, "      %s\n", e.Notes)
		}
		if len(e.Tags) > 0 || e.Feel != "" {
			fmt.Fprintf(w, "      %s\n", tagLine(e))
		}
	}
}

func tagLine(e model.Entry) string {
	line := ""
	for _, t := range e.Tags {
		line += "#" + t + " "
	}
	if e.Feel != "" {
		line += "(" + e.Feel + ")"
	}
	return line
}

// countLabel renders an entry count with the right plural.
func countLabel(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", n)
}
