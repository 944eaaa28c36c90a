package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/journal"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/timecalc"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show entries per day for this week",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv, json")
}

type reportDay struct {
	Date    string `json:"date"`
	Entries int    `json:"entries"`
}

type weekReport struct {
	Week   string      `json:"week"`
	Days   []reportDay `json:"days"`
	Total  int         `json:"total"`
	Streak int         `json:"streak"`
}

func buildWeekReport() weekReport {
	t := now().In(app.loc)
	monday, sunday := timecalc.WeekRange(t)
	from, to := timecalc.ISODate(monday), timecalc.ISODate(sunday)

	counts := journal.CountByDate(app.store.Filter(journal.Query{From: from, To: to}))
	r := weekReport{Week: timecalc.ISOWeekLabel(t), Days: []reportDay{}, Streak: app.store.Streak()}
	for d := monday; !d.After(sunday); d = d.AddDate(0, 0, 1) {
		day := timecalc.ISODate(d)
		r.Days = append(r.Days, reportDay{Date: day, Entries: counts[day]})
		r.Total += counts[day]
	}
	return r
}

func runReport(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	r := buildWeekReport()

	switch reportFormat {
	case "csv":
		fmt.Fprintln(out, "date,entries")
		for _, d := range r.Days {
			fmt.Fprintf(out, "%s,%d\n", d.Date, d.Entries)
		}
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "md":
		fmt.Fprintf(out, "Week %s\n", r.Week)
		fmt.Fprintln(out, "--------------------------------")
		for _, d := range r.Days {
			fmt.Fprintf(out, "%-20s%d\n", d.Date, d.Entries)
		}
		fmt.Fprintln(out, "--------------------------------")
		fmt.Fprintf(out, "%-20s%d\n", "Total", r.Total)
		fmt.Fprintf(out, "%-20s%d\n", "Streak", r.Streak)
	default:
		return fmt.Errorf("unknown report format %q (want md, csv or json)", reportFormat)
	}
	return nil
}
