package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/journal"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every entry as JSON or CSV",
	Long: `Export every entry as JSON or CSV. Without --output the export goes to
stdout. When --output names a directory the file is written there as
gratitude-entries.json or gratitude-entries.csv.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format: json, csv")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "File or directory to write to (default stdout)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	var write func(io.Writer) error
	var name string
	switch exportFormat {
	case "json":
		write, name = app.store.ExportJSON, journal.JSONExportName
	case "csv":
		write, name = app.store.ExportCSV, journal.CSVExportName
	default:
		return fmt.Errorf("unknown export format %q (want json or csv)", exportFormat)
	}

	if exportOutput == "" || exportOutput == "-" {
		return write(cmd.OutOrStdout())
	}

	path, err := exportPath(exportOutput, name)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	app.log.Info(cmd.Context(), "export written", "path", path, "entries", app.store.Len())
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s.\n", countLabel(app.store.Len()), path)
	return nil
}

// exportPath resolves target to a file path, placing name inside target when
// it is an existing directory.
func exportPath(target, name string) (string, error) {
	info, err := os.Stat(target)
	if err == nil && info.IsDir() {
		return filepath.Join(target, name), nil
	}
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("checking export target: %w", err)
	}
	return target, nil
}
