package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge entries from a JSON export",
	Long: `Merge entries from a JSON export into the journal. Entries whose id
already exists are replaced in place; the rest are appended. Use - to read
from stdin. Nothing is changed if the file cannot be parsed.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening import file: %w", err)
		}
		defer f.Close()
		r = f
	}

	res, err := app.store.Import(cmd.Context(), r)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Import complete.")
	fmt.Fprintf(out, "  added: %d, replaced: %d\n", res.Added, res.Replaced)
	return nil
}
