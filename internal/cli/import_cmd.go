package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Bulk-import contacts from CSV or vCard files",
	}

	cmd.AddCommand(
		newImportCSVCmd(app),
		newImportVCFCmd(app),
	)

	return cmd
}

func newImportCSVCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "csv <file>",
		Short: "Import contacts from a CSV file",
		Long: "Import contacts from a CSV file. A header row with name/phone/email\n" +
			"columns is detected automatically; otherwise columns are read as\n" +
			"name, phone, email, company, notes. Rows without a name are skipped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(app, args[0], app.Imports.ImportCSV)
		},
	}
}

func newImportVCFCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "vcf <file>",
		Short: "Import contacts from a vCard (.vcf) file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(app, args[0], app.Imports.ImportVCF)
		},
	}
}

func runImport(app *App, path string, parse func(context.Context, string) (int, error)) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	count, err := parse(context.Background(), string(data))
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Println("No contacts found in file.")
		return nil
	}

	plural := ""
	if count != 1 {
		plural = "s"
	}
	fmt.Printf("Imported %d contact%s from %s\n", count, plural, path)
	return nil
}
