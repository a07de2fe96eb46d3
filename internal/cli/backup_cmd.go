package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/dealdesk/internal/backup"
	"github.com/spf13/cobra"
)

func newBackupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and restore the full database as JSON",
	}

	cmd.AddCommand(
		newBackupExportCmd(app),
		newBackupRestoreCmd(app),
	)

	return cmd
}

func newBackupExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a full backup to a file or stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.Backups.Export(context.Background())
			if err != nil {
				return err
			}
			data, err := backup.Marshal(doc)
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing backup: %w", err)
			}
			fmt.Printf("Exported backup to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (stdout when omitted)")
	return cmd
}

func newBackupRestoreCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace the entire database with a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading backup: %w", err)
			}

			if !yes {
				if !app.interactive() {
					return fmt.Errorf("restore replaces all data; pass --yes to confirm")
				}
				ok := false
				if err := confirmForm("Replace ALL current data with this backup?", &ok); err != nil {
					return err
				}
				if !ok {
					fmt.Println("Restore cancelled.")
					return nil
				}
			}

			if err := app.Backups.Restore(context.Background(), data); err != nil {
				return err
			}
			fmt.Println("Restore complete.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}
