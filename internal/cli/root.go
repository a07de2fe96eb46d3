package cli

import (
	"github.com/alexanderramin/dealdesk/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Stages     service.StageService
	Contacts   service.ContactService
	Deals      service.DealService
	Activities service.ActivityService
	Snapshots  service.SnapshotService
	Backups    service.BackupService
	Imports    service.ImportService

	// IsInteractive reports whether stdin is a terminal. Interactive
	// commands may prompt with forms; non-interactive invocations must
	// get everything from flags.
	IsInteractive func() bool
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

// NewRootCmd creates the top-level "dealdesk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dealdesk",
		Short: "Local-first sales pipeline tracker",
	}

	root.AddCommand(
		newPipelineCmd(app),
		newStageCmd(app),
		newContactCmd(app),
		newDealCmd(app),
		newActivityCmd(app),
		newBackupCmd(app),
		newImportCmd(app),
	)

	return root
}
