package cli

import (
	"stillness/internal/catalog"
	"stillness/internal/service"

	"github.com/spf13/cobra"
)

// App holds references to the services used by CLI commands.
type App struct {
	Tracker service.TrackerService
	Catalog catalog.Catalog
}

// NewRootCmd creates the top-level "stillness" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "stillness",
		Short: "Personal meditation session tracker",
	}

	root.AddCommand(
		newSessionCmd(app),
		newStatsCmd(app),
		newAchievementsCmd(app),
		newProgressCmd(app),
		newPatternsCmd(app),
		newSoundsCmd(app),
	)

	return root
}
