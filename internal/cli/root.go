package cli

import (
	"time"

	"github.com/mkravec/rota/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Shifts     service.ShiftService
	Absences   service.AbsenceService
	Timesheets service.TimesheetService

	// Loc is the reporting timezone for "now" defaults. Nil means UTC.
	Loc *time.Location
}

func (a *App) now() time.Time {
	if a.Loc == nil {
		return time.Now().UTC()
	}
	return time.Now().In(a.Loc)
}

// NewRootCmd creates the top-level "rota" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "rota",
		Short: "Call-center shift scheduling and time accounting",
	}

	root.AddCommand(
		newShiftCmd(app),
		newDayOffCmd(app),
		newAbsenceCmd(app),
		newActivityCmd(app),
		newTimesheetCmd(app),
		newScheduleCmd(app),
		newMetricsCmd(app),
	)

	return root
}
