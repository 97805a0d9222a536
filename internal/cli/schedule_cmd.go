package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mkravec/rota/internal/domain"
)

func newScheduleCmd(app *App) *cobra.Command {
	var operatorIDs []int64
	var weekStr string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Browse the weekly schedule",
		Long: "Shows a week grid of merged shifts, days off, and absences for the " +
			"given operators. On a terminal this opens an interactive view; " +
			"otherwise the week is printed once.",
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart := startOfWeek(app.now())
			if weekStr != "" {
				d, err := parseDateFlag(weekStr)
				if err != nil {
					return err
				}
				weekStart = startOfWeek(d)
			}
			if len(operatorIDs) == 0 {
				return fmt.Errorf("at least one --operator is required")
			}

			if !isInteractive() {
				week, err := loadWeek(context.Background(), app, operatorIDs, weekStart)
				if err != nil {
					return err
				}
				fmt.Print(renderWeekPlain(week))
				return nil
			}

			model := newScheduleModel(app, operatorIDs, weekStart)
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().Int64SliceVar(&operatorIDs, "operator", nil, "Operator ID (repeatable)")
	cmd.Flags().StringVar(&weekStr, "week", "", "Any day inside the week to show (YYYY-MM-DD)")

	return cmd
}

// startOfWeek snaps a day back to its Monday, at midnight.
func startOfWeek(day time.Time) time.Time {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// dayCell is one operator-day of the grid.
type dayCell struct {
	Shifts  []domain.Shift
	DayOff  bool
	Absence *domain.AbsencePeriod
}

// weekData is everything the view needs for one week, fetched up front.
type weekData struct {
	Start     time.Time
	Operators []int64
	Cells     map[int64][7]dayCell
}

func loadWeek(ctx context.Context, app *App, operatorIDs []int64, weekStart time.Time) (*weekData, error) {
	weekEnd := weekStart.AddDate(0, 0, 6)

	absences, err := app.Absences.Expand(ctx, operatorIDs, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	week := &weekData{
		Start:     weekStart,
		Operators: operatorIDs,
		Cells:     make(map[int64][7]dayCell, len(operatorIDs)),
	}

	for _, opID := range operatorIDs {
		_, daysOff, err := app.Shifts.ListRange(ctx, opID, weekStart, weekEnd)
		if err != nil {
			return nil, err
		}
		offDays := make(map[string]bool, len(daysOff))
		for _, d := range daysOff {
			offDays[d.Date.Format(domain.DateLayout)] = true
		}

		var cells [7]dayCell
		for i := 0; i < 7; i++ {
			day := weekStart.AddDate(0, 0, i)
			key := day.Format(domain.DateLayout)

			merged, err := app.Shifts.MergedForDate(ctx, opID, day)
			if err != nil {
				return nil, err
			}
			cells[i] = dayCell{Shifts: merged, DayOff: offDays[key]}
			if p, ok := absences[opID][key]; ok {
				period := p
				cells[i].Absence = &period
			}
		}
		week.Cells[opID] = cells
	}

	return week, nil
}
