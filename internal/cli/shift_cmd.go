package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkravec/rota/internal/service"
)

func newShiftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Manage operator shifts",
	}

	cmd.AddCommand(
		newShiftSetCmd(app),
		newShiftRemoveCmd(app),
		newShiftListCmd(app),
	)

	return cmd
}

func newShiftSetCmd(app *App) *cobra.Command {
	var operatorID int64
	var dateStr, start, end, prevStart, prevEnd string
	var breaks breakListFlag

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Write a shift, replacing anything it overlaps",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateFlag(dateStr)
			if err != nil {
				return err
			}

			id, err := app.Shifts.Write(context.Background(), service.WriteShiftRequest{
				OperatorID: operatorID,
				Date:       date,
				Start:      start,
				End:        end,
				Breaks:     breaks,
				PrevStart:  prevStart,
				PrevEnd:    prevEnd,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Shift %s-%s saved for operator %d on %s (%s)\n", start, end, operatorID, dateStr, id)
			return nil
		},
	}

	cmd.Flags().Int64Var(&operatorID, "operator", 0, "Operator ID")
	cmd.Flags().StringVar(&dateStr, "date", "", "Shift date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Shift start (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "Shift end (HH:MM); at or before start means overnight")
	cmd.Flags().Var(&breaks, "break", "Break as START-END, clock or minutes (repeatable)")
	cmd.Flags().StringVar(&prevStart, "prev-start", "", "Previous start when moving an existing shift")
	cmd.Flags().StringVar(&prevEnd, "prev-end", "", "Previous end when moving an existing shift")
	_ = cmd.MarkFlagRequired("operator")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newShiftRemoveCmd(app *App) *cobra.Command {
	var operatorID int64
	var dateStr, start, end string

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove the shift stored under an exact key",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateFlag(dateStr)
			if err != nil {
				return err
			}
			removed, err := app.Shifts.Delete(context.Background(), operatorID, date, start, end)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Println("Nothing removed: no shift stored under that key")
				return nil
			}
			fmt.Printf("Removed shift %s-%s for operator %d on %s\n", start, end, operatorID, dateStr)
			return nil
		},
	}

	cmd.Flags().Int64Var(&operatorID, "operator", 0, "Operator ID")
	cmd.Flags().StringVar(&dateStr, "date", "", "Shift date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Shift start (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "Shift end (HH:MM)")
	_ = cmd.MarkFlagRequired("operator")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newShiftListCmd(app *App) *cobra.Command {
	var operatorID int64
	var dateStr string
	var merged bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an operator-day's shifts",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateFlag(dateStr)
			if err != nil {
				return err
			}
			ctx := context.Background()

			if merged {
				views, err := app.Shifts.MergedForDate(ctx, operatorID, date)
				if err != nil {
					return err
				}
				if len(views) == 0 {
					fmt.Println("No shifts")
					return nil
				}
				for _, s := range views {
					fmt.Printf("%s-%s  breaks: %s\n", s.Start, s.End, formatBreaks(s.Breaks))
				}
				return nil
			}

			shifts, daysOff, err := app.Shifts.ListRange(ctx, operatorID, date, date)
			if err != nil {
				return err
			}
			if len(daysOff) > 0 {
				fmt.Println("Day off")
				return nil
			}
			if len(shifts) == 0 {
				fmt.Println("No shifts")
				return nil
			}
			for _, s := range shifts {
				fmt.Printf("%s-%s  breaks: %s  (%s)\n", s.Start, s.End, formatBreaks(s.Breaks), s.ID)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&operatorID, "operator", 0, "Operator ID")
	cmd.Flags().StringVar(&dateStr, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&merged, "merged", false, "Show the merged view instead of raw records")
	_ = cmd.MarkFlagRequired("operator")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newDayOffCmd(app *App) *cobra.Command {
	var operatorID int64
	var dateStr string

	cmd := &cobra.Command{
		Use:   "dayoff",
		Short: "Toggle an operator's day off",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateFlag(dateStr)
			if err != nil {
				return err
			}
			nowOff, err := app.Shifts.ToggleDayOff(context.Background(), operatorID, date)
			if err != nil {
				return err
			}
			if nowOff {
				fmt.Printf("Operator %d is now off on %s; shifts for that day removed\n", operatorID, dateStr)
			} else {
				fmt.Printf("Operator %d is no longer off on %s\n", operatorID, dateStr)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&operatorID, "operator", 0, "Operator ID")
	cmd.Flags().StringVar(&dateStr, "date", "", "Date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("operator")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
