package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkravec/rota/internal/domain"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Record presence-state transitions",
	}

	cmd.AddCommand(newActivityLogCmd(app))

	return cmd
}

func newActivityLogCmd(app *App) *cobra.Command {
	var operatorID int64
	var atStr, state string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Append one presence-state transition",
		RunE: func(cmd *cobra.Command, args []string) error {
			at := app.now()
			if atStr != "" {
				parsed, err := time.Parse(time.RFC3339, atStr)
				if err != nil {
					return fmt.Errorf("invalid timestamp %q: want RFC3339", atStr)
				}
				at = parsed
			}

			err := app.Timesheets.LogEvent(context.Background(),
				operatorID, at, domain.ActivityState(state))
			if err != nil {
				return err
			}

			fmt.Printf("Operator %d is %s as of %s\n",
				operatorID, state, at.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().Int64Var(&operatorID, "operator", 0, "Operator ID")
	cmd.Flags().StringVar(&state, "state", "", "New state (active, break, training, tech, signing, inactive)")
	cmd.Flags().StringVar(&atStr, "at", "", "Transition time, RFC3339 (default now)")
	_ = cmd.MarkFlagRequired("operator")
	_ = cmd.MarkFlagRequired("state")

	return cmd
}

func newTimesheetCmd(app *App) *cobra.Command {
	var operatorID int64
	var fromStr, toStr, cutoffStr string

	cmd := &cobra.Command{
		Use:   "timesheet",
		Short: "Reconstruct per-day durations from the activity log",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseDateFlag(fromStr)
			if err != nil {
				return err
			}
			to := from
			if toStr != "" {
				if to, err = parseDateFlag(toStr); err != nil {
					return err
				}
			}
			cutoff := app.now()
			if cutoffStr != "" {
				parsed, err := time.Parse(time.RFC3339, cutoffStr)
				if err != nil {
					return fmt.Errorf("invalid cutoff %q: want RFC3339", cutoffStr)
				}
				cutoff = parsed
			}

			summaries, err := app.Timesheets.Build(context.Background(),
				operatorID, from, to, cutoff)
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Println("No activity recorded")
				return nil
			}

			for _, day := range summaries {
				fmt.Printf("%s  worked %s\n",
					day.Date.Format(domain.DateLayout), formatSeconds(day.WorkedSeconds()))
				states := make([]domain.ActivityState, 0, len(day.Seconds))
				for st := range day.Seconds {
					states = append(states, st)
				}
				sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
				for _, st := range states {
					fmt.Printf("  %-10s %s\n", st, formatSeconds(day.Seconds[st]))
				}
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&operatorID, "operator", 0, "Operator ID")
	cmd.Flags().StringVar(&fromStr, "from", "", "First day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "Last day (default same as --from)")
	cmd.Flags().StringVar(&cutoffStr, "cutoff", "", "Close the final open interval here, RFC3339 (default now)")
	_ = cmd.MarkFlagRequired("operator")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
