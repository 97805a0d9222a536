package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mkravec/rota/internal/domain"
	"github.com/mkravec/rota/internal/service"
)

func newAbsenceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "absence",
		Short: "Manage absence periods",
	}

	cmd.AddCommand(
		newAbsenceAddCmd(app),
		newAbsenceListCmd(app),
	)

	return cmd
}

func newAbsenceAddCmd(app *App) *cobra.Command {
	var operatorID int64
	var status, startStr, endStr, reason, comment, createdBy string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Insert an absence period, resolving overlaps",
		Long: "Inserts an absence period for an operator. Overlapping stored periods are " +
			"trimmed, split, or removed so that exactly one period covers each day. " +
			"Run without --status on a terminal for an interactive form.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if status == "" && isInteractive() {
				if err := runAbsenceForm(&status, &startStr, &endStr, &reason, &comment); err != nil {
					return err
				}
			}

			start, err := parseDateFlag(startStr)
			if err != nil {
				return err
			}
			var end *time.Time
			if endStr != "" {
				e, err := parseDateFlag(endStr)
				if err != nil {
					return err
				}
				end = &e
			}

			period, err := app.Absences.Insert(ctx, service.InsertAbsenceRequest{
				OperatorID:      operatorID,
				Status:          domain.AbsenceStatus(status),
				StartDate:       start,
				EndDate:         end,
				DismissalReason: reason,
				Comment:         comment,
				CreatedBy:       createdBy,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Absence %s stored for operator %d: %s\n",
				period.Status, operatorID, formatPeriodRange(*period))
			return nil
		},
	}

	cmd.Flags().Int64Var(&operatorID, "operator", 0, "Operator ID")
	cmd.Flags().StringVar(&status, "status", "", "Status code (bs, sick_leave, annual_leave, dismissal)")
	cmd.Flags().StringVar(&startStr, "start", "", "First day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endStr, "end", "", "Last day (YYYY-MM-DD); defaults to the start day")
	cmd.Flags().StringVar(&reason, "reason", "", "Dismissal reason (dismissal only)")
	cmd.Flags().StringVar(&comment, "comment", "", "Mandatory comment for dismissal")
	cmd.Flags().StringVar(&createdBy, "by", "", "Name of the person recording the period")
	_ = cmd.MarkFlagRequired("operator")

	return cmd
}

// runAbsenceForm collects the absence fields interactively. The dismissal
// group only shows when that status is selected.
func runAbsenceForm(status, start, end, reason, comment *string) error {
	statusOptions := make([]huh.Option[string], 0, len(domain.StatusCatalog))
	for code, meta := range domain.StatusCatalog {
		statusOptions = append(statusOptions, huh.NewOption(meta.Label, string(code)))
	}
	reasonOptions := make([]huh.Option[string], 0, len(domain.DismissalReasons))
	for _, r := range domain.DismissalReasons {
		reasonOptions = append(reasonOptions, huh.NewOption(r, r))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Status").
				Options(statusOptions...).
				Value(status),
			huh.NewInput().
				Title("First day (YYYY-MM-DD)").
				Placeholder("2025-06-30").
				Value(start).
				Validate(validateDate),
			huh.NewInput().
				Title("Last day (blank = single day, dismissal ignores this)").
				Value(end).
				Validate(validateOptionalDate),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Dismissal reason").
				Options(reasonOptions...).
				Value(reason),
			huh.NewInput().
				Title("Comment").
				Value(comment).
				Validate(validateNonEmpty),
		).WithHideFunc(func() bool {
			return domain.AbsenceStatus(*status) != domain.StatusDismissal
		}),
	).WithTheme(rotaHuhTheme()).WithShowHelp(false)

	return form.Run()
}

func newAbsenceListCmd(app *App) *cobra.Command {
	var operatorID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an operator's absence periods",
		RunE: func(cmd *cobra.Command, args []string) error {
			periods, err := app.Absences.ListByOperator(context.Background(), operatorID)
			if err != nil {
				return err
			}
			if len(periods) == 0 {
				fmt.Println("No absence periods")
				return nil
			}
			for _, p := range periods {
				line := fmt.Sprintf("%-12s  %s", p.Status, formatPeriodRange(p))
				if p.Status == domain.StatusDismissal {
					line += fmt.Sprintf("  reason=%s comment=%q", p.DismissalReason, p.Comment)
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&operatorID, "operator", 0, "Operator ID")
	_ = cmd.MarkFlagRequired("operator")

	return cmd
}

func formatPeriodRange(p domain.AbsencePeriod) string {
	if p.OpenEnded() {
		return fmt.Sprintf("%s onward", p.StartDate.Format(domain.DateLayout))
	}
	return fmt.Sprintf("%s to %s",
		p.StartDate.Format(domain.DateLayout), p.EndDate.Format(domain.DateLayout))
}

func validateDate(s string) error {
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("want YYYY-MM-DD")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	return validateDate(s)
}

func validateNonEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
