package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mkravec/rota/internal/cli"
	"github.com/mkravec/rota/internal/config"
	"github.com/mkravec/rota/internal/db"
	"github.com/mkravec/rota/internal/metrics"
	"github.com/mkravec/rota/internal/repository"
	"github.com/mkravec/rota/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories against the live connection; services open their
	// own tx-scoped repos through the unit of work where they need to.
	shiftRepo := repository.NewSQLiteShiftRepo(database)
	dayOffRepo := repository.NewSQLiteDayOffRepo(database)
	absenceRepo := repository.NewSQLiteAbsenceRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Shifts:     service.NewShiftService(shiftRepo, dayOffRepo, uow),
		Absences:   service.NewAbsenceService(absenceRepo, uow),
		Timesheets: service.NewTimesheetService(activityRepo),
		Loc:        cfg.Location,
	}

	// Optional metrics listener; scheduling commands work without it.
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				fmt.Fprintf(os.Stderr, "metrics listener: %v\n", err)
			}
		}()
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
