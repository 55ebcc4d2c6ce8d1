package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/ymoriya/worktime/internal/cli"
	"github.com/ymoriya/worktime/internal/config"
	"github.com/ymoriya/worktime/internal/db"
	"github.com/ymoriya/worktime/internal/service"
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
		return fmt.Errorf("loading configuration: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)
	statusSvc := service.NewStatusService(database, cfg.UnsavedWarning())

	app := &cli.App{
		Tracker: service.NewTrackerService(uow, cfg.IdleThreshold()),
		Status:  statusSvc,
		Reports: service.NewReportService(statusSvc, cfg.ReportTemplatePath),
	}

	// Hook-driven invocations run without a terminal; prompts are
	// skipped in that case.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
