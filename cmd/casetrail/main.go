package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/casetrail/internal/cli"
	"github.com/alexanderramin/casetrail/internal/config"
	"github.com/alexanderramin/casetrail/internal/db"
	"github.com/alexanderramin/casetrail/internal/repository"
	"github.com/alexanderramin/casetrail/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	repos := service.CaseRepos{
		Cases:        repository.NewSQLiteCaseRepo(database),
		Compositions: repository.NewSQLiteCompositionRepo(database),
		Notes:        repository.NewSQLiteNoteRepo(database),
		Tasks:        repository.NewSQLiteTaskRepo(database),
		Schedule:     repository.NewSQLiteScheduleRepo(database),
	}
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	app := &cli.App{
		Cases:   service.NewCaseService(repos, observer),
		History: service.NewCaseHistoryService(repos, cfg.Vocabulary(), logger, observer),
		Import:  service.NewImportService(uow, observer),
		Format:  cfg.Format,
		IsTerminal: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
