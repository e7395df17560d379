package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/grapple/internal/catalog"
	"github.com/alexanderramin/grapple/internal/cli"
	"github.com/alexanderramin/grapple/internal/config"
	"github.com/alexanderramin/grapple/internal/db"
	"github.com/alexanderramin/grapple/internal/logging"
	"github.com/alexanderramin/grapple/internal/matcher"
	"github.com/alexanderramin/grapple/internal/metrics"
	"github.com/alexanderramin/grapple/internal/repository"
	"github.com/alexanderramin/grapple/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config file: GRAPPLE_CONFIG or ~/.grapple/config.yaml when present.
	cfg, err := config.LoadOptional(os.Getenv("GRAPPLE_CONFIG"))
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("loading technique catalog: %w", err)
	}

	// Open database
	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	sessionRepo := repository.NewSQLiteTrainingSessionRepo(database)
	masteryRepo := repository.NewSQLiteMasteryRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	m := metrics.New()
	observer := service.NewZapUseCaseObserver(logger)

	analysisOpts := service.AnalysisOptions{
		Matcher: matcher.Options{
			FuzzyThreshold: cfg.Analysis.FuzzyThreshold,
			MaxPrimary:     cfg.Analysis.MaxPrimary,
			MaxRelated:     cfg.Analysis.MaxRelated,
		},
		CacheCapacity: cfg.Cache.Capacity,
		CachePolicy:   cfg.CachePolicy(),
		MaxInputRunes: cfg.Analysis.MaxInputRunes,
	}

	app := &cli.App{
		Catalog:  cat,
		Analysis: service.NewAnalysisService(cat, analysisOpts, m, observer),
		Programs: service.NewProgramService(cat, m, observer),
		Log:      service.NewTrainingLogService(cat, userRepo, sessionRepo, masteryRepo, uow, m, observer),
		Profiles: service.NewProfileService(userRepo, observer),
		Metrics:  m,
		Defaults: cli.Defaults{
			Duration:   cfg.Program.DefaultDuration,
			Difficulty: cfg.DefaultDifficulty(),
			Workers:    cfg.Workers,
		},
	}

	// Spinners, pickers and browse need a terminal on both ends.
	app.IsInteractive = func() bool {
		in := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		out := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		return in && out
	}

	logger.Debug("grapple starting",
		zap.String("database", cfg.Database.Path),
		zap.Int("techniques", cat.Len()),
		zap.String("cache_policy", string(cfg.CachePolicy())))

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
