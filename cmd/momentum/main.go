package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/tobyns/momentum/internal/config"
	"github.com/tobyns/momentum/internal/database"
	"github.com/tobyns/momentum/internal/database/repository"
	"github.com/tobyns/momentum/internal/logging"
	"github.com/tobyns/momentum/internal/service"
	"github.com/tobyns/momentum/internal/trace"
	"github.com/tobyns/momentum/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Path, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, cfg.Database.MigrationsPath); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repos := tui.Repos{
		Tasks:  repository.NewTaskRepo(db),
		Traces: repository.NewTraceRepo(db),
	}
	svcs := tui.Services{
		Tasks:   &service.TaskService{Tasks: repos.Tasks},
		Recover: &service.RecoverService{DB: db},
	}

	var rec *trace.Recorder
	var stats *trace.Stats
	if cfg.Trace.Enabled {
		if err := repos.Traces.Prune(ctx, cfg.Trace.Keep); err != nil {
			logger.Warn("trace prune failed", zap.Error(err))
		}
		stats = trace.NewStats(256)
		rec = trace.NewRecorder(repos.Traces, logger, stats)
		rec.Start(ctx)
		defer rec.Close()
	}

	p := tea.NewProgram(
		tui.New(ctx, cfg, repos, svcs, rec, stats, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
