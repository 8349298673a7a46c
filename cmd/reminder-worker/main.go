package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/BruksfildServices01/salon-scheduler/internal/app"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/notify"
	"github.com/BruksfildServices01/salon-scheduler/internal/reminder"
	"github.com/BruksfildServices01/salon-scheduler/pkg/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.Open(cfg)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	emailSender, err := app.EmailSender(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to configure email", "error", err)
		os.Exit(1)
	}

	repo := infraRepo.NewAppointmentGormRepository(db)
	notifier := notify.NewService(emailSender, app.SMSSender(cfg, logger), repo, nil, logger)

	reminder.NewJob(repo, notifier, cfg.ReminderInterval, cfg.ReminderLead, logger).Run(ctx)
}
