package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"notesync/internal/config"
	"notesync/internal/publisher"
	"notesync/internal/remote"
	"notesync/internal/render"
	"notesync/internal/service"
	"notesync/internal/storage/file"
	"notesync/internal/storage/postgres"
	"notesync/internal/vault"
)

// app holds the wired components shared by the commands.
type app struct {
	client   *remote.Client
	settings service.SettingsStore
	accounts *service.AccountService
	syncer   *service.SyncService
	notifier publisher.Notifier

	runs  *postgres.RunStore
	notes *postgres.NoteStore

	closers []func() error
}

func newApp(ctx context.Context) (*app, error) {
	a := &app{}

	a.client = remote.New(remote.Config{
		BaseURL:        cfg.API.BaseURL,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)

	var (
		runStore  service.RunStore
		noteStore service.NoteStore
	)

	switch cfg.Settings.Backend {
	case config.SettingsBackendPostgres:
		db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		logger.Info("connected to database")

		txManager := postgres.NewTransactionManager(db)
		a.settings = postgres.NewSettingsStore(db, txManager, cfg.Settings.Profile)
		a.runs = postgres.NewRunStore(db)
		a.notes = postgres.NewNoteStore(db)
		runStore = a.runs
		noteStore = a.notes
	default:
		a.settings = file.NewSettingsStore(cfg.Settings.Path, cfg.Settings.Profile)
	}

	notifiers := publisher.Fanout{publisher.NewLog(logger)}
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		a.closers = append(a.closers, rabbitMQ.Close)
		notifiers = append(notifiers, rabbitMQ)
	}
	a.notifier = notifiers

	store := vault.New(cfg.Vault.Path)
	a.accounts = service.NewAccountService(a.client, a.settings, logger)
	materializer := service.NewMaterializer(a.client, store, render.New(), a.settings, noteStore, logger)
	a.syncer = service.NewSyncService(
		a.client,
		a.accounts,
		materializer,
		store,
		a.settings,
		runStore,
		a.notifier,
		logger,
		cfg.Sync,
	)

	return a, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.Warn("close failed", "error", err)
		}
	}
}
