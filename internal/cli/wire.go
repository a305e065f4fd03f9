package cli

import (
	"alcyxob/workout-planner/internal/client"
	"alcyxob/workout-planner/internal/config"
	"alcyxob/workout-planner/internal/repository"
	"alcyxob/workout-planner/internal/repository/mongo"
	"alcyxob/workout-planner/internal/repository/sqlite"
	"alcyxob/workout-planner/internal/session"
	"alcyxob/workout-planner/internal/storage"
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type app struct {
	session *session.Session
	// sink returns the export destination; upload selects object storage.
	sink  func(ctx context.Context, upload bool) (storage.DocumentSink, error)
	store repository.StateStore
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

func wireApp(cmd *cobra.Command, configDir string) (*app, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	kv, err := openStateStore(cmd.Context(), cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("wire state store: %w", err)
	}

	planClient := client.NewPlanClient(cfg.Client.Endpoint, cfg.Client.Timeout)

	return &app{
		session: session.New(repository.NewProfileStore(kv), planClient),
		sink: func(ctx context.Context, upload bool) (storage.DocumentSink, error) {
			if upload || cfg.Export.Upload {
				return storage.NewS3Sink(ctx, cfg.S3)
			}
			return storage.NewDirSink(cfg.Export.Dir), nil
		},
		store: kv,
	}, nil
}

func openStateStore(ctx context.Context, cfg config.StoreConfig) (repository.StateStore, error) {
	switch cfg.Driver {
	case "", "sqlite":
		return sqlite.Open(cfg.Path, cfg.Scope)
	case "mongo":
		return mongo.Open(ctx, cfg.MongoURI, cfg.MongoDB, cfg.Scope)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
