package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/issuetracker/internal/adapter/postgres"
	"github.com/heartmarshall/issuetracker/internal/app"
	"github.com/heartmarshall/issuetracker/internal/config"
)

// openDB loads the tool configuration and connects to the database.
// The caller must close the pool.
func openDB(ctx context.Context) (*pgxpool.Pool, *slog.Logger, error) {
	cfg, err := config.LoadTool()
	if err != nil {
		return nil, nil, err
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	return pool, logger, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
