package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/uutiset/config"
	"github.com/daniilsolovey/uutiset/internal/db"
	"github.com/daniilsolovey/uutiset/internal/rest"
	"github.com/daniilsolovey/uutiset/internal/uutiset"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	if cfg.Debug.LogQueries {
		dbConnect.AddQueryHook(db.NewQueryHook(logger))
	}

	database := db.New(dbConnect)
	handler := rest.NewNewsHandler(
		uutiset.NewManager(database),
		logger,
	)

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   handler.RegisterRoutes(cfg.App.FrontendDir),
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
