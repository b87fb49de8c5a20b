// Package server wires configuration, storage, services, and the HTTP API
// into a runnable application with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inkwell/internal/logging"
	"inkwell/internal/server/auth"
	"inkwell/internal/server/config"
	"inkwell/internal/server/content"
	"inkwell/internal/server/httpapi"
	"inkwell/internal/server/models"
	"inkwell/internal/server/records"
	"inkwell/internal/server/sessions"
	"inkwell/internal/server/store"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	handler http.Handler
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout)

	backend, err := newBackend(c)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	users := store.NewCollection[models.UsersDoc](backend, "users", c.CacheWindow)
	msgs := store.NewCollection[models.RecordsDoc](backend, "messages", c.CacheWindow)
	posts := store.NewCollection[models.RecordsDoc](backend, "posts", c.CacheWindow)
	page := store.NewCollection[models.ContentDoc](backend, "content", c.CacheWindow)

	sm := sessions.NewManager([]byte(c.SecretKey), c.SessionTTL)

	srv := httpapi.New(
		auth.NewService(users, sm, logger),
		records.NewMessageService(msgs, c.MessageCap, c.MaxMessageLen, logger),
		records.NewPostService(posts, c.PostCap, c.MaxTitleLen, c.MaxPostLen, logger),
		content.NewService(page, c.HistoryCap, c.MaxContentLen, logger),
		sm,
		c.SessionTTL,
		logger,
	)

	return &App{config: c, logger: logger, handler: srv}, nil
}

func newBackend(c *config.Config) (store.Backend, error) {
	switch c.StoreDriver {
	case config.DriverMemory:
		return store.NewMemoryBackend(), nil
	case config.DriverFile:
		return store.NewFileBackend(c.DataDir)
	case config.DriverSQLite:
		return store.NewSQLiteBackend(c.SQLitePath)
	case config.DriverPostgres:
		return store.NewPostgresBackend(context.Background(), c.DatabaseDSN)
	case config.DriverS3:
		return store.NewS3Backend(context.Background(), store.S3Config{
			RootUser:     c.S3RootUser,
			RootPassword: c.S3RootPassword,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		})
	default:
		return nil, fmt.Errorf("unknown store driver: %s", c.StoreDriver)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{Addr: app.config.Addr, Handler: app.handler}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting http server", "addr", app.config.Addr, "driver", app.config.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}
