package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chat-keeper/internal/adapter"
	"github.com/MKhiriev/go-chat-keeper/internal/config"
	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/service"
	"github.com/MKhiriev/go-chat-keeper/internal/store"
	"github.com/MKhiriev/go-chat-keeper/internal/tui"
	"github.com/MKhiriev/go-chat-keeper/internal/workers"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger

	refreshInterval time.Duration
	requestTimeout  time.Duration
}

// NewApp wires the full client: local SQLite storage, the HTTP adapter to
// the chat server, the service graph on top of both, and the terminal UI.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	localStore, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	svcs := service.NewClientServices(localStore, serverAdapter, log)

	ui, err := tui.New(svcs, log)
	if err != nil {
		return nil, fmt.Errorf("create terminal UI: %w", err)
	}

	return &App{
		services:        svcs,
		tui:             ui,
		logger:          log,
		refreshInterval: cfg.Workers.RefreshInterval,
		requestTimeout:  cfg.Adapter.RequestTimeout,
	}, nil
}

// Run implements Client. One invocation covers one session: restore or log
// in, run the chat loop with the sync engine and the periodic refresh job,
// and on logout loop back to the login screen via recursion.
func (a *App) Run() error {
	ctx := context.Background()

	user, ok := a.services.SessionService.Current()
	if !ok {
		var err error
		user, err = a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	a.services.SyncEngine.Start(ctx, user)

	workers.NewWorkers(
		workers.NewRefreshWorker(ctx, a.services.RefreshJob, a.refreshInterval),
	).Run()

	logout, err := a.tui.ChatLoop(ctx, user)

	a.services.RefreshJob.Stop()
	a.services.SyncEngine.Stop()

	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	if logout {
		// Best-effort farewell to the server, bounded so a dead server
		// cannot hang the logout.
		logoutCtx, cancel := context.WithTimeout(ctx, a.requestTimeout)
		_ = a.services.SessionService.Logout(logoutCtx)
		cancel()

		return a.Run()
	}

	return nil
}
