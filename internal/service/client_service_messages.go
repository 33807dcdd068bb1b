// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/MKhiriev/go-chat-keeper/internal/adapter"
	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/models"
)

type messageSyncEngine struct {
	adapter adapter.ChatServerAdapter
	logger  *logger.Logger

	mu           sync.Mutex
	running      bool
	user         models.User
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	messages     []models.Message
	refreshState OpState
	sendState    OpState
	revision     uint64
	sentCount    uint64
	lastError    string

	updates chan struct{}
}

// NewMessageSyncEngine creates an engine bound to the given server adapter.
// The engine is idle until Start is called.
func NewMessageSyncEngine(serverAdapter adapter.ChatServerAdapter, log *logger.Logger) MessageSyncEngine {
	return &messageSyncEngine{
		adapter: serverAdapter,
		logger:  log,
		updates: make(chan struct{}, 1),
	}
}

// Start implements MessageSyncEngine. Any previous session is stopped before
// the new one begins, so a stale goroutine can never write into the new
// session's feed.
func (e *messageSyncEngine) Start(ctx context.Context, user models.User) {
	e.Stop()

	e.mu.Lock()
	sessionCtx, cancel := context.WithCancel(ctx)
	e.ctx = sessionCtx
	e.cancel = cancel
	e.running = true
	e.user = user
	e.messages = nil
	e.refreshState = OpIdle
	e.sendState = OpIdle
	e.lastError = ""
	e.mu.Unlock()

	e.logger.Info().Int64("user_id", user.ID).Msg("message sync engine started")
	e.notify()

	e.Refresh()
}

// Stop implements MessageSyncEngine. It cancels the session context and waits
// for in-flight goroutines; their late results are discarded.
func (e *messageSyncEngine) Stop() {
	e.mu.Lock()
	cancel := e.cancel
	e.cancel = nil
	e.running = false
	e.mu.Unlock()

	if cancel != nil {
		cancel()
		e.logger.Info().Msg("message sync engine stopped")
	}
	e.wg.Wait()
}

// Refresh implements MessageSyncEngine. The in-flight guard makes overlapping
// refreshes collapse into one: while a fetch is running, further calls return
// immediately without queueing.
func (e *messageSyncEngine) Refresh() {
	e.mu.Lock()
	if !e.running || e.refreshState == OpInFlight {
		e.mu.Unlock()
		return
	}
	e.refreshState = OpInFlight
	// A new attempt removes the previous failure from the snapshot.
	e.lastError = ""
	ctx := e.ctx
	e.wg.Add(1)
	e.mu.Unlock()
	e.notify()

	go func() {
		defer e.wg.Done()

		messages, err := e.adapter.ListMessages(ctx)

		e.mu.Lock()
		e.refreshState = OpIdle
		if ctx.Err() != nil {
			// Session ended while the request was running.
			e.mu.Unlock()
			return
		}
		if err != nil {
			e.lastError = describeAdapterError(err)
			e.logger.Warn().Err(err).Msg("feed refresh failed")
		} else {
			// Wholesale replace: the server's list is the single source
			// of truth, local state is only a cache of it.
			e.messages = messages
			e.revision++
			e.lastError = ""
		}
		e.mu.Unlock()
		e.notify()
	}()
}

// Send implements MessageSyncEngine. Validation failures are reported
// synchronously and leave the send state untouched; delivery itself is
// asynchronous and surfaces through the snapshot.
func (e *messageSyncEngine) Send(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyMessage
	}

	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return ErrNotAuthenticated
	}
	if e.sendState == OpInFlight {
		e.mu.Unlock()
		return ErrSendInFlight
	}
	e.sendState = OpInFlight
	e.lastError = ""
	ctx := e.ctx
	userID := e.user.ID
	e.wg.Add(1)
	e.mu.Unlock()
	e.notify()

	go func() {
		defer e.wg.Done()

		_, err := e.adapter.SendMessage(ctx, userID, content)

		e.mu.Lock()
		e.sendState = OpIdle
		if ctx.Err() != nil {
			e.mu.Unlock()
			return
		}
		if err != nil {
			e.lastError = describeAdapterError(err)
			e.logger.Warn().Err(err).Msg("message send failed")
			e.mu.Unlock()
			e.notify()
			return
		}
		e.sentCount++
		e.lastError = ""
		e.mu.Unlock()
		e.notify()

		// The delivered message reaches the feed through a full re-fetch,
		// never through a local append.
		e.Refresh()
	}()

	return nil
}

// Snapshot implements MessageSyncEngine.
func (e *messageSyncEngine) Snapshot() FeedSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	messages := make([]models.Message, len(e.messages))
	copy(messages, e.messages)

	return FeedSnapshot{
		Messages:     messages,
		RefreshState: e.refreshState,
		SendState:    e.sendState,
		Revision:     e.revision,
		SentCount:    e.sentCount,
		LastError:    e.lastError,
	}
}

// Updates implements MessageSyncEngine.
func (e *messageSyncEngine) Updates() <-chan struct{} {
	return e.updates
}

// notify signals a snapshot change without ever blocking: the buffered
// channel coalesces bursts into a single pending signal.
func (e *messageSyncEngine) notify() {
	select {
	case e.updates <- struct{}{}:
	default:
	}
}

// describeAdapterError turns the adapter's transport error into a short line
// fit for the status bar.
func describeAdapterError(err error) string {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return "server no longer accepts this session"
	case errors.Is(err, adapter.ErrBadRequest):
		return "server rejected the request"
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return "server error, try again later"
	default:
		return "cannot reach server"
	}
}
