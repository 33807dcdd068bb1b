// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chat-keeper/models"
)

// OpState describes whether a network operation of the sync engine is
// currently running. Each operation (refresh, send) carries its own state, so
// a running refresh never blocks a send and vice versa.
type OpState int

const (
	// OpIdle means no request of this kind is running.
	OpIdle OpState = iota

	// OpInFlight means a request of this kind has been started and has not
	// completed yet. While in flight, further requests of the same kind are
	// ignored (refresh) or rejected (send).
	OpInFlight
)

// String returns a short label for logging and UI status lines.
func (s OpState) String() string {
	if s == OpInFlight {
		return "in-flight"
	}
	return "idle"
}

// FeedSnapshot is an immutable copy of the sync engine's observable state.
// The TUI renders exclusively from snapshots; it never touches engine
// internals.
type FeedSnapshot struct {
	// Messages is the current local copy of the feed, ascending by id.
	Messages []models.Message

	// RefreshState reports whether a feed refresh is running.
	RefreshState OpState

	// SendState reports whether a message send is running.
	SendState OpState

	// Revision increments every time Messages is replaced with a fresh
	// server result. A UI can compare revisions to decide when to scroll
	// to the latest message.
	Revision uint64

	// SentCount increments on every successfully delivered message. A UI
	// clears its compose field when it observes the counter advance.
	SentCount uint64

	// LastError holds a human-readable description of the most recent
	// failed operation, or "" after a success.
	LastError string
}

// SessionService owns the single persisted identity of the client. The
// current user survives restarts via local storage and is observable at any
// time through Current.
type SessionService interface {
	// Current returns the active identity and true, or a zero user and
	// false when nobody is logged in.
	Current() (models.User, bool)

	// Login authenticates against the server and, on success, persists the
	// returned identity locally and makes it current. A rejected login or
	// transport failure leaves the client anonymous.
	Login(ctx context.Context, username, password string) (models.User, error)

	// Logout tells the server the session is over, then clears the local
	// identity. The local clear happens regardless of the server call's
	// outcome, so logout never fails from the caller's point of view.
	Logout(ctx context.Context) error
}

// MessageSyncEngine keeps the local message feed in sync with the server and
// delivers outgoing messages. It is active between Start and Stop, i.e. for
// the lifetime of one authenticated session.
type MessageSyncEngine interface {
	// Start binds the engine to the given user and kicks off an initial
	// refresh. A previously running session is stopped first.
	Start(ctx context.Context, user models.User)

	// Stop cancels outstanding requests and blocks until all engine
	// goroutines have exited. Safe to call when the engine is not running.
	Stop()

	// Refresh fetches the full feed and replaces the local copy wholesale.
	// It is a no-op while another refresh is in flight or when the engine
	// is stopped.
	Refresh()

	// Send delivers a message asynchronously. Whitespace-only content is
	// rejected with ErrEmptyMessage before any state changes; a second
	// send while one is running is rejected with ErrSendInFlight. A
	// delivered message shows up in the feed via the follow-up refresh the
	// engine triggers itself.
	Send(content string) error

	// Snapshot returns a copy of the engine's current observable state.
	Snapshot() FeedSnapshot

	// Updates returns a channel that receives a signal whenever the
	// snapshot changes. Signals are coalesced; consumers re-read Snapshot
	// after each one.
	Updates() <-chan struct{}
}

// RefreshJob periodically pokes the sync engine so the feed stays current
// without user interaction.
type RefreshJob interface {
	// Start launches the background goroutine that calls Refresh every
	// interval, defaulting to 10 seconds if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
