// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the chat server.
//
// The primary abstraction is [ChatServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) speaking the fixed v1 contract.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401). A request that never
// reached the server surfaces as a wrapped transport error carrying no
// sentinel; [ErrLoginRejected] marks a well-formed server refusal of
// credentials.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-chat-keeper/models"
)

// ChatServerAdapter defines transport-agnostic communication with the chat
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
//
// The adapter is a pure, stateless translation layer: it performs no retries,
// no caching, and owns no state beyond transport configuration.
type ChatServerAdapter interface {
	// Login authenticates with the given credentials. A server refusal
	// (well-formed response declining the credentials) is returned as an
	// error wrapping [ErrLoginRejected] with the server's reason; a request
	// that never produced a response is returned as a transport error.
	Login(ctx context.Context, username, password string) (models.User, error)

	// Logout notifies the server that the session of userID is over. The
	// server's response body is opaque and discarded; callers are expected
	// to treat the whole call as best-effort.
	Logout(ctx context.Context, userID int64) error

	// ListMessages fetches the full message feed, ordered ascending by
	// creation order as guaranteed by the server.
	ListMessages(ctx context.Context) ([]models.Message, error)

	// SendMessage submits a new message authored by userID and returns the
	// server-confirmed entry with its assigned ID and timestamp.
	SendMessage(ctx context.Context, userID int64, content string) (models.Message, error)
}
