package store

import (
	"context"

	"github.com/MKhiriev/go-chat-keeper/models"
)

// SessionRepository is the client-side durable cell holding at most one
// authenticated identity. It performs no network access and no validation of
// server-side session validity.
type SessionRepository interface {
	// SaveSession persists user as the current session, fully overwriting
	// any previous value. Durable across process restart.
	SaveSession(ctx context.Context, user models.User) error

	// LoadSession returns the persisted identity. Returns
	// [ErrLocalSessionNotFound] when nothing is stored or the stored value
	// fails to parse — a corrupt record means "no session", not a fault.
	LoadSession(ctx context.Context) (models.User, error)

	// ClearSession removes any persisted identity. Idempotent: safe to call
	// when nothing is stored.
	ClearSession(ctx context.Context) error
}
