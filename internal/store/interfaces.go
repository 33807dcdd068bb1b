package store

import (
	"context"

	"github.com/MKhiriev/go-chat-keeper/models"
)

// UserRepository is the server-side account store.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields. Returns [ErrUsernameAlreadyExists] on a duplicate username.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUserByUsername loads the account with the given username, including
	// its password hash. Returns [ErrNoUserWasFound] on an empty result.
	GetUserByUsername(ctx context.Context, username string) (models.User, error)

	// GetUserByID loads the account with the given id.
	// Returns [ErrNoUserWasFound] on an empty result.
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
}

// MessageRepository is the server-side message feed store.
type MessageRepository interface {
	// ListMessages returns the whole feed ascending by creation order, each
	// entry joined with its author's display name.
	ListMessages(ctx context.Context) ([]models.Message, error)

	// CreateMessage persists a new message for userID and returns the stored
	// entry with its server-assigned id and timestamp. Returns
	// [ErrNoUserWasFound] when userID references no account.
	CreateMessage(ctx context.Context, userID int64, content string) (models.Message, error)
}
