package service

import (
	"context"

	"github.com/MKhiriev/go-chat-keeper/models"
)

// AuthService defines the server-side contract for account provisioning and
// credential verification.
type AuthService interface {
	// Register creates a new account with a bcrypt-hashed password.
	// Returns the persisted user (with a server-assigned ID) or:
	//   - ErrInvalidDataProvided if username, password, or name is empty.
	//   - store.ErrUsernameAlreadyExists if the username is taken.
	Register(ctx context.Context, username, password, name, email string) (models.User, error)

	// Login verifies the supplied credentials against the stored bcrypt
	// hash. An unknown username and a wrong password both come back as
	// ErrWrongCredentials so a caller cannot probe for registered names.
	Login(ctx context.Context, username, password string) (models.User, error)

	// Logout ends the session of the given user. The chat protocol keeps
	// no server-side session state, so the call only verifies the user
	// exists and records the event.
	Logout(ctx context.Context, userID int64) error
}

// MessagesService defines the server-side contract for the shared feed.
type MessagesService interface {
	// List returns the entire feed, ascending by id.
	List(ctx context.Context) ([]models.Message, error)

	// Post validates and stores a message on behalf of userID.
	// Returns the stored message (with server-assigned id and timestamp) or:
	//   - ErrEmptyMessage if content is blank after trimming.
	//   - store.ErrNoUserWasFound if userID is unknown.
	Post(ctx context.Context, userID int64, content string) (models.Message, error)
}
