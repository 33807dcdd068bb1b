package models

// LoginRequest is the body of POST /v1/login.
type LoginRequest struct {
	// Username is the login identifier entered by the user.
	Username string `json:"username"`

	// Password is the plaintext password. It is transmitted once for
	// verification and never persisted by the client.
	Password string `json:"password"`
}

// LoginResponse is the body returned by POST /v1/login.
//
// The endpoint answers 200 both for accepted and declined credentials; the
// Success flag carries the verdict. A transport-level failure or a non-2xx
// status is a separate failure mode handled at the adapter layer.
type LoginResponse struct {
	// Success reports whether the credentials were accepted.
	Success bool `json:"success"`

	// Message is a human-readable verdict, e.g. "ok" or the rejection reason.
	Message string `json:"message"`

	// User is the authenticated profile. Non-nil only when Success is true.
	User *User `json:"user"`
}

// LogoutRequest is the body of POST /v1/logout. The server response is an
// opaque map of strings and is discarded by the client.
type LogoutRequest struct {
	// UserID identifies the session to terminate server-side.
	UserID int64 `json:"user_id"`
}

// RegisterRequest is the body of POST /v1/users, the provisioning endpoint
// used to create accounts.
type RegisterRequest struct {
	// Username is the unique login identifier.
	Username string `json:"username"`

	// Password is the plaintext password, hashed server-side before storage.
	Password string `json:"password"`

	// Name is the display name shown next to messages.
	Name string `json:"name"`

	// Email is optional contact information.
	Email string `json:"email,omitempty"`
}

// SendMessageRequest is the body of POST /v1/messages.
type SendMessageRequest struct {
	// UserID is the author of the new message.
	UserID int64 `json:"user_id"`

	// Content is the message text, already trimmed by the sender.
	Content string `json:"content"`
}
