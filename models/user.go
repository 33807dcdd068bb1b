package models

// User represents the server-issued profile of a chat participant.
// The client treats a User obtained from a successful login as immutable:
// it is replaced wholesale on the next login and deleted on logout.
type User struct {
	// ID is the unique server-assigned identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name shown next to the user's messages.
	Name string `json:"name"`

	// Email is an optional contact address. It may be empty.
	Email string `json:"email,omitempty"`

	// Username is the login identifier. It participates in authentication
	// only and is never exposed via JSON.
	Username string `json:"-"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Server-side only; never exposed via JSON.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
