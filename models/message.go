package models

// Message is one server-confirmed chat entry. Messages are immutable once
// created; the server assigns both the identifier and the timestamp, and the
// feed is returned in ascending creation order. The client never fabricates a
// Message with a locally generated ID.
type Message struct {
	// ID is the unique server-assigned identifier. IDs grow monotonically
	// with creation order.
	ID int64 `json:"id"`

	// AuthorID references the User.ID of the message author.
	AuthorID int64 `json:"user_id"`

	// AuthorName is the display name of the author at the time the message
	// was created.
	AuthorName string `json:"name"`

	// Content is the message text. Non-empty after trimming.
	Content string `json:"content"`

	// CreatedAt is the server-assigned creation timestamp in a
	// lexicographically sortable string encoding.
	CreatedAt string `json:"created_at"`
}

// OwnedBy reports whether the message was authored by the user with the given
// ID. This comparison is the single place message ownership is computed.
func (m Message) OwnedBy(userID int64) bool {
	return m.AuthorID == userID
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}
