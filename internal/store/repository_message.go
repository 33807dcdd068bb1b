package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/models"
	"github.com/jackc/pgerrcode"
)

// messageRepository is the PostgreSQL-backed implementation of
// [MessageRepository]. The feed is append-only: messages are never updated or
// deleted, and listing always returns the entire table ascending by id so the
// client can replace its local copy wholesale.
type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// ListMessages returns every message joined with its author's display name,
// ascending by id. Ascending ids follow creation order, so the result is also
// ordered by created_at.
func (r *messageRepository) ListMessages(ctx context.Context) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("m.id", "m.user_id", "u.name", "m.content", "m.created_at").
		From("messages m").
		Join("users u ON u.user_id = m.user_id").
		OrderBy("m.id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Msg("failed to query message feed")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var m models.Message
		var createdAt time.Time
		if err = rows.Scan(&m.ID, &m.AuthorID, &m.AuthorName, &m.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		m.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return messages, nil
}

// CreateMessage inserts a message and returns the stored entry with its
// server-assigned id and timestamp, joined with the author's display name.
//
// A foreign_key_violation (23503) on user_id maps to [ErrNoUserWasFound].
func (r *messageRepository) CreateMessage(ctx context.Context, userID int64, content string) (models.Message, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMessage, userID, content)

	var m models.Message
	var createdAt time.Time
	if err := row.Scan(&m.ID, &m.AuthorID, &m.AuthorName, &m.Content, &createdAt); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			log.Err(err).Int64("user_id", userID).Msg("message author does not exist")
			return models.Message{}, ErrNoUserWasFound
		}
		log.Err(err).Int64("user_id", userID).Msg("failed to insert message")
		return models.Message{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	m.CreatedAt = createdAt.UTC().Format(time.RFC3339)

	return m, nil
}
