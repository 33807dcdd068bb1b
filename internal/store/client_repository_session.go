// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/models"
)

// sessionKey is the fixed name of the single session record. Absence of a row
// with this key means "no session".
const sessionKey = "current_user"

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// client's local SQLite database.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveSession implements [SessionRepository]. The identity is serialised to
// JSON and upserted under the fixed session key, replacing any previous
// record in the same statement.
func (r *sessionRepository) SaveSession(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session payload: %w", err)
	}

	query, args, err := sq.Insert("session").
		Options("OR REPLACE").
		Columns("name", "payload", "saved_at").
		Values(sessionKey, string(payload), time.Now().UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("failed to persist session")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

// LoadSession implements [SessionRepository]. A missing row and an
// undecodable payload both yield [ErrLocalSessionNotFound]: restoring a
// session must never fail harder than "no session".
func (r *sessionRepository) LoadSession(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("payload").
		From("session").
		Where(sq.Eq{"name": sessionKey}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var payload string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrLocalSessionNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	var user models.User
	if err = json.Unmarshal([]byte(payload), &user); err != nil {
		log.Warn().Err(err).Msg("persisted session is unreadable, treating as no session")
		return models.User{}, ErrLocalSessionNotFound
	}
	if user.ID == 0 {
		log.Warn().Msg("persisted session has no user id, treating as no session")
		return models.User{}, ErrLocalSessionNotFound
	}

	return user, nil
}

// ClearSession implements [SessionRepository]. Deleting an absent record is
// not an error.
func (r *sessionRepository) ClearSession(ctx context.Context) error {
	query, args, err := sq.Delete("session").
		Where(sq.Eq{"name": sessionKey}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}
