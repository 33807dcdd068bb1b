package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-keeper/internal/config"
	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/migrations"
)

// Storages groups the server-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	// UserRepository is the PostgreSQL-backed account store.
	UserRepository UserRepository

	// MessageRepository is the PostgreSQL-backed message feed store.
	MessageRepository MessageRepository
}

// NewStorages initialises the server storage layer: it opens the PostgreSQL
// connection from cfg.DB.DSN, runs pending schema migrations, and wires the
// repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := migrations.MigrateServer(db.DB); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		MessageRepository: NewMessageRepository(db, logger),
	}, nil
}
