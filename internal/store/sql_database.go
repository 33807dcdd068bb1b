package store

import (
	"database/sql"

	"github.com/MKhiriev/go-chat-keeper/internal/logger"
)

// DB wraps the standard library connection pool with the application logger.
// Repositories embed it and use the embedded *sql.DB directly.
type DB struct {
	*sql.DB
	logger *logger.Logger
}
