package service

import (
	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/store"
)

// Services bundles the server-side services behind one value.
type Services struct {
	AuthService     AuthService
	MessagesService MessagesService
}

// NewServices wires the server service graph on top of the storage layer.
func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, logger),
		MessagesService: NewMessagesService(storages.MessageRepository, logger),
	}
}
