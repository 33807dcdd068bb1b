package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/store"
	"github.com/MKhiriev/go-chat-keeper/models"
)

// messagesService is the concrete implementation of MessagesService.
type messagesService struct {
	messageRepository store.MessageRepository
	logger            *logger.Logger
}

// NewMessagesService constructs a MessagesService wired to the given
// MessageRepository.
func NewMessagesService(messageRepository store.MessageRepository, logger *logger.Logger) MessagesService {
	return &messagesService{
		messageRepository: messageRepository,
		logger:            logger,
	}
}

// List implements MessagesService.
func (m *messagesService) List(ctx context.Context) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	messages, err := m.messageRepository.ListMessages(ctx)
	if err != nil {
		log.Err(err).Msg("listing message feed failed")
		return nil, fmt.Errorf("listing message feed failed: %w", err)
	}

	return messages, nil
}

// Post implements MessagesService.
func (m *messagesService) Post(ctx context.Context, userID int64, content string) (models.Message, error) {
	log := logger.FromContext(ctx)

	content = strings.TrimSpace(content)
	if content == "" {
		log.Error().Int64("user_id", userID).Msg("empty message content")
		return models.Message{}, ErrEmptyMessage
	}

	stored, err := m.messageRepository.CreateMessage(ctx, userID, content)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("storing message failed")
		return models.Message{}, fmt.Errorf("storing message failed: %w", err)
	}

	return stored, nil
}
