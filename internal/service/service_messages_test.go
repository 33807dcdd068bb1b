package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/store"
	"github.com/MKhiriev/go-chat-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMessageRepo — дублёр хранилища сообщений.
type fakeMessageRepo struct {
	feed    []models.Message
	listErr error

	createErr   error
	lastContent string
	lastUserID  int64
}

func (f *fakeMessageRepo) ListMessages(_ context.Context) ([]models.Message, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.feed, nil
}

func (f *fakeMessageRepo) CreateMessage(_ context.Context, userID int64, content string) (models.Message, error) {
	if f.createErr != nil {
		return models.Message{}, f.createErr
	}
	f.lastUserID = userID
	f.lastContent = content
	return models.Message{ID: 42, AuthorID: userID, Content: content, CreatedAt: "2026-03-01T10:00:00Z"}, nil
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestMessagesService_List_ReturnsFeed(t *testing.T) {
	repo := &fakeMessageRepo{feed: []models.Message{{ID: 1, Content: "hi"}, {ID: 2, Content: "hello"}}}
	svc := NewMessagesService(repo, logger.Nop())

	messages, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestMessagesService_List_StorageFailure(t *testing.T) {
	repo := &fakeMessageRepo{listErr: errors.New("db down")}
	svc := NewMessagesService(repo, logger.Nop())

	_, err := svc.List(context.Background())
	assert.Error(t, err)
}

// ── Post ─────────────────────────────────────────────────────────────────────

func TestMessagesService_Post_TrimsAndStores(t *testing.T) {
	repo := &fakeMessageRepo{}
	svc := NewMessagesService(repo, logger.Nop())

	stored, err := svc.Post(context.Background(), 5, "  hello there  ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), stored.ID)
	assert.Equal(t, "hello there", repo.lastContent)
	assert.Equal(t, int64(5), repo.lastUserID)
}

func TestMessagesService_Post_RejectsBlankContent(t *testing.T) {
	repo := &fakeMessageRepo{}
	svc := NewMessagesService(repo, logger.Nop())

	_, err := svc.Post(context.Background(), 5, "   \n\t ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Empty(t, repo.lastContent, "blank content must never reach the repository")
}

func TestMessagesService_Post_UnknownAuthor(t *testing.T) {
	repo := &fakeMessageRepo{createErr: store.ErrNoUserWasFound}
	svc := NewMessagesService(repo, logger.Nop())

	_, err := svc.Post(context.Background(), 999, "hi")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
