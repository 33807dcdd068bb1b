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
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo — дублёр хранилища пользователей.
type fakeUserRepo struct {
	createErr error
	created   *models.User

	byUsername map[string]models.User
	byID       map[int64]models.User
	lookupErr  error
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if f.createErr != nil {
		return models.User{}, f.createErr
	}
	user.ID = 1
	f.created = &user
	return user, nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	if f.lookupErr != nil {
		return models.User{}, f.lookupErr
	}
	user, ok := f.byUsername[username]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, userID int64) (models.User, error) {
	if f.lookupErr != nil {
		return models.User{}, f.lookupErr
	}
	user, ok := f.byID[userID]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo, logger.Nop())

	user, err := svc.Register(context.Background(), "alice", "secret", "Alice", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	require.NotNil(t, repo.created)
	assert.NotEqual(t, "secret", repo.created.PasswordHash, "plain password must never be stored")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("secret")))
}

func TestAuthService_Register_RejectsMissingFields(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, logger.Nop())

	for _, tc := range []struct {
		name                     string
		username, password, full string
	}{
		{"no username", "", "secret", "Alice"},
		{"no password", "alice", "", "Alice"},
		{"no name", "alice", "secret", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.username, tc.password, tc.full, "")
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	repo := &fakeUserRepo{createErr: store.ErrUsernameAlreadyExists}
	svc := NewAuthService(repo, logger.Nop())

	_, err := svc.Register(context.Background(), "alice", "secret", "Alice", "")
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	repo := &fakeUserRepo{byUsername: map[string]models.User{
		"alice": {ID: 5, Username: "alice", Name: "Alice", PasswordHash: mustHash(t, "secret")},
	}}
	svc := NewAuthService(repo, logger.Nop())

	user, err := svc.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	assert.Empty(t, user.PasswordHash, "hash must not leave the service")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &fakeUserRepo{byUsername: map[string]models.User{
		"alice": {ID: 5, Username: "alice", PasswordHash: mustHash(t, "secret")},
	}}
	svc := NewAuthService(repo, logger.Nop())

	_, err := svc.Login(context.Background(), "alice", "not-secret")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_UnknownUsernameReadsLikeWrongPassword(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, logger.Nop())

	_, err := svc.Login(context.Background(), "nobody", "secret")
	assert.ErrorIs(t, err, ErrWrongCredentials, "unknown names must not be distinguishable")
}

func TestAuthService_Login_RejectsMissingFields(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, logger.Nop())

	_, err := svc.Login(context.Background(), "", "secret")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), "alice", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_StorageFailure(t *testing.T) {
	repo := &fakeUserRepo{lookupErr: errors.New("db down")}
	svc := NewAuthService(repo, logger.Nop())

	_, err := svc.Login(context.Background(), "alice", "secret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrWrongCredentials, "infrastructure failure is not a credential failure")
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestAuthService_Logout_KnownUser(t *testing.T) {
	repo := &fakeUserRepo{byID: map[int64]models.User{5: {ID: 5, Username: "alice"}}}
	svc := NewAuthService(repo, logger.Nop())

	assert.NoError(t, svc.Logout(context.Background(), 5))
}

func TestAuthService_Logout_UnknownUser(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, logger.Nop())

	err := svc.Logout(context.Background(), 999)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
