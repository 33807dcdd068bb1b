// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/service"
	"github.com/MKhiriev/go-chat-keeper/internal/store"
	"github.com/MKhiriev/go-chat-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn func(ctx context.Context, username, password, name, email string) (models.User, error)
	loginFn    func(ctx context.Context, username, password string) (models.User, error)
	logoutFn   func(ctx context.Context, userID int64) error
}

func (m *mockAuthService) Register(ctx context.Context, username, password, name, email string) (models.User, error) {
	return m.registerFn(ctx, username, password, name, email)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) Logout(ctx context.Context, userID int64) error {
	return m.logoutFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, username, _ string) (models.User, error) {
			return models.User{ID: 5, Username: username, Name: "Alice"}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.LoginRequest{Username: "alice", Password: "secret"})
	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.User)
	assert.Equal(t, int64(5), resp.User.ID)
	assert.Equal(t, "Alice", resp.User.Name)
}

func TestLogin_WrongCredentials_Returns200WithFailure(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrWrongCredentials
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.LoginRequest{Username: "alice", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	// Declined credentials are a business outcome, not an HTTP failure.
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Nil(t, resp.User)
	assert.NotEmpty(t, resp.Message)
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.LoginRequest{})
	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_InternalError(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, errors.New("db down")
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.LoginRequest{Username: "alice", Password: "secret"})
	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_Success(t *testing.T) {
	var gotUserID int64
	auth := &mockAuthService{
		logoutFn: func(_ context.Context, userID int64) error {
			gotUserID = userID
			return nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.LogoutRequest{UserID: 5})
	req := httptest.NewRequest(http.MethodPost, "/v1/logout", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), gotUserID)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp["message"])
}

func TestLogout_UnknownUser(t *testing.T) {
	auth := &mockAuthService{
		logoutFn: func(_ context.Context, _ int64) error {
			return store.ErrNoUserWasFound
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.LogoutRequest{UserID: 999})
	req := httptest.NewRequest(http.MethodPost, "/v1/logout", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogout_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/v1/logout", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
