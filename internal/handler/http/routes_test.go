// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/service"
	"github.com/MKhiriev/go-chat-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	svcs := &service.Services{
		AuthService: &mockAuthService{
			loginFn: func(_ context.Context, username, _ string) (models.User, error) {
				return models.User{ID: 5, Username: username}, nil
			},
			logoutFn:   func(_ context.Context, _ int64) error { return nil },
			registerFn: func(_ context.Context, u, _, n, e string) (models.User, error) { return models.User{ID: 1}, nil },
		},
		MessagesService: &mockMessagesService{
			listFn: func(_ context.Context) ([]models.Message, error) { return []models.Message{}, nil },
			postFn: func(_ context.Context, userID int64, content string) (models.Message, error) {
				return models.Message{ID: 1, AuthorID: userID, Content: content}, nil
			},
		},
	}

	return NewHandler(svcs, logger.Nop()).Init()
}

func TestRoutes_AllEndpointsWired(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		method, path, body string
		wantStatus         int
	}{
		{http.MethodPost, "/v1/login", `{"username":"alice","password":"secret"}`, http.StatusOK},
		{http.MethodPost, "/v1/logout", `{"user_id":5}`, http.StatusOK},
		{http.MethodPost, "/v1/users", `{"username":"alice","password":"secret","name":"Alice"}`, http.StatusCreated},
		{http.MethodGet, "/v1/messages", "", http.StatusOK},
		{http.MethodPost, "/v1/messages", `{"user_id":5,"content":"hi"}`, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			var body *strings.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tc.method, tc.path, body)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/unknown", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_TraceIDHeaderSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/messages", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestRoutes_TraceIDHeaderPropagated(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/messages", nil)
	req.Header.Set("X-Trace-ID", "fixed-trace-id")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "fixed-trace-id", rec.Header().Get("X-Trace-ID"))
}
