// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-chat-keeper/internal/adapter"
	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/store"
	"github.com/MKhiriev/go-chat-keeper/models"
)

type clientSessionService struct {
	localStore *store.ClientStorages
	adapter    adapter.ChatServerAdapter
	logger     *logger.Logger

	mu      sync.RWMutex
	user    models.User
	present bool
}

// NewClientSessionService constructs a SessionService and immediately tries
// to restore a previously persisted identity from local storage. A missing or
// unreadable session record simply starts the client anonymous.
func NewClientSessionService(localStore *store.ClientStorages, serverAdapter adapter.ChatServerAdapter, log *logger.Logger) SessionService {
	s := &clientSessionService{
		localStore: localStore,
		adapter:    serverAdapter,
		logger:     log,
	}

	user, err := localStore.SessionRepository.LoadSession(context.Background())
	switch {
	case err == nil:
		s.user = user
		s.present = true
		log.Info().Int64("user_id", user.ID).Msg("restored persisted session")
	case errors.Is(err, store.ErrLocalSessionNotFound):
		log.Info().Msg("no persisted session, starting anonymous")
	default:
		log.Warn().Err(err).Msg("failed to read persisted session, starting anonymous")
	}

	return s
}

// Current implements SessionService.
func (s *clientSessionService) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.present
}

// Login implements SessionService. The identity only becomes current after
// the server accepts the credentials; a rejection or transport failure leaves
// whatever identity existed before untouched.
func (s *clientSessionService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := s.logger

	user, err := s.adapter.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, adapter.ErrLoginRejected) {
			return models.User{}, fmt.Errorf("%w: %v", ErrWrongCredentials, err)
		}
		return models.User{}, fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}

	// Persist before exposing: if the write fails the session still works
	// for this run, it just will not survive a restart.
	if err := s.localStore.SessionRepository.SaveSession(ctx, user); err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("failed to persist session")
	}

	s.mu.Lock()
	s.user = user
	s.present = true
	s.mu.Unlock()

	log.Info().Int64("user_id", user.ID).Str("name", user.Name).Msg("logged in")

	return user, nil
}

// Logout implements SessionService. The server call is best-effort: whether
// it succeeds, fails, or there is no session at all, the local identity is
// cleared and the method returns nil.
func (s *clientSessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	user := s.user
	present := s.present
	s.user = models.User{}
	s.present = false
	s.mu.Unlock()

	if present {
		if err := s.adapter.Logout(ctx, user.ID); err != nil {
			s.logger.Warn().Err(err).Int64("user_id", user.ID).Msg("server logout failed, clearing local session anyway")
		}
	}

	if err := s.localStore.SessionRepository.ClearSession(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear persisted session")
	}

	s.logger.Info().Msg("logged out")

	return nil
}
