package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/store"
	"github.com/MKhiriev/go-chat-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidDataProvided is returned when a request is missing required
// fields.
var ErrInvalidDataProvided = errors.New("invalid data provided")

// authService is the concrete implementation of AuthService. Passwords are
// stored as bcrypt hashes; the plain text never leaves this service.
type authService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Register implements AuthService.
func (a *authService) Register(ctx context.Context, username, password, name, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" || name == "" {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registered, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: string(hash),
		Name:         name,
		Email:        email,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registered, nil
}

// Login implements AuthService.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	found, err := a.userRepository.GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		// Unknown name reads the same as a wrong password.
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		log.Warn().Int64("id", found.ID).Str("username", found.Username).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	// The hash stays server-side.
	found.PasswordHash = ""

	return found, nil
}

// Logout implements AuthService.
func (a *authService) Logout(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := a.userRepository.GetUserByID(ctx, userID); err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("logout for unknown user")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	log.Info().Int64("user_id", userID).Msg("user logged out")

	return nil
}
