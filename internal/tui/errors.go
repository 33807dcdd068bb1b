package tui

import (
	"errors"

	"github.com/MKhiriev/go-chat-keeper/internal/service"
)

// ErrUserQuit reports that the user closed the program instead of completing
// the flow.
var ErrUserQuit = errors.New("user quit")

// humanizeLoginError turns service-level login failures into a short line for
// the login form.
func humanizeLoginError(err error) string {
	switch {
	case errors.Is(err, service.ErrWrongCredentials):
		return "Неверный логин или пароль"
	case errors.Is(err, service.ErrServerUnavailable):
		return "Сервер недоступен, попробуйте позже"
	default:
		return err.Error()
	}
}
