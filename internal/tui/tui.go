package tui

import (
	"context"

	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/service"
	"github.com/MKhiriev/go-chat-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI owns the two terminal programs of the client: the login flow and the
// chat loop. Each runs as its own Bubble Tea program so the chat screen
// always starts from a clean model.
type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// LoginFlow runs the login screen until the user authenticates or quits.
// Returns [ErrUserQuit] when the user closes the program.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	model := NewLoginModel(ctx, t.services.SessionService)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(LoginModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	return result.result.User, nil
}

// ChatLoop runs the chat screen for the authenticated user. It returns
// logout=true when the user asked to end the session and stay in the
// program, and [ErrUserQuit] when they closed the program entirely.
func (t *TUI) ChatLoop(_ context.Context, user models.User) (logout bool, err error) {
	model := newChatModel(t.services.SyncEngine, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(chatModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return false, ErrUserQuit
	}

	return result.logout, nil
}
