package tui

import (
	"github.com/MKhiriev/go-chat-keeper/models"
)

// LoginResult is produced by the async login command. On success User holds
// the authenticated identity and the login program quits.
type LoginResult struct {
	User models.User
	Err  error
}

// engineUpdateMsg signals that the sync engine's snapshot changed and the
// chat view should re-read it.
type engineUpdateMsg struct{}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
