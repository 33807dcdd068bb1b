package service

import (
	"github.com/MKhiriev/go-chat-keeper/internal/adapter"
	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/store"
)

// ClientServices bundles the client-side services behind one value.
type ClientServices struct {
	SessionService SessionService
	SyncEngine     MessageSyncEngine
	RefreshJob     RefreshJob
}

// NewClientServices wires the client service graph: the session service on
// top of local storage and the server adapter, the sync engine on top of the
// adapter, and the refresh job on top of the engine.
func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ChatServerAdapter, log *logger.Logger) *ClientServices {
	sessionSvc := NewClientSessionService(localStore, serverAdapter, log)
	engine := NewMessageSyncEngine(serverAdapter, log)

	return &ClientServices{
		SessionService: sessionSvc,
		SyncEngine:     engine,
		RefreshJob:     NewRefreshJob(engine),
	}
}
