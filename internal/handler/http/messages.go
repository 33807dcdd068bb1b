package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/internal/service"
	"github.com/MKhiriev/go-chat-keeper/internal/store"
	"github.com/MKhiriev/go-chat-keeper/models"
)

// listMessages returns the whole feed ascending by id. Clients replace their
// local copy with the result wholesale.
func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	messages, err := h.services.MessagesService.List(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred while listing messages")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, messages, http.StatusOK)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	stored, err := h.services.MessagesService.Post(ctx, req.UserID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			log.Err(err).Msg("empty message content")
			http.Error(w, "message content is empty", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Int64("user_id", req.UserID).Msg("unknown message author")
			http.Error(w, "unknown message author", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred while storing message")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", stored.ID).Int64("user_id", stored.AuthorID).Msg("message stored")

	writeJSON(w, stored, http.StatusOK)
}
