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

// login answers 200 for both accepted and declined credentials; the Success
// flag in the body carries the verdict. Non-2xx statuses are reserved for
// malformed requests and infrastructure failures.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongCredentials):
			log.Warn().Str("username", req.Username).Msg("credentials declined")
			writeJSON(w, models.LoginResponse{
				Success: false,
				Message: "wrong username or password",
			}, http.StatusOK)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", user.ID).Str("username", user.Username).Msg("user successfully logged in")

	writeJSON(w, models.LoginResponse{
		Success: true,
		Message: "ok",
		User:    &user,
	}, http.StatusOK)
}

// logout acknowledges the end of a session. Clients discard the response
// body, so it stays a flat map of strings.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.Logout(ctx, req.UserID); err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Warn().Int64("user_id", req.UserID).Msg("logout for unknown user")
			http.Error(w, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during logout")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, map[string]string{"message": "logged out"}, http.StatusOK)
}
