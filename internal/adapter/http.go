package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-chat-keeper/internal/config"
	"github.com/MKhiriev/go-chat-keeper/internal/logger"
	"github.com/MKhiriev/go-chat-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ChatServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and per-request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ChatServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ChatServerAdapter]. It POSTs the credentials to
// POST /v1/login and decodes the tagged response. A transport failure and a
// non-2xx status surface as errors; a 2xx response with success=false (or a
// missing user record) surfaces as a wrapped [ErrLoginRejected] carrying the
// server's reason.
func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Username: username, Password: password}).
		Post("/v1/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var result models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.User{}, fmt.Errorf("decode login response: %w", err)
	}

	if !result.Success || result.User == nil {
		reason := result.Message
		if reason == "" {
			reason = "invalid username or password"
		}
		return models.User{}, fmt.Errorf("%w: %s", ErrLoginRejected, reason)
	}

	return *result.User, nil
}

// Logout implements [ChatServerAdapter]. It POSTs the user id to
// POST /v1/logout. The server answers with an opaque map of strings which is
// discarded; only transport failures and non-2xx statuses are reported.
func (h *httpServerAdapter) Logout(ctx context.Context, userID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LogoutRequest{UserID: userID}).
		Post("/v1/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListMessages implements [ChatServerAdapter]. It GETs the full feed from
// GET /v1/messages and decodes it into an ascending-ordered slice. Returns an
// error if the request, response mapping, or JSON decoding fails.
func (h *httpServerAdapter) ListMessages(ctx context.Context) ([]models.Message, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/v1/messages")
	if err != nil {
		return nil, fmt.Errorf("list messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var messages []models.Message
	if err = json.Unmarshal(resp.Body(), &messages); err != nil {
		return nil, fmt.Errorf("decode messages response: %w", err)
	}

	return messages, nil
}

// SendMessage implements [ChatServerAdapter]. It POSTs the new message to
// POST /v1/messages and returns the server-confirmed [models.Message] with
// its assigned id and timestamp. Returns an error if the request, response
// mapping, or JSON decoding fails.
func (h *httpServerAdapter) SendMessage(ctx context.Context, userID int64, content string) (models.Message, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SendMessageRequest{UserID: userID, Content: content}).
		Post("/v1/messages")
	if err != nil {
		return models.Message{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	var message models.Message
	if err = json.Unmarshal(resp.Body(), &message); err != nil {
		return models.Message{}, fmt.Errorf("decode message response: %w", err)
	}

	return message, nil
}
