// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/seqcanvas/seqcanvas/lib/interaction"
	"github.com/seqcanvas/seqcanvas/lib/web"
)

// maxWebhookBodySize bounds inbound webhook payloads. Canvas events
// are small JSON bodies; 1 MB is generous headroom.
const maxWebhookBodySize = 1 * 1024 * 1024

// Webhook event types dispatched by the notebook host.
const (
	eventCanvasInteraction = "v2.canvas.userInteracted"
	eventCanvasInitialized = "v2.canvas.initialized"
)

// webhookEnvelope is the host's webhook wrapper. Only the message is
// interesting; the outer envelope's delivery metadata is ignored.
type webhookEnvelope struct {
	Message webhookMessage `json:"message"`
}

type webhookMessage struct {
	Type        string            `json:"type"`
	CanvasID    string            `json:"canvasId"`
	FeatureID   string            `json:"featureId"`
	ButtonID    string            `json:"buttonId"`
	FieldValues map[string]string `json:"fieldValues"`
}

// interactionHandler is the slice of the interaction package the
// webhook endpoint needs.
type interactionHandler interface {
	HandleInteraction(ctx context.Context, event interaction.InteractionEvent) error
	HandleCanvasInitialize(ctx context.Context, canvasID string) error
}

// WebhookHandler ingests canvas webhooks from the notebook host:
// verifies the HMAC signature when a secret is configured, decodes
// the envelope, and dispatches to the interaction handler. Handling
// is synchronous — the host's webhook timeout is far above the
// handlers' internal HTTP timeouts, so responses always beat it.
type WebhookHandler struct {
	handler interactionHandler
	secret  []byte
	logger  *slog.Logger
}

// WebhookHandlerConfig configures a WebhookHandler.
type WebhookHandlerConfig struct {
	// Handler processes decoded canvas events. Required.
	Handler interactionHandler

	// Secret is the shared HMAC secret. Empty disables signature
	// verification.
	Secret []byte

	// Logger is the structured logger. Required.
	Logger *slog.Logger
}

// NewWebhookHandler creates the webhook endpoint.
func NewWebhookHandler(config WebhookHandlerConfig) *WebhookHandler {
	if config.Handler == nil {
		panic("WebhookHandler: Handler is required")
	}
	if config.Logger == nil {
		panic("WebhookHandler: Logger is required")
	}
	return &WebhookHandler{
		handler: config.Handler,
		secret:  config.Secret,
		logger:  config.Logger,
	}
}

// ServeHTTP handles a single webhook delivery.
func (h *WebhookHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodPost {
		http.Error(writer, "", http.StatusMethodNotAllowed)
		return
	}

	// The raw bytes are needed for HMAC verification before decoding.
	body, err := io.ReadAll(io.LimitReader(request.Body, maxWebhookBodySize))
	if err != nil {
		h.logger.Error("webhook: reading body failed", "error", err)
		http.Error(writer, "", http.StatusInternalServerError)
		return
	}
	if len(body) == 0 {
		http.Error(writer, "", http.StatusBadRequest)
		return
	}

	if len(h.secret) > 0 {
		signature := request.Header.Get("X-Webhook-Signature-256")
		if err := web.VerifyWebhookHMAC(h.secret, body, signature); err != nil {
			h.logger.Warn("webhook: signature verification failed",
				"error", err,
				"remote_addr", request.RemoteAddr)
			http.Error(writer, "", http.StatusUnauthorized)
			return
		}
	}

	var envelope webhookEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		h.logger.Warn("webhook: undecodable payload", "error", err)
		http.Error(writer, "", http.StatusBadRequest)
		return
	}
	message := envelope.Message

	// One id per delivery correlates every log line the handlers emit
	// for this interaction.
	requestID := uuid.NewString()
	logger := h.logger.With("request_id", requestID)
	ctx := request.Context()

	logger.Info("webhook received",
		"event_type", message.Type,
		"canvas_id", message.CanvasID)

	switch message.Type {
	case eventCanvasInteraction:
		event := interaction.InteractionEvent{
			CanvasID:     message.CanvasID,
			FeatureID:    message.FeatureID,
			TriggeringID: message.ButtonID,
			FieldValues:  message.FieldValues,
		}
		// Handler failures are reported to the user through the
		// session; a non-2xx here would only trigger a host retry of
		// an interaction that already surfaced its outcome.
		if err := h.handler.HandleInteraction(ctx, event); err != nil {
			logger.Error("webhook: interaction handling failed", "error", err)
		}
	case eventCanvasInitialized:
		if err := h.handler.HandleCanvasInitialize(ctx, message.CanvasID); err != nil {
			logger.Error("webhook: canvas initialization failed", "error", err)
		}
	default:
		logger.Info("webhook: ignoring event type", "event_type", message.Type)
	}

	writer.WriteHeader(http.StatusOK)
}
