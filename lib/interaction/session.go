// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package interaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/seqcanvas/seqcanvas/lib/apperr"
	"github.com/seqcanvas/seqcanvas/lib/benchling"
)

// Session is one host-tracked session wrapping one operation. Close is
// idempotent; the first close wins.
type Session struct {
	id       string
	canvasID string
	notebook Notebook
	logger   *slog.Logger
	closed   bool
}

// ID returns the host session id.
func (session *Session) ID() string {
	return session.id
}

// Close drives the session to a terminal status with one message.
// Subsequent calls are no-ops. A failed close is logged and swallowed:
// at close time there is nowhere left to report to.
func (session *Session) Close(ctx context.Context, status, style, content string) {
	if session.closed {
		session.logger.Warn("suppressing duplicate session close",
			"session_id", session.id,
			"status", status)
		return
	}
	session.closed = true

	err := session.notebook.CloseSession(ctx, session.id, status, []benchling.SessionMessage{
		{Content: content, Style: style},
	})
	if err != nil {
		session.logger.Error("closing session failed",
			"session_id", session.id,
			"status", status,
			"error", err)
	}
}

// withSession runs fn inside a fresh host session attached to the
// canvas, guaranteeing a terminal status on every path:
//
//   - fn returns an error: FAILED, with the error's user-facing
//     message; the error is consumed.
//   - fn panics: FAILED, with the generic internal message; the panic
//     is consumed.
//   - fn returns nil without closing: SUCCEEDED, with a default
//     completion message.
//   - fn already closed the session: nothing further.
//
// Only a failure to create the session surfaces as a returned error —
// without a session there is no channel to report through.
func (handler *Handler) withSession(ctx context.Context, operation string, timeoutSeconds int, canvasID string, fn func(context.Context, *Session) error) (err error) {
	hostSession, err := handler.notebook.CreateSession(ctx, operation, timeoutSeconds)
	if err != nil {
		return fmt.Errorf("beginning session for %q: %w", operation, err)
	}
	session := &Session{
		id:       hostSession.ID,
		canvasID: canvasID,
		notebook: handler.notebook,
		logger:   handler.logger,
	}

	// Attach the session so the canvas shows its progress. The
	// operation proceeds without the attachment if this fails.
	attachErr := handler.notebook.UpdateCanvas(ctx, canvasID, benchling.CanvasUpdate{SessionID: session.id})
	if attachErr != nil {
		handler.logger.Warn("attaching session to canvas failed",
			"session_id", session.id,
			"canvas_id", canvasID,
			"error", attachErr)
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			handler.logger.Error("handler panicked",
				"operation", operation,
				"session_id", session.id,
				"panic", recovered)
			session.Close(ctx, benchling.SessionFailed, benchling.MessageError, apperr.InternalMessage)
			err = nil
		}
	}()

	if fnErr := fn(ctx, session); fnErr != nil {
		handler.logger.Error("operation failed",
			"operation", operation,
			"session_id", session.id,
			"error_kind", apperr.KindOf(fnErr),
			"error", fnErr)
		session.Close(ctx, benchling.SessionFailed, benchling.MessageError, apperr.UserMessage(fnErr))
		return nil
	}

	if !session.closed {
		session.Close(ctx, benchling.SessionSucceeded, benchling.MessageSuccess, operation+" completed.")
	}
	return nil
}
