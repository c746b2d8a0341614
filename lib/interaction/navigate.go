// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package interaction

import (
	"context"

	"github.com/seqcanvas/seqcanvas/lib/benchling"
	"github.com/seqcanvas/seqcanvas/lib/seqera"
)

// handleCancelToLanding returns the canvas to the landing view and
// discards the persisted search text.
func (handler *Handler) handleCancelToLanding(ctx context.Context, session *Session, event InteractionEvent) error {
	err := handler.notebook.UpdateCanvas(ctx, event.CanvasID, benchling.CanvasUpdate{
		Blocks: searchInputBlocks(),
		// An empty value rather than a missing key: the update API
		// omits empty maps, and a stale search must not survive.
		Data:    map[string]string{searchTextDataKey: ""},
		Enabled: benchling.Bool(true),
	})
	if err != nil {
		return err
	}
	session.Close(ctx, benchling.SessionSucceeded, benchling.MessageInfo, "Returned to search.")
	return nil
}

// handleCancelDetail navigates from the detail view back to the
// results list by re-running the persisted search. With no usable
// persisted text it falls back to the landing view.
func (handler *Handler) handleCancelDetail(ctx context.Context, session *Session, event InteractionEvent) error {
	canvas, err := handler.notebook.GetCanvas(ctx, event.CanvasID)
	if err != nil {
		return err
	}

	text := canvas.Data[searchTextDataKey]
	if text == "" {
		return handler.handleCancelToLanding(ctx, session, event)
	}
	// Persisted canvas data is host-side state; it gets the same
	// validation as fresh input.
	encoded, err := sanitizeSearchText(text)
	if err != nil {
		handler.logger.Warn("persisted search text invalid, returning to landing",
			"canvas_id", event.CanvasID,
			"error", err)
		return handler.handleCancelToLanding(ctx, session, event)
	}

	workspaceID, err := handler.resolveWorkspace(ctx)
	if err != nil {
		return err
	}
	runs, err := handler.registry.ListRuns(ctx, seqera.ListOptions{
		WorkspaceID: workspaceID,
		Search:      encoded,
	})
	if err != nil {
		return err
	}
	return handler.renderRunList(ctx, session, event.CanvasID, runs, text)
}
