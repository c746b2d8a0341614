// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package interaction

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/seqcanvas/seqcanvas/lib/apperr"
	"github.com/seqcanvas/seqcanvas/lib/benchling"
	"github.com/seqcanvas/seqcanvas/lib/seqera"
)

// searchTextPattern is the full charset accepted as search input. The
// registry query is built by string interpolation on our side, so the
// input is validated before encoding rather than escaped after the
// fact.
var searchTextPattern = regexp.MustCompile(`^[A-Za-z0-9 -]+$`)

// sanitizeSearchText validates raw search input and returns its
// query-encoded form. The raw text is what gets persisted and shown;
// the encoded text is what reaches the registry.
func sanitizeSearchText(text string) (string, error) {
	if text == "" {
		return "", apperr.Validationf("Search text must not be empty.")
	}
	if !searchTextPattern.MatchString(text) {
		return "", apperr.Validationf("Search text may only contain letters, digits, spaces, and hyphens.")
	}
	return url.QueryEscape(text), nil
}

func (handler *Handler) handleSearch(ctx context.Context, session *Session, event InteractionEvent) error {
	text := strings.TrimSpace(event.FieldValues[searchTextInputID])
	encoded, err := sanitizeSearchText(text)
	if err != nil {
		return err
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

// renderRunList writes either the results view or, for an empty
// result, the landing view again, and closes the session accordingly.
// The raw search text is persisted in canvas data so back-navigation
// from the detail view can re-run the query.
func (handler *Handler) renderRunList(ctx context.Context, session *Session, canvasID string, runs []seqera.RunSummary, searchText string) error {
	if len(runs) == 0 {
		err := handler.notebook.UpdateCanvas(ctx, canvasID, benchling.CanvasUpdate{
			Blocks:  searchInputBlocks(),
			Enabled: benchling.Bool(true),
		})
		if err != nil {
			return err
		}
		session.Close(ctx, benchling.SessionSucceeded, benchling.MessageInfo,
			fmt.Sprintf("Couldn't find any runs for %q.", searchText))
		return nil
	}

	err := handler.notebook.UpdateCanvas(ctx, canvasID, benchling.CanvasUpdate{
		Blocks:  runListBlocks(runs),
		Data:    map[string]string{searchTextDataKey: searchText},
		Enabled: benchling.Bool(true),
	})
	if err != nil {
		return err
	}

	runWord := "runs"
	if len(runs) == 1 {
		runWord = "run"
	}
	session.Close(ctx, benchling.SessionSucceeded, benchling.MessageSuccess,
		fmt.Sprintf("Found %d pipeline %s for %q.", len(runs), runWord, searchText))
	return nil
}
