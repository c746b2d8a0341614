// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package interaction

import (
	"context"
	"fmt"

	"github.com/seqcanvas/seqcanvas/lib/apperr"
	"github.com/seqcanvas/seqcanvas/lib/benchling"
)

// handleAddToNotebook snapshots a run's current state into a notebook
// schema record and renders the confirmation view.
func (handler *Handler) handleAddToNotebook(ctx context.Context, session *Session, event InteractionEvent, runID string) error {
	if handler.syncSchemaID == "" || handler.syncFolderID == "" {
		return apperr.Configurationf("Notebook sync is not configured: set notebook_sync.schema_id and notebook_sync.folder_id.")
	}

	workspaceID, err := handler.resolveWorkspace(ctx)
	if err != nil {
		return err
	}
	detail, err := handler.fetchRun(ctx, runID, workspaceID)
	if err != nil {
		return err
	}

	record, err := handler.notebook.CreateRecord(ctx, benchling.RecordCreate{
		Name:     detail.RunName,
		SchemaID: handler.syncSchemaID,
		FolderID: handler.syncFolderID,
		Fields: map[string]any{
			"workflow_id": detail.ID,
			"run_name":    detail.RunName,
			"status":      detail.Status,
			"project":     detail.ProjectName,
			"start_time":  formatTime(detail.StartTime),
			"owner":       detail.OwnerName,
			"labels":      formatLabels(detail.Labels),
		},
	})
	if err != nil {
		return err
	}

	err = handler.notebook.UpdateCanvas(ctx, event.CanvasID, benchling.CanvasUpdate{
		Blocks:  syncConfirmationBlocks(detail.RunName, record),
		Enabled: benchling.Bool(true),
	})
	if err != nil {
		return err
	}
	session.Close(ctx, benchling.SessionSucceeded, benchling.MessageSuccess,
		fmt.Sprintf("Added run %s to the notebook as record %s.", detail.RunName, record.ID))
	return nil
}
