// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package interaction

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/seqcanvas/seqcanvas/lib/apperr"
	"github.com/seqcanvas/seqcanvas/lib/benchling"
	"github.com/seqcanvas/seqcanvas/lib/seqera"
)

// handleRunDetail renders the detail view for one run. Artifact
// materialization (parameter file, reports) is best-effort per
// artifact: a failed artifact is logged and omitted, never failing the
// view.
func (handler *Handler) handleRunDetail(ctx context.Context, session *Session, event InteractionEvent, runID string) error {
	workspaceID, err := handler.resolveWorkspace(ctx)
	if err != nil {
		return err
	}

	detail, err := handler.fetchRun(ctx, runID, workspaceID)
	if err != nil {
		return err
	}

	var links []artifactLink
	if len(detail.Parameters) > 0 {
		link, err := handler.materializeParameters(ctx, detail)
		if err != nil {
			handler.logger.Warn("omitting launch parameter artifact",
				"run_id", runID,
				"error", err)
		} else {
			links = append(links, link)
		}
	}
	links = append(links, handler.materializeReports(ctx, detail, workspaceID)...)

	// Canvas data is left untouched here so the persisted search text
	// survives the round trip to the detail view.
	err = handler.notebook.UpdateCanvas(ctx, event.CanvasID, benchling.CanvasUpdate{
		Blocks:  runDetailBlocks(detail, links),
		Enabled: benchling.Bool(true),
	})
	if err != nil {
		return err
	}
	session.Close(ctx, benchling.SessionSucceeded, benchling.MessageSuccess,
		fmt.Sprintf("Loaded details for run %s.", detail.RunName))
	return nil
}

// fetchRun loads run detail, translating the registry's 404 into a
// user-addressable not-found error.
func (handler *Handler) fetchRun(ctx context.Context, runID string, workspaceID int64) (*seqera.RunDetail, error) {
	detail, err := handler.registry.GetRun(ctx, runID, workspaceID)
	if err != nil {
		if apperr.HTTPStatus(err) == http.StatusNotFound {
			return nil, apperr.NotFoundf("Could not find run %q in the registry.", runID)
		}
		return nil, err
	}
	return detail, nil
}

// materializeParameters persists the run's launch parameters as a JSON
// artifact and returns its download link.
func (handler *Handler) materializeParameters(ctx context.Context, detail *seqera.RunDetail) (artifactLink, error) {
	data, err := json.MarshalIndent(detail.Parameters, "", "  ")
	if err != nil {
		return artifactLink{}, fmt.Errorf("encoding launch parameters: %w", err)
	}

	name := detail.ID + ".json"
	blob, err := handler.notebook.CreateBlob(ctx, name, "application/json", data)
	if err != nil {
		return artifactLink{}, err
	}
	downloadURL, err := handler.notebook.BlobDownloadURL(ctx, blob.ID)
	if err != nil {
		return artifactLink{}, err
	}
	return artifactLink{Title: "Launch parameters (" + name + ")", URL: downloadURL}, nil
}

// materializeReports downloads each published report and persists it
// as an artifact. Reports need a workspace scope; with none resolved
// they are skipped wholesale.
func (handler *Handler) materializeReports(ctx context.Context, detail *seqera.RunDetail, workspaceID int64) []artifactLink {
	if len(detail.Reports) == 0 {
		return nil
	}
	if workspaceID == 0 {
		handler.logger.Warn("skipping report artifacts: no workspace resolved",
			"run_id", detail.ID,
			"reports", len(detail.Reports))
		return nil
	}

	var links []artifactLink
	for _, report := range detail.Reports {
		data, err := handler.registry.DownloadReport(ctx, detail.ID, report.Path, workspaceID)
		if err != nil {
			handler.logger.Warn("omitting report artifact",
				"run_id", detail.ID,
				"report", report.Path,
				"error", err)
			continue
		}
		blob, err := handler.notebook.CreateBlob(ctx, report.FileName, report.MimeType, data)
		if err != nil {
			handler.logger.Warn("omitting report artifact",
				"run_id", detail.ID,
				"report", report.Path,
				"error", err)
			continue
		}
		downloadURL, err := handler.notebook.BlobDownloadURL(ctx, blob.ID)
		if err != nil {
			handler.logger.Warn("omitting report artifact",
				"run_id", detail.ID,
				"report", report.Path,
				"error", err)
			continue
		}
		title := report.Display
		if title == "" {
			title = report.FileName
		}
		links = append(links, artifactLink{Title: title, URL: downloadURL})
	}
	return links
}
