// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package interaction

import (
	"context"
	"log/slog"

	"github.com/seqcanvas/seqcanvas/lib/benchling"
	"github.com/seqcanvas/seqcanvas/lib/seqera"
)

// Registry is the slice of the run registry the handlers consume.
type Registry interface {
	ResolveWorkspace(ctx context.Context, orgName, workspaceName string) (*seqera.WorkspaceRef, error)
	ListRuns(ctx context.Context, options seqera.ListOptions) ([]seqera.RunSummary, error)
	GetRun(ctx context.Context, runID string, workspaceID int64) (*seqera.RunDetail, error)
	DownloadReport(ctx context.Context, runID, reportPath string, workspaceID int64) ([]byte, error)
}

// Notebook is the slice of the notebook host the handlers consume.
type Notebook interface {
	GetCanvas(ctx context.Context, canvasID string) (*benchling.Canvas, error)
	UpdateCanvas(ctx context.Context, canvasID string, update benchling.CanvasUpdate) error
	CreateSession(ctx context.Context, name string, timeoutSeconds int) (*benchling.Session, error)
	CloseSession(ctx context.Context, sessionID, status string, messages []benchling.SessionMessage) error
	CreateBlob(ctx context.Context, name, mimeType string, data []byte) (*benchling.Blob, error)
	BlobDownloadURL(ctx context.Context, blobID string) (string, error)
	CreateRecord(ctx context.Context, create benchling.RecordCreate) (*benchling.Record, error)
}

// Session display names, also used as the host session name.
const (
	opSearch       = "Search pipeline runs"
	opRunDetail    = "Load run details"
	opAddNotebook  = "Add run to notebook"
	opCancelDetail = "Back to results"
	opCancelSearch = "Return to search"
)

// Config carries the handler's dependencies and scope.
type Config struct {
	Registry Registry
	Notebook Notebook

	// Organization and Workspace name the registry scope every run
	// query resolves against.
	Organization string
	Workspace    string

	// SyncSchemaID and SyncFolderID place notebook records created by
	// add-to-notebook. Empty is valid; the operation then reports a
	// configuration error when invoked.
	SyncSchemaID string
	SyncFolderID string

	Logger *slog.Logger
}

// Handler executes decoded canvas actions.
type Handler struct {
	registry     Registry
	notebook     Notebook
	organization string
	workspace    string
	syncSchemaID string
	syncFolderID string
	logger       *slog.Logger
}

// NewHandler constructs a Handler. Registry and Notebook are required.
func NewHandler(config Config) *Handler {
	if config.Registry == nil {
		panic("interaction.NewHandler: Registry is required")
	}
	if config.Notebook == nil {
		panic("interaction.NewHandler: Notebook is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		registry:     config.Registry,
		notebook:     config.Notebook,
		organization: config.Organization,
		workspace:    config.Workspace,
		syncSchemaID: config.SyncSchemaID,
		syncFolderID: config.SyncFolderID,
		logger:       logger,
	}
}

// HandleInteraction decodes and executes one canvas interaction.
// Handler failures are reported to the user through the session and
// consumed; the returned error covers only failures to establish the
// session itself.
func (handler *Handler) HandleInteraction(ctx context.Context, event InteractionEvent) error {
	action := Decode(event)
	handler.logger.Info("canvas interaction",
		"action", action.Kind,
		"canvas_id", event.CanvasID,
		"triggering_id", event.TriggeringID)

	switch action.Kind {
	case ActionSearch:
		return handler.withSession(ctx, opSearch, 60, event.CanvasID, func(ctx context.Context, session *Session) error {
			return handler.handleSearch(ctx, session, event)
		})
	case ActionViewRunDetail:
		return handler.withSession(ctx, opRunDetail, 120, event.CanvasID, func(ctx context.Context, session *Session) error {
			return handler.handleRunDetail(ctx, session, event, action.RunID)
		})
	case ActionAddToNotebook:
		return handler.withSession(ctx, opAddNotebook, 60, event.CanvasID, func(ctx context.Context, session *Session) error {
			return handler.handleAddToNotebook(ctx, session, event, action.RunID)
		})
	case ActionCancelDetail:
		return handler.withSession(ctx, opCancelDetail, 30, event.CanvasID, func(ctx context.Context, session *Session) error {
			return handler.handleCancelDetail(ctx, session, event)
		})
	case ActionCancelToLanding:
		return handler.withSession(ctx, opCancelSearch, 30, event.CanvasID, func(ctx context.Context, session *Session) error {
			return handler.handleCancelToLanding(ctx, session, event)
		})
	default:
		// Unknown elements are ignored, not failed: the canvas may be
		// newer than this service.
		handler.logger.Info("ignoring unrecognized canvas element",
			"canvas_id", event.CanvasID,
			"triggering_id", event.TriggeringID)
		return nil
	}
}

// HandleCanvasInitialize renders the search landing view onto a fresh
// canvas.
func (handler *Handler) HandleCanvasInitialize(ctx context.Context, canvasID string) error {
	return handler.notebook.UpdateCanvas(ctx, canvasID, benchling.CanvasUpdate{
		Blocks:  searchInputBlocks(),
		Enabled: benchling.Bool(true),
	})
}

// resolveWorkspace maps the configured organization and workspace
// names to a numeric workspace id. A missing workspace is not an
// error: queries then run unscoped and report content is unavailable.
func (handler *Handler) resolveWorkspace(ctx context.Context) (int64, error) {
	ref, err := handler.registry.ResolveWorkspace(ctx, handler.organization, handler.workspace)
	if err != nil {
		return 0, err
	}
	if ref == nil {
		handler.logger.Warn("workspace not found, queries run unscoped",
			"organization", handler.organization,
			"workspace", handler.workspace)
		return 0, nil
	}
	return ref.WorkspaceID, nil
}
