// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package interaction

import "strings"

// Fixed element ids rendered onto canvases. Dynamic ids embed a run id
// after the prefix and one underscore; the remainder is passed through
// verbatim, underscores included.
const (
	searchButtonID            = "get_workflows_button"
	viewRunButtonPrefix       = "get_pipeline_run_button"
	addToNotebookButtonPrefix = "add_to_notebook_button"
	cancelDetailButtonID      = "cancel_detail_button"
	cancelToLandingButtonID   = "cancel_button"
	workflowDropdownID        = "workflow_dropdown"

	// searchTextInputID is the text input read from event field
	// values; searchTextDataKey is the canvas data key that persists
	// the last search across navigation. They share a name because
	// they carry the same value at different times.
	searchTextInputID = "search_text"
	searchTextDataKey = "search_text"
)

// InteractionEvent is one inbound canvas interaction. Immutable;
// created per inbound webhook call.
type InteractionEvent struct {
	CanvasID      string
	FeatureID     string
	TriggeringID  string
	FieldValues   map[string]string
}

// ActionKind tags the decoded action.
type ActionKind int

const (
	ActionUnrecognized ActionKind = iota
	ActionSearch
	ActionViewRunDetail
	ActionAddToNotebook
	ActionCancelDetail
	ActionCancelToLanding
)

func (kind ActionKind) String() string {
	switch kind {
	case ActionSearch:
		return "search"
	case ActionViewRunDetail:
		return "view_run_detail"
	case ActionAddToNotebook:
		return "add_to_notebook"
	case ActionCancelDetail:
		return "cancel_detail"
	case ActionCancelToLanding:
		return "cancel_to_landing"
	default:
		return "unrecognized"
	}
}

// Action is a decoded canvas interaction. RunID is set only for the
// run-scoped kinds.
type Action struct {
	Kind  ActionKind
	RunID string
}

// Decode maps an event to exactly one Action. Rule order: exact match
// on fixed ids, then prefix match for the dynamic-id families, then
// the dropdown field trigger, else Unrecognized. Total and
// deterministic; no side effects.
func Decode(event InteractionEvent) Action {
	switch event.TriggeringID {
	case searchButtonID:
		return Action{Kind: ActionSearch}
	case cancelDetailButtonID:
		return Action{Kind: ActionCancelDetail}
	case cancelToLandingButtonID:
		return Action{Kind: ActionCancelToLanding}
	}

	if runID, ok := strings.CutPrefix(event.TriggeringID, viewRunButtonPrefix+"_"); ok && runID != "" {
		return Action{Kind: ActionViewRunDetail, RunID: runID}
	}
	if runID, ok := strings.CutPrefix(event.TriggeringID, addToNotebookButtonPrefix+"_"); ok && runID != "" {
		return Action{Kind: ActionAddToNotebook, RunID: runID}
	}

	// Dropdown selections trigger with the field id; the selected run
	// id travels in the field values.
	if event.TriggeringID == workflowDropdownID {
		if runID := event.FieldValues[workflowDropdownID]; runID != "" {
			return Action{Kind: ActionViewRunDetail, RunID: runID}
		}
	}

	return Action{Kind: ActionUnrecognized}
}
