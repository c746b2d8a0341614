// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package interaction

import (
	"context"
	"testing"

	"github.com/seqcanvas/seqcanvas/lib/benchling"
	"github.com/seqcanvas/seqcanvas/lib/seqera"
)

func TestCancelToLandingDiscardsSearchText(t *testing.T) {
	notebook := &fakeNotebook{}
	handler := newTestHandler(&fakeRegistry{}, notebook)

	err := handler.HandleInteraction(context.Background(), buttonEvent("cancel_button"))
	if err != nil {
		t.Fatalf("HandleInteraction() error: %v", err)
	}

	update := lastUpdate(t, notebook)
	if len(update.Blocks) != 3 || update.Blocks[1].Type != benchling.BlockTypeTextInput {
		t.Errorf("blocks = %+v, want landing view", update.Blocks)
	}
	value, present := update.Data["search_text"]
	if !present || value != "" {
		t.Errorf("data = %+v, want search_text cleared", update.Data)
	}

	close := lastClose(t, notebook)
	if close.Status != benchling.SessionSucceeded || close.Messages[0].Style != benchling.MessageInfo {
		t.Errorf("close = %+v", close)
	}
}

func TestCancelDetailRerunsPersistedSearch(t *testing.T) {
	registry := &fakeRegistry{
		workspace: &seqera.WorkspaceRef{OrgID: 10, WorkspaceID: 1234},
		runs: []seqera.RunSummary{
			{ID: "run-1", RunName: "hungry_pasteur", Status: "SUCCEEDED"},
		},
	}
	notebook := &fakeNotebook{
		canvas: &benchling.Canvas{
			ID:   "cnvs_1",
			Data: map[string]string{"search_text": "nf core"},
		},
	}
	handler := newTestHandler(registry, notebook)

	err := handler.HandleInteraction(context.Background(), buttonEvent("cancel_detail_button"))
	if err != nil {
		t.Fatalf("HandleInteraction() error: %v", err)
	}

	if len(registry.listOpts) != 1 || registry.listOpts[0].Search != "nf+core" {
		t.Errorf("list options = %+v, want re-encoded persisted search", registry.listOpts)
	}

	update := lastUpdate(t, notebook)
	if update.Blocks[0].ID != "cancel_button" || len(update.Blocks) != 5 {
		t.Errorf("blocks = %+v, want results view", update.Blocks)
	}
	if update.Data["search_text"] != "nf core" {
		t.Errorf("data = %+v, want raw text persisted again", update.Data)
	}
}

func TestCancelDetailWithoutPersistedSearchLands(t *testing.T) {
	registry := &fakeRegistry{}
	notebook := &fakeNotebook{}
	handler := newTestHandler(registry, notebook)

	err := handler.HandleInteraction(context.Background(), buttonEvent("cancel_detail_button"))
	if err != nil {
		t.Fatalf("HandleInteraction() error: %v", err)
	}

	if len(registry.listOpts) != 0 {
		t.Error("registry queried with no persisted search")
	}
	update := lastUpdate(t, notebook)
	if len(update.Blocks) != 3 || update.Blocks[1].Type != benchling.BlockTypeTextInput {
		t.Errorf("blocks = %+v, want landing view", update.Blocks)
	}
}

func TestCancelDetailWithTamperedSearchLands(t *testing.T) {
	registry := &fakeRegistry{}
	notebook := &fakeNotebook{
		canvas: &benchling.Canvas{
			ID:   "cnvs_1",
			Data: map[string]string{"search_text": "x; DROP TABLE runs"},
		},
	}
	handler := newTestHandler(registry, notebook)

	err := handler.HandleInteraction(context.Background(), buttonEvent("cancel_detail_button"))
	if err != nil {
		t.Fatalf("HandleInteraction() error: %v", err)
	}

	if len(registry.listOpts) != 0 {
		t.Error("tampered persisted search reached the registry")
	}
	update := lastUpdate(t, notebook)
	if len(update.Blocks) != 3 || update.Blocks[1].Type != benchling.BlockTypeTextInput {
		t.Errorf("blocks = %+v, want landing view", update.Blocks)
	}
	if got := lastClose(t, notebook); got.Status != benchling.SessionSucceeded {
		t.Errorf("status = %q", got.Status)
	}
}
