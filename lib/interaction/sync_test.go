// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package interaction

import (
	"context"
	"strings"
	"testing"

	"github.com/seqcanvas/seqcanvas/lib/benchling"
	"github.com/seqcanvas/seqcanvas/lib/seqera"
)

func TestAddToNotebookCreatesRecord(t *testing.T) {
	registry := &fakeRegistry{
		workspace: &seqera.WorkspaceRef{OrgID: 10, WorkspaceID: 1234},
		detail:    detailFixture(),
	}
	notebook := &fakeNotebook{}
	handler := newTestHandler(registry, notebook)

	err := handler.HandleInteraction(context.Background(), buttonEvent("add_to_notebook_button_run-1"))
	if err != nil {
		t.Fatalf("HandleInteraction() error: %v", err)
	}

	if len(notebook.records) != 1 {
		t.Fatalf("records = %d, want 1", len(notebook.records))
	}
	record := notebook.records[0]
	if record.Name != "hungry_pasteur" {
		t.Errorf("record name = %q", record.Name)
	}
	if record.SchemaID != "ts_pipeline_run" || record.FolderID != "lib_runs" {
		t.Errorf("record placement = %q/%q", record.SchemaID, record.FolderID)
	}
	if record.Fields["workflow_id"] != "run-1" || record.Fields["status"] != "SUCCEEDED" {
		t.Errorf("fields = %+v", record.Fields)
	}
	if record.Fields["start_time"] != "2026-02-11 09:14 UTC" {
		t.Errorf("start_time = %v", record.Fields["start_time"])
	}
	if record.Fields["labels"] != "project:tumor-atlas" {
		t.Errorf("labels = %v", record.Fields["labels"])
	}

	update := lastUpdate(t, notebook)
	if !strings.Contains(update.Blocks[0].Value, "hungry_pasteur") {
		t.Errorf("confirmation = %q", update.Blocks[0].Value)
	}
	if update.Blocks[1].ID != "cancel_button" {
		t.Errorf("confirmation button = %+v", update.Blocks[1])
	}

	close := lastClose(t, notebook)
	if close.Status != benchling.SessionSucceeded {
		t.Errorf("status = %q", close.Status)
	}
	if !strings.Contains(close.Messages[0].Content, "ent_1") {
		t.Errorf("message = %q, want it to name the record", close.Messages[0].Content)
	}
}

func TestAddToNotebookUnconfigured(t *testing.T) {
	registry := &fakeRegistry{detail: detailFixture()}
	notebook := &fakeNotebook{}
	handler := NewHandler(Config{
		Registry:     registry,
		Notebook:     notebook,
		Organization: "acme",
		Workspace:    "genomics",
		Logger:       discardLogger(),
	})

	err := handler.HandleInteraction(context.Background(), buttonEvent("add_to_notebook_button_run-1"))
	if err != nil {
		t.Fatalf("HandleInteraction() error: %v", err)
	}

	if len(notebook.records) != 0 {
		t.Error("record created despite missing sync configuration")
	}
	if registry.resolveCalls != 0 {
		t.Error("registry consulted before configuration check")
	}
	close := lastClose(t, notebook)
	if close.Status != benchling.SessionFailed {
		t.Errorf("status = %q, want FAILED", close.Status)
	}
	if !strings.Contains(close.Messages[0].Content, "notebook_sync") {
		t.Errorf("message = %q, want actionable configuration text", close.Messages[0].Content)
	}
}
