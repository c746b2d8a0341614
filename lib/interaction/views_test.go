// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package interaction

import (
	"testing"

	"github.com/seqcanvas/seqcanvas/lib/seqera"
)

func TestStatusGlyph(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"SUCCEEDED", "✅"},
		{"succeeded", "✅"},
		{"FAILED", "❌"},
		{"RUNNING", "⚙️"},
		{"PENDING", "🕐"},
		{"SUBMITTED", "⏳"},
		{"CACHED", "🔄"},
		{"ABORTED", "⛔"},
		{"CANCELLED", "🚫"},
		{"UNKNOWN_FUTURE_STATE", "⚪"},
		{"", "⚪"},
	}
	for _, test := range tests {
		if got := statusGlyph(test.status); got != test.want {
			t.Errorf("statusGlyph(%q) = %q, want %q", test.status, got, test.want)
		}
	}
}

func TestFormatLabels(t *testing.T) {
	tests := []struct {
		name   string
		labels []seqera.Label
		want   string
	}{
		{
			name: "reserved labels filtered",
			labels: []seqera.Label{
				{Name: "owner", Value: "alice"},
				{Name: "workspace", Value: "genomics"},
				{Name: "project", Value: "tumor-atlas"},
				{Name: "cohort", Value: "2026a"},
			},
			want: "project:tumor-atlas, cohort:2026a",
		},
		{
			name: "only reserved labels",
			labels: []seqera.Label{
				{Name: "owner", Value: "alice"},
			},
			want: "none",
		},
		{name: "no labels", want: "none"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := formatLabels(test.labels); got != test.want {
				t.Errorf("formatLabels() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		millis int64
		want   string
	}{
		{0, "n/a"},
		{-5, "n/a"},
		{12000, "12s"},
		{65000, "1m 5s"},
		{6522000, "1h 48m 42s"},
	}
	for _, test := range tests {
		if got := formatDuration(test.millis); got != test.want {
			t.Errorf("formatDuration(%d) = %q, want %q", test.millis, got, test.want)
		}
	}
}

func TestFormatTimeNil(t *testing.T) {
	if got := formatTime(nil); got != "unknown" {
		t.Errorf("formatTime(nil) = %q", got)
	}
}

func TestRunListBlocksShape(t *testing.T) {
	runs := []seqera.RunSummary{
		{ID: "a", RunName: "one", Status: "SUCCEEDED"},
		{ID: "b", RunName: "two", Status: "FAILED"},
	}
	blocks := runListBlocks(runs)
	if len(blocks) != 8 {
		t.Fatalf("blocks = %d, want 8", len(blocks))
	}
	wantIDs := []string{
		"cancel_button",
		"workflow_results_header",
		"run_info_0",
		"get_pipeline_run_button_a",
		"run_divider_0",
		"run_info_1",
		"get_pipeline_run_button_b",
		"run_divider_1",
	}
	for i, want := range wantIDs {
		if blocks[i].ID != want {
			t.Errorf("blocks[%d].ID = %q, want %q", i, blocks[i].ID, want)
		}
	}
}
