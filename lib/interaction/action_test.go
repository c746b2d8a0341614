// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package interaction

import "testing"

func TestDecode(t *testing.T) {
	tests := []struct {
		name         string
		triggeringID string
		fieldValues  map[string]string
		want         Action
	}{
		{
			name:         "search button",
			triggeringID: "get_workflows_button",
			want:         Action{Kind: ActionSearch},
		},
		{
			name:         "view detail carries run id",
			triggeringID: "get_pipeline_run_button_abc123",
			want:         Action{Kind: ActionViewRunDetail, RunID: "abc123"},
		},
		{
			name:         "run id with underscores passes through",
			triggeringID: "add_to_notebook_button_x_y",
			want:         Action{Kind: ActionAddToNotebook, RunID: "x_y"},
		},
		{
			name:         "cancel from detail",
			triggeringID: "cancel_detail_button",
			want:         Action{Kind: ActionCancelDetail},
		},
		{
			name:         "cancel to landing",
			triggeringID: "cancel_button",
			want:         Action{Kind: ActionCancelToLanding},
		},
		{
			name:         "dropdown selection reads field value",
			triggeringID: "workflow_dropdown",
			fieldValues:  map[string]string{"workflow_dropdown": "run-42"},
			want:         Action{Kind: ActionViewRunDetail, RunID: "run-42"},
		},
		{
			name:         "dropdown with no selection",
			triggeringID: "workflow_dropdown",
			want:         Action{Kind: ActionUnrecognized},
		},
		{
			name:         "prefix with empty run id",
			triggeringID: "get_pipeline_run_button_",
			want:         Action{Kind: ActionUnrecognized},
		},
		{
			name:         "unknown element",
			triggeringID: "mystery_button",
			want:         Action{Kind: ActionUnrecognized},
		},
		{
			name:         "empty triggering id",
			triggeringID: "",
			want:         Action{Kind: ActionUnrecognized},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Decode(InteractionEvent{
				TriggeringID: test.triggeringID,
				FieldValues:  test.fieldValues,
			})
			if got != test.want {
				t.Errorf("Decode(%q) = %+v, want %+v", test.triggeringID, got, test.want)
			}
		})
	}
}
