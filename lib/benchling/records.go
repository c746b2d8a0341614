// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package benchling

import (
	"context"
	"fmt"
)

// RecordCreate describes a schema record to create in the notebook.
type RecordCreate struct {
	// Name is the record's display name.
	Name string

	// SchemaID and FolderID place the record. Both required — the
	// caller validates before reaching the client.
	SchemaID string
	FolderID string

	// Fields maps schema field keys to values.
	Fields map[string]any
}

// Record references a created notebook record.
type Record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateRecord creates a schema record in the notebook host.
func (client *Client) CreateRecord(ctx context.Context, create RecordCreate) (*Record, error) {
	// The host's field payload wraps every value in {"value": ...}.
	fields := make(map[string]any, len(create.Fields))
	for key, value := range create.Fields {
		fields[key] = map[string]any{"value": value}
	}

	request := struct {
		Name     string         `json:"name"`
		SchemaID string         `json:"schemaId"`
		FolderID string         `json:"folderId"`
		Fields   map[string]any `json:"fields"`
	}{
		Name:     create.Name,
		SchemaID: create.SchemaID,
		FolderID: create.FolderID,
		Fields:   fields,
	}

	var record Record
	if err := client.post(ctx, "/custom-entities", request, &record); err != nil {
		return nil, fmt.Errorf("creating record %q: %w", create.Name, err)
	}
	return &record, nil
}
