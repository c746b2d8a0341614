// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package seqera

import (
	"path"
	"time"
)

// Label is a name/value tag attached to a run. Order is preserved as
// returned by the registry.
type Label struct {
	Name  string
	Value string
}

// RunSummary is the list-view projection of a pipeline run.
type RunSummary struct {
	ID          string
	RunName     string
	ProjectName string
	Status      string
	StartTime   *time.Time
	OwnerName   string
	Labels      []Label
}

// RunDetail extends RunSummary with completion data, launch
// parameters, and report references.
type RunDetail struct {
	RunSummary
	CompleteTime   *time.Time
	DurationMillis int64
	Parameters     map[string]any
	Reports        []ReportRef
}

// ReportRef describes one report published by a run. Path is the
// registry-side path used for content download; FileName is the
// basename used when persisting the report as an artifact.
type ReportRef struct {
	Display      string
	MimeType     string
	Path         string
	FileName     string
	ExternalPath string
	SizeBytes    int64
}

// WorkspaceRef is a resolved workspace scope. Resolution yields both
// ids or neither, never one.
type WorkspaceRef struct {
	OrgID       int64
	WorkspaceID int64
}

// --- Wire types. Decoded here, never passed to callers. ---

type wireWorkflow struct {
	ID          string         `json:"id"`
	RunName     string         `json:"runName"`
	ProjectName string         `json:"projectName"`
	Status      string         `json:"status"`
	Start       *time.Time     `json:"start"`
	Complete    *time.Time     `json:"complete"`
	Duration    int64          `json:"duration"`
	UserName    string         `json:"userName"`
	Owner       wireOwner      `json:"owner"`
	Params      map[string]any `json:"params"`
}

type wireOwner struct {
	UserName string `json:"userName"`
}

// ownerName prefers the flat userName field; older registry versions
// only populate the nested owner object.
func (w wireWorkflow) ownerName() string {
	if w.UserName != "" {
		return w.UserName
	}
	return w.Owner.UserName
}

type wireLabel struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type wireListItem struct {
	Workflow wireWorkflow `json:"workflow"`
	Labels   []wireLabel  `json:"labels"`
}

type wireListResponse struct {
	Workflows []wireListItem `json:"workflows"`
}

type wireDetailResponse struct {
	Workflow wireWorkflow `json:"workflow"`
	Labels   []wireLabel  `json:"labels"`
}

type wireReport struct {
	Display      string `json:"display"`
	MimeType     string `json:"mimeType"`
	Path         string `json:"path"`
	FileName     string `json:"fileName"`
	ExternalPath string `json:"externalPath"`
	Size         int64  `json:"size"`
}

type wireReportsResponse struct {
	Reports []wireReport `json:"reports"`
}

func labelsFromWire(wire []wireLabel) []Label {
	if len(wire) == 0 {
		return nil
	}
	labels := make([]Label, len(wire))
	for i, label := range wire {
		labels[i] = Label{Name: label.Name, Value: label.Value}
	}
	return labels
}

func summaryFromWire(workflow wireWorkflow, labels []wireLabel) RunSummary {
	return RunSummary{
		ID:          workflow.ID,
		RunName:     workflow.RunName,
		ProjectName: workflow.ProjectName,
		Status:      workflow.Status,
		StartTime:   workflow.Start,
		OwnerName:   workflow.ownerName(),
		Labels:      labelsFromWire(labels),
	}
}

func detailFromWire(response wireDetailResponse) *RunDetail {
	return &RunDetail{
		RunSummary:     summaryFromWire(response.Workflow, response.Labels),
		CompleteTime:   response.Workflow.Complete,
		DurationMillis: response.Workflow.Duration,
		Parameters:     response.Workflow.Params,
	}
}

func reportFromWire(wire wireReport) ReportRef {
	fileName := wire.FileName
	if fileName == "" {
		fileName = path.Base(wire.Path)
	}
	return ReportRef{
		Display:      wire.Display,
		MimeType:     wire.MimeType,
		Path:         wire.Path,
		FileName:     fileName,
		ExternalPath: wire.ExternalPath,
		SizeBytes:    wire.Size,
	}
}
