// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package seqera

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// listAttributes restricts list responses to the summary fields plus
// labels — the two attribute sets the list renderer consumes.
const listAttributes = "minimal,labels"

// defaultListLimit is the page size used when ListOptions.Limit is
// zero. The registry returns runs newest-first.
const defaultListLimit = 25

// ListOptions controls filtering and pagination for ListRuns.
type ListOptions struct {
	// WorkspaceID scopes the listing to one workspace. Zero means
	// unscoped (the token's personal context).
	WorkspaceID int64

	// Search is the percent-encoded search text. Callers are
	// responsible for encoding (see the interaction package's
	// sanitizer); the value is placed in the query string verbatim.
	Search string

	// Offset and Limit page through results. Limit defaults to
	// defaultListLimit.
	Offset int
	Limit  int
}

func (options ListOptions) queryParams() string {
	limit := options.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	query := "attributes=" + listAttributes + "&"
	if options.WorkspaceID != 0 {
		query += "workspaceId=" + strconv.FormatInt(options.WorkspaceID, 10) + "&"
	}
	if options.Search != "" {
		query += "search=" + options.Search + "&"
	}
	query += fmt.Sprintf("offset=%d&max=%d", options.Offset, limit)
	return query
}

// ListRuns lists pipeline runs, newest first as ordered by the
// registry.
func (client *Client) ListRuns(ctx context.Context, options ListOptions) ([]RunSummary, error) {
	var response wireListResponse
	path := "/workflow?" + options.queryParams()
	if err := client.get(ctx, path, &response); err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	runs := make([]RunSummary, len(response.Workflows))
	for i, item := range response.Workflows {
		runs[i] = summaryFromWire(item.Workflow, item.Labels)
	}
	return runs, nil
}

// GetRun fetches detail for a single run, plus a best-effort fetch of
// its reports sub-resource: a reports failure yields an empty report
// list and a log entry, never an error. Pass workspaceID 0 for an
// unscoped fetch.
func (client *Client) GetRun(ctx context.Context, runID string, workspaceID int64) (*RunDetail, error) {
	path := "/workflow/" + runID
	if workspaceID != 0 {
		path += "?workspaceId=" + strconv.FormatInt(workspaceID, 10)
	}

	var response wireDetailResponse
	if err := client.get(ctx, path, &response); err != nil {
		return nil, fmt.Errorf("fetching run %s: %w", runID, err)
	}

	detail := detailFromWire(response)

	reports, err := client.fetchReports(ctx, runID, workspaceID)
	if err != nil {
		client.logger.Warn("reports fetch failed, continuing without reports",
			"run_id", runID,
			"error", err,
		)
	} else {
		detail.Reports = reports
	}

	return detail, nil
}

// fetchReports retrieves the report references for a run.
func (client *Client) fetchReports(ctx context.Context, runID string, workspaceID int64) ([]ReportRef, error) {
	path := "/workflow/" + runID + "/reports"
	if workspaceID != 0 {
		path += "?workspaceId=" + strconv.FormatInt(workspaceID, 10)
	}

	var response wireReportsResponse
	if err := client.get(ctx, path, &response); err != nil {
		return nil, err
	}

	reports := make([]ReportRef, len(response.Reports))
	for i, report := range response.Reports {
		reports[i] = reportFromWire(report)
	}
	return reports, nil
}

// DownloadReport retrieves the raw bytes of one report via the
// content-redirect endpoint. The workspace id is supplied by the
// caller — resolved once per interaction, never re-resolved here.
func (client *Client) DownloadReport(ctx context.Context, runID, reportPath string, workspaceID int64) ([]byte, error) {
	path := fmt.Sprintf("/content/redirect/reports/wsp/%d/%s/%s",
		workspaceID, runID, strings.TrimPrefix(reportPath, "/"))

	data, err := client.download(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("downloading report %s for run %s: %w", reportPath, runID, err)
	}
	return data, nil
}
