// Copyright 2026 The Seqcanvas Authors
// SPDX-License-Identifier: Apache-2.0

package interaction

import (
	"fmt"
	"strings"
	"time"

	"github.com/seqcanvas/seqcanvas/lib/benchling"
	"github.com/seqcanvas/seqcanvas/lib/seqera"
)

// statusGlyphs maps lowercased run statuses to their display glyph.
// Unknown statuses fall back to the neutral glyph.
var statusGlyphs = map[string]string{
	"pending":   "🕐",
	"submitted": "⏳",
	"running":   "⚙️",
	"cached":    "🔄",
	"succeeded": "✅",
	"failed":    "❌",
	"aborted":   "⛔",
	"cancelled": "🚫",
}

func statusGlyph(status string) string {
	if glyph, ok := statusGlyphs[strings.ToLower(status)]; ok {
		return glyph
	}
	return "⚪"
}

func statusDisplay(status string) string {
	return statusGlyph(status) + " " + status
}

// formatTime renders a registry timestamp for display. Nil means the
// registry has not recorded the instant yet.
func formatTime(t *time.Time) string {
	if t == nil {
		return "unknown"
	}
	return t.UTC().Format("2006-01-02 15:04 UTC")
}

// formatDuration renders a millisecond duration as coarse wall time.
func formatDuration(millis int64) string {
	if millis <= 0 {
		return "n/a"
	}
	d := time.Duration(millis) * time.Millisecond
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// formatLabels joins labels as "name:value" pairs, skipping the
// registry-reserved owner and workspace labels, which duplicate fields
// already displayed. Empty result renders as "none".
func formatLabels(labels []seqera.Label) string {
	var pairs []string
	for _, label := range labels {
		if label.Name == "owner" || label.Name == "workspace" {
			continue
		}
		pairs = append(pairs, label.Name+":"+label.Value)
	}
	if len(pairs) == 0 {
		return "none"
	}
	return strings.Join(pairs, ", ")
}

// searchInputBlocks is the landing view: a header, the search text
// input, and the search button.
func searchInputBlocks() []benchling.Block {
	return []benchling.Block{
		benchling.Markdown("search_header", "## Search Pipeline Runs\nEnter a pipeline or run name to search the registry."),
		benchling.TextInput(searchTextInputID, "e.g. rnaseq"),
		benchling.Button(searchButtonID, "Search"),
	}
}

// runListBlocks is the results view: a back button, a header, then an
// info block, a detail button, and a divider per run.
func runListBlocks(runs []seqera.RunSummary) []benchling.Block {
	blocks := make([]benchling.Block, 0, 2+3*len(runs))
	blocks = append(blocks,
		benchling.Button(cancelToLandingButtonID, "Back to Search"),
		benchling.Markdown("workflow_results_header", "## Pipeline Runs"),
	)
	for i, run := range runs {
		blocks = append(blocks,
			benchling.Markdown(fmt.Sprintf("run_info_%d", i), runInfoMarkdown(run)),
			benchling.Button(viewRunButtonPrefix+"_"+run.ID, "View Details"),
			benchling.Markdown(fmt.Sprintf("run_divider_%d", i), "\n---\n"),
		)
	}
	return blocks
}

func runInfoMarkdown(run seqera.RunSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Run name: %s**\n\n", run.RunName)
	fmt.Fprintf(&b, "_Pipeline: %s_\n\n", run.ProjectName)
	fmt.Fprintf(&b, "Launched by: %s\n\n", run.OwnerName)
	fmt.Fprintf(&b, "**Status: %s** (started: %s)", statusDisplay(run.Status), formatTime(run.StartTime))
	if len(run.Labels) > 0 {
		fmt.Fprintf(&b, "\n\nLabels: %s", formatLabels(run.Labels))
	}
	return b.String()
}

// artifactLink is one downloadable artifact surfaced on the detail
// view.
type artifactLink struct {
	Title string
	URL   string
}

// runDetailBlocks is the detail view: the run's fields, an artifact
// link list when any artifact materialized, and the add/back buttons.
func runDetailBlocks(detail *seqera.RunDetail, links []artifactLink) []benchling.Block {
	var b strings.Builder
	b.WriteString("## Pipeline Run Details\n\n")
	fmt.Fprintf(&b, "**Run Name:** %s\n\n", detail.RunName)
	fmt.Fprintf(&b, "**Workflow ID:** %s\n\n", detail.ID)
	fmt.Fprintf(&b, "**Status:** %s\n\n", statusDisplay(detail.Status))
	fmt.Fprintf(&b, "**Pipeline:** %s\n\n", detail.ProjectName)
	fmt.Fprintf(&b, "**Started:** %s\n\n", formatTime(detail.StartTime))
	fmt.Fprintf(&b, "**Completed:** %s\n\n", formatTime(detail.CompleteTime))
	fmt.Fprintf(&b, "**Duration:** %s\n\n", formatDuration(detail.DurationMillis))
	fmt.Fprintf(&b, "**Launched by:** %s\n\n", detail.OwnerName)
	fmt.Fprintf(&b, "**Labels:** %s", formatLabels(detail.Labels))

	blocks := []benchling.Block{
		benchling.Markdown("run_detail", b.String()),
	}
	if len(links) > 0 {
		var a strings.Builder
		a.WriteString("**Artifacts**\n")
		for _, link := range links {
			fmt.Fprintf(&a, "- [%s](%s)\n", link.Title, link.URL)
		}
		blocks = append(blocks, benchling.Markdown("run_artifacts", a.String()))
	}
	blocks = append(blocks,
		benchling.Button(addToNotebookButtonPrefix+"_"+detail.ID, "Add to Notebook"),
		benchling.Button(cancelDetailButtonID, "Back to Results"),
	)
	return blocks
}

// syncConfirmationBlocks confirms a notebook record was created.
func syncConfirmationBlocks(runName string, record *benchling.Record) []benchling.Block {
	text := fmt.Sprintf("## Run Saved\n\n**%s** was added to the notebook as record **%s** (`%s`).", runName, record.Name, record.ID)
	return []benchling.Block{
		benchling.Markdown("sync_confirmation", text),
		benchling.Button(cancelToLandingButtonID, "Search Again"),
	}
}
