// Package report renders classification results for the operator: pretty
// text when stdout is a terminal, plain text otherwise, JSON on request.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/muntashirakon/logtriage/internal/classify"
)

// Summary aggregates a triage run.
type Summary struct {
	LinesScanned int `json:"lines_scanned"`
	// Counts maps category to number of issues found.
	Counts map[classify.Category]int `json:"counts"`
	Total  int                       `json:"total"`
}

// Summarize counts issues per category.
func Summarize(issues []classify.Issue, linesScanned int) Summary {
	s := Summary{
		LinesScanned: linesScanned,
		Counts:       make(map[classify.Category]int),
		Total:        len(issues),
	}
	for _, issue := range issues {
		s.Counts[issue.Category]++
	}
	return s
}

// IsTerminal reports whether stdout is an interactive terminal, gating the
// pretty renderer.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Writer renders issues to an output stream.
type Writer struct {
	Out io.Writer

	// Pretty enables icons and section framing; set from IsTerminal()
	// unless the caller forces plain output.
	Pretty bool
}

// WriteIssues renders each issue followed by a summary block.
func (w *Writer) WriteIssues(issues []classify.Issue, summary Summary) error {
	for _, issue := range issues {
		if err := w.WriteIssue(issue); err != nil {
			return err
		}
	}
	return w.WriteSummary(summary)
}

// WriteIssue renders a single issue. Used directly by live watch mode.
func (w *Writer) WriteIssue(issue classify.Issue) error {
	if w.Pretty {
		_, err := fmt.Fprintf(w.Out, "%s  [%s] %s\n      %s\n",
			categoryIcon(issue.Category), issue.Category, issue.Summary, issue.SourceLine)
		return err
	}
	_, err := fmt.Fprintf(w.Out, "[%s] %s\n  %s\n", issue.Category, issue.Summary, issue.SourceLine)
	return err
}

// WriteSummary renders the per-category counts.
func (w *Writer) WriteSummary(s Summary) error {
	var sb strings.Builder

	if w.Pretty {
		sb.WriteString("───────────────────────────────────────────\n")
	}
	fmt.Fprintf(&sb, "Scanned %d lines, %d issues\n", s.LinesScanned, s.Total)
	for _, cat := range []classify.Category{classify.PermissionDenied, classify.AppOpBlocked, classify.ComponentBlocked} {
		if n := s.Counts[cat]; n > 0 {
			fmt.Fprintf(&sb, "  %-18s %d\n", cat, n)
		}
	}
	if s.Total == 0 {
		sb.WriteString("No known failure patterns detected.\n")
	}

	_, err := io.WriteString(w.Out, sb.String())
	return err
}

// WriteJSON renders the full result as a single JSON document.
func WriteJSON(out io.Writer, issues []classify.Issue, summary Summary) error {
	type jsonIssue struct {
		Category   string `json:"category"`
		Summary    string `json:"summary"`
		SourceLine string `json:"source_line"`
		Detail     string `json:"detail"`
	}
	doc := struct {
		Issues  []jsonIssue `json:"issues"`
		Summary Summary     `json:"summary"`
	}{
		Issues:  make([]jsonIssue, 0, len(issues)),
		Summary: summary,
	}
	for _, issue := range issues {
		doc.Issues = append(doc.Issues, jsonIssue{
			Category:   string(issue.Category),
			Summary:    issue.Summary,
			SourceLine: issue.SourceLine,
			Detail:     issue.Detail,
		})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func categoryIcon(c classify.Category) string {
	switch c {
	case classify.PermissionDenied:
		return "\xf0\x9f\x9b\x91" // stop sign
	case classify.AppOpBlocked:
		return "\xe2\x9a\xa0\xef\xb8\x8f" // warning
	case classify.ComponentBlocked:
		return "\xf0\x9f\x94\x92" // lock
	default:
		return "\xe2\x9d\x93" // question mark
	}
}
