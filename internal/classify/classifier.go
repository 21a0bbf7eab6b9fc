package classify

import (
	"strings"

	"golang.org/x/sync/errgroup"
)

// ClassifyLine evaluates a single log line against the rule table.
// The second return value is false when no rule matched; that is the only
// "failure" mode — classification never errors, whatever the input.
func ClassifyLine(line string) (Issue, bool) {
	if strings.TrimSpace(line) == "" {
		return Issue{}, false
	}
	for _, r := range rules {
		if r.matches(line) {
			return r.build(line), true
		}
	}
	return Issue{}, false
}

// ClassifyLines classifies each line in order and returns the issues in the
// same relative order as their source lines. Non-matching and blank lines
// are simply omitted, so the result is at most len(lines) long. A nil slice
// yields an empty result.
func ClassifyLines(lines []string) []Issue {
	var issues []Issue
	for _, line := range lines {
		if issue, ok := ClassifyLine(line); ok {
			issues = append(issues, issue)
		}
	}
	return issues
}

// ClassifyLinesParallel is ClassifyLines fanned out over a bounded worker
// pool. Per-line classification is pure and independent, so the only work
// here is keeping the output in input order: each worker writes into a
// positional slot and matches are compacted afterwards.
//
// Intended for large saved captures; for live streams ClassifyLine is the
// right entry point.
func ClassifyLinesParallel(lines []string, workers int) []Issue {
	if len(lines) == 0 {
		return nil
	}
	if workers <= 1 {
		return ClassifyLines(lines)
	}

	type slot struct {
		issue Issue
		ok    bool
	}
	slots := make([]slot, len(lines))

	var g errgroup.Group
	g.SetLimit(workers)
	chunk := (len(lines) + workers - 1) / workers
	for start := 0; start < len(lines); start += chunk {
		end := start + chunk
		if end > len(lines) {
			end = len(lines)
		}
		start, end := start, end
		g.Go(func() error {
			for i := start; i < end; i++ {
				slots[i].issue, slots[i].ok = ClassifyLine(lines[i])
			}
			return nil
		})
	}
	// Workers never return errors; Wait is only a join point.
	_ = g.Wait()

	var issues []Issue
	for _, s := range slots {
		if s.ok {
			issues = append(issues, s.issue)
		}
	}
	return issues
}
