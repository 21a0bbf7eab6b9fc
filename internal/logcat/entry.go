// Package logcat acquires and filters device log lines for the classifier.
// It understands the `threadtime` output format and knows how to spawn adb
// for live capture. Everything here is plumbing: the packages's only job is
// to hand clean lines to internal/classify and stay out of the way.
package logcat

import (
	"regexp"
	"strconv"
	"strings"
)

// Priority is a logcat priority letter, V through F.
type Priority byte

const (
	PriorityVerbose Priority = 'V'
	PriorityDebug   Priority = 'D'
	PriorityInfo    Priority = 'I'
	PriorityWarn    Priority = 'W'
	PriorityError   Priority = 'E'
	PriorityFatal   Priority = 'F'
)

// level returns a numeric rank for threshold comparison. Unknown letters
// rank lowest so they never pass a minimum-priority filter.
func (p Priority) level() int {
	switch p {
	case PriorityVerbose:
		return 1
	case PriorityDebug:
		return 2
	case PriorityInfo:
		return 3
	case PriorityWarn:
		return 4
	case PriorityError:
		return 5
	case PriorityFatal:
		return 6
	default:
		return 0
	}
}

// AtLeast reports whether p is at or above min severity.
func (p Priority) AtLeast(min Priority) bool { return p.level() >= min.level() }

// ParsePriority accepts a single priority letter, case-insensitively.
func ParsePriority(s string) (Priority, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 {
		return 0, false
	}
	switch p := Priority(s[0]); p {
	case PriorityVerbose, PriorityDebug, PriorityInfo, PriorityWarn, PriorityError, PriorityFatal:
		return p, true
	}
	return 0, false
}

// Entry is one parsed threadtime-format logcat line:
//
//	06-12 14:02:11.481  1712  3240 W ActivityManager: Permission Denial: ...
type Entry struct {
	Timestamp string // "06-12 14:02:11.481", kept as text (no year on the wire)
	PID       int
	TID       int
	Priority  Priority
	Tag       string
	Message   string
	Raw       string // the unmodified input line
}

var threadtimePattern = regexp.MustCompile(
	`^(\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3})\s+(\d+)\s+(\d+)\s+([VDIWEF])\s+(.*?)\s*: (.*)$`)

// Parse splits a threadtime-format line into its fields. The second return
// value is false for lines in any other shape (continuation lines, logcat
// banners like "--------- beginning of main", other -v formats). Parsing is
// best-effort and never errors.
func Parse(line string) (Entry, bool) {
	m := threadtimePattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}
	pid, err := strconv.Atoi(m[2])
	if err != nil {
		return Entry{}, false
	}
	tid, err := strconv.Atoi(m[3])
	if err != nil {
		return Entry{}, false
	}
	return Entry{
		Timestamp: m[1],
		PID:       pid,
		TID:       tid,
		Priority:  Priority(m[4][0]),
		Tag:       m[5],
		Message:   m[6],
		Raw:       line,
	}, true
}
