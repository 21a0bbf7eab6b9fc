package logcat

// Filter narrows a capture to the lines worth classifying. The zero value
// keeps everything.
type Filter struct {
	// PIDs restricts output to these process IDs. Empty means all.
	PIDs []int

	// MinPriority drops entries below this severity. Zero means all.
	MinPriority Priority

	// KeepUnparsed controls what happens to lines that are not valid
	// threadtime entries (wrapped stack frames, logcat banners). A crash
	// trace from the target app wraps across raw lines, so captures fed
	// through a PID filter usually want these kept.
	KeepUnparsed bool
}

// Keep decides whether a raw line passes the filter.
func (f Filter) Keep(line string) bool {
	entry, ok := Parse(line)
	if !ok {
		return f.KeepUnparsed
	}
	return f.KeepEntry(entry)
}

// KeepEntry applies the PID and priority predicates to a parsed entry.
func (f Filter) KeepEntry(e Entry) bool {
	if f.MinPriority != 0 && !e.Priority.AtLeast(f.MinPriority) {
		return false
	}
	if len(f.PIDs) == 0 {
		return true
	}
	for _, pid := range f.PIDs {
		if e.PID == pid {
			return true
		}
	}
	return false
}

// Apply returns the lines that pass the filter, in input order.
func (f Filter) Apply(lines []string) []string {
	var kept []string
	for _, line := range lines {
		if f.Keep(line) {
			kept = append(kept, line)
		}
	}
	return kept
}
