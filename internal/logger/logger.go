// Package logger persists triage results as an append-only JSONL session
// log, one event per detected issue. The log survives across runs so an
// operator can compare captures before and after changing an app's
// permission grants.
package logger

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/muntashirakon/logtriage/internal/redact"
)

// TriageEvent is one persisted classification result.
type TriageEvent struct {
	Timestamp  string `json:"timestamp"`
	Package    string `json:"package,omitempty"`
	Device     string `json:"device,omitempty"`
	Category   string `json:"category"`
	Summary    string `json:"summary"`
	SourceLine string `json:"source_line"`
}

// TriageLogger appends events to a JSONL file. Safe for concurrent use.
type TriageLogger struct {
	file *os.File
	mu   sync.Mutex
}

func New(path string) (*TriageLogger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	return &TriageLogger{file: file}, nil
}

func (l *TriageLogger) Log(event TriageEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Device logs can carry tokens; scrub before persisting
	event.SourceLine = redact.Redact(event.SourceLine)
	event.Summary = redact.Redact(event.Summary)

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = l.file.Write(data)
	return err
}

func (l *TriageLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
