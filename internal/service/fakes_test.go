package service

import (
	"context"
	"sync"

	"swimtrack-be/internal/repository/specification"
	"swimtrack-be/pkg/selection"

	"github.com/google/uuid"
)

type logEntry struct {
	level   string
	module  string
	message string
	details map[string]interface{}
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, module, message string, details map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, module: module, message: message, details: details})
}

func (l *recordingLogger) Debug(module, message string, details map[string]interface{}) {
	l.record("debug", module, message, details)
}

func (l *recordingLogger) Info(module, message string, details map[string]interface{}) {
	l.record("info", module, message, details)
}

func (l *recordingLogger) Warn(module, message string, details map[string]interface{}) {
	l.record("warn", module, message, details)
}

func (l *recordingLogger) Error(module, message string, details map[string]interface{}) {
	l.record("error", module, message, details)
}

func (l *recordingLogger) Sync() error { return nil }

func (l *recordingLogger) levels() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e.level)
	}
	return out
}

// fakeRepository records FindAll calls and returns its fixed records.
type fakeRepository[E any] struct {
	records  []*E
	findErr  error
	findAlls [][]specification.Specification
}

func (r *fakeRepository[E]) Create(ctx context.Context, e *E) error { return nil }

func (r *fakeRepository[E]) Update(ctx context.Context, e *E) error { return nil }

func (r *fakeRepository[E]) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeRepository[E]) FindOne(ctx context.Context, specs ...specification.Specification) (*E, error) {
	if len(r.records) == 0 {
		return nil, nil
	}
	return r.records[0], nil
}

func (r *fakeRepository[E]) FindAll(ctx context.Context, specs ...specification.Specification) ([]*E, error) {
	r.findAlls = append(r.findAlls, specs)
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.records, nil
}

func (r *fakeRepository[E]) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.records)), nil
}

func (r *fakeRepository[E]) FindByIDsChunked(ctx context.Context, ids []uuid.UUID, chunkSize int) ([]*E, error) {
	return r.records, nil
}

type staticSelection struct {
	state selection.State
}

func (s *staticSelection) Snapshot() selection.State {
	return s.state.Clone()
}
