package logger

import (
	"fmt"
	"maps"
	"sync"
)

// TestLogger records entries in memory for assertions. Loggers derived with
// WithField and friends share the parent's storage.
type TestLogger struct {
	storage *testLoggerStorage
	fields  Fields
}

type testLoggerStorage struct {
	mu      sync.RWMutex
	entries []TestLogEntry
}

type TestLogEntry struct {
	Level   string
	Message string
	Fields  Fields
}

func NewTestLogger() *TestLogger {
	return &TestLogger{
		storage: &testLoggerStorage{},
		fields:  Fields{},
	}
}

func (l *TestLogger) record(level string, args []any) {
	l.storage.mu.Lock()
	defer l.storage.mu.Unlock()

	l.storage.entries = append(l.storage.entries, TestLogEntry{
		Level:   level,
		Message: fmt.Sprint(args...),
		Fields:  maps.Clone(l.fields),
	})
}

func (l *TestLogger) Trace(args ...any) { l.record("trace", args) }
func (l *TestLogger) Debug(args ...any) { l.record("debug", args) }
func (l *TestLogger) Info(args ...any)  { l.record("info", args) }
func (l *TestLogger) Warn(args ...any)  { l.record("warn", args) }
func (l *TestLogger) Error(args ...any) { l.record("error", args) }

// Fatal records the entry but does not exit.
func (l *TestLogger) Fatal(args ...any) { l.record("fatal", args) }

func (l *TestLogger) WithFields(fields Fields) Logger {
	merged := maps.Clone(l.fields)
	maps.Copy(merged, fields)
	return &TestLogger{
		storage: l.storage,
		fields:  merged,
	}
}

func (l *TestLogger) WithField(key string, value any) Logger {
	return l.WithFields(Fields{key: value})
}

func (l *TestLogger) WithError(err error) Logger {
	return l.WithFields(Fields{"error": err})
}

func (l *TestLogger) GetEntries() []TestLogEntry {
	l.storage.mu.RLock()
	defer l.storage.mu.RUnlock()
	return append([]TestLogEntry{}, l.storage.entries...)
}

func (l *TestLogger) Clear() {
	l.storage.mu.Lock()
	defer l.storage.mu.Unlock()
	l.storage.entries = nil
}

func (l *TestLogger) HasEntry(level, message string) bool {
	_, ok := l.FindEntry(level, message)
	return ok
}

// FindEntry returns the first entry with the given level and message.
func (l *TestLogger) FindEntry(level, message string) (TestLogEntry, bool) {
	for _, entry := range l.GetEntries() {
		if entry.Level == level && entry.Message == message {
			return entry, true
		}
	}
	return TestLogEntry{}, false
}

func (l *TestLogger) CountEntries() int {
	l.storage.mu.RLock()
	defer l.storage.mu.RUnlock()
	return len(l.storage.entries)
}
