package logger

type Fields map[string]any

// Logger is the logging surface used across the module. Production code gets
// a logrus-backed implementation, tests get TestLogger.
type Logger interface {
	Trace(args ...any)
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Fatal(args ...any)

	WithFields(fields Fields) Logger
	WithField(key string, value any) Logger
	WithError(err error) Logger
}
