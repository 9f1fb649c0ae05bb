package spec

import (
	"fmt"
	"log/slog"

	"github.com/sirupsen/logrus"
)

// Logger is the interface that swaggerdoc uses for structured logging.
//
// It uses variadic key-value pairs for structured attributes, following the
// same convention as log/slog:
//
//	logger.Debug("resolved parameter", "ref", "#/parameters/petId", "operation", "getPetById")
//
// Use [NewSlogAdapter] for log/slog or [NewLogrusAdapter] for logrus.
type Logger interface {
	// Debug logs at debug level. Use for detailed diagnostic information.
	Debug(msg string, attrs ...any)

	// Info logs at info level. Use for general operational information.
	Info(msg string, attrs ...any)

	// Warn logs at warn level. Use for potentially harmful situations.
	Warn(msg string, attrs ...any)

	// Error logs at error level. Use for error conditions.
	Error(msg string, attrs ...any)

	// With returns a new Logger with the given attributes prepended to every log.
	With(attrs ...any) Logger
}

// NopLogger is a no-op logger that discards all output.
// It is the default logger used when no logger is configured.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(_ string, _ ...any) {}

// Info implements Logger.
func (NopLogger) Info(_ string, _ ...any) {}

// Warn implements Logger.
func (NopLogger) Warn(_ string, _ ...any) {}

// Error implements Logger.
func (NopLogger) Error(_ string, _ ...any) {}

// With implements Logger.
func (n NopLogger) With(_ ...any) Logger { return n }

// Ensure NopLogger implements Logger at compile time.
var _ Logger = NopLogger{}

// SlogAdapter wraps a *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter from a *slog.Logger.
// If logger is nil, slog.Default() is used.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Debug implements Logger.
func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }

// Info implements Logger.
func (s *SlogAdapter) Info(msg string, attrs ...any) { s.logger.Info(msg, attrs...) }

// Warn implements Logger.
func (s *SlogAdapter) Warn(msg string, attrs ...any) { s.logger.Warn(msg, attrs...) }

// Error implements Logger.
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }

// With implements Logger.
func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)

// LogrusAdapter wraps a logrus entry to implement the Logger interface.
// Attribute pairs become logrus fields.
type LogrusAdapter struct {
	entry *logrus.Entry
}

// NewLogrusAdapter creates a LogrusAdapter. If logger is nil, the logrus
// standard logger is used.
func NewLogrusAdapter(logger *logrus.Logger) *LogrusAdapter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusAdapter{entry: logrus.NewEntry(logger)}
}

// Debug implements Logger.
func (l *LogrusAdapter) Debug(msg string, attrs ...any) {
	l.entry.WithFields(logrusFields(attrs)).Debug(msg)
}

// Info implements Logger.
func (l *LogrusAdapter) Info(msg string, attrs ...any) {
	l.entry.WithFields(logrusFields(attrs)).Info(msg)
}

// Warn implements Logger.
func (l *LogrusAdapter) Warn(msg string, attrs ...any) {
	l.entry.WithFields(logrusFields(attrs)).Warn(msg)
}

// Error implements Logger.
func (l *LogrusAdapter) Error(msg string, attrs ...any) {
	l.entry.WithFields(logrusFields(attrs)).Error(msg)
}

// With implements Logger.
func (l *LogrusAdapter) With(attrs ...any) Logger {
	return &LogrusAdapter{entry: l.entry.WithFields(logrusFields(attrs))}
}

var _ Logger = (*LogrusAdapter)(nil)

// logrusFields pairs up slog-style attributes. A dangling value is kept
// under "!BADKEY", matching slog.
func logrusFields(attrs []any) logrus.Fields {
	fields := make(logrus.Fields, (len(attrs)+1)/2)
	for i := 0; i < len(attrs); i += 2 {
		if i+1 >= len(attrs) {
			fields["!BADKEY"] = attrs[i]
			break
		}
		key, ok := attrs[i].(string)
		if !ok {
			key = fmt.Sprint(attrs[i])
		}
		fields[key] = attrs[i+1]
	}
	return fields
}
