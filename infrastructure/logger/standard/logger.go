// ABOUTME: Logger implementation on the standard library log package
// ABOUTME: Plain-text fallback for environments without JSON log ingestion

package standard

import (
	"encoding/json"
	"log"
	"os"
)

// Logger implements the Logger interface using the standard log package.
// Fields are appended to the message as a JSON object.
type Logger struct {
	debug *log.Logger
	info  *log.Logger
	warn  *log.Logger
	error *log.Logger
}

// NewLogger creates a new standard-library logger
func NewLogger() *Logger {
	return &Logger{
		debug: log.New(os.Stdout, "[DEBUG] ", log.LstdFlags),
		info:  log.New(os.Stdout, "[INFO] ", log.LstdFlags),
		warn:  log.New(os.Stdout, "[WARN] ", log.LstdFlags),
		error: log.New(os.Stderr, "[ERROR] ", log.LstdFlags),
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logWithFields(l.debug, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logWithFields(l.info, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logWithFields(l.warn, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logWithFields(l.error, msg, fields)
}

func (l *Logger) logWithFields(logger *log.Logger, msg string, fields map[string]interface{}) {
	if len(fields) == 0 {
		logger.Println(msg)
		return
	}

	encoded, err := json.Marshal(fields)
	if err != nil {
		logger.Printf("%s (failed to marshal fields: %v)", msg, err)
		return
	}

	logger.Printf("%s %s", msg, string(encoded))
}
