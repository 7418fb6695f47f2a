package converter

import "fmt"

// Logger is the logging interface used throughout a run.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// NewLogger returns the default stdout logger. Debug output is emitted only
// when verbose is true.
func NewLogger(verbose bool) Logger {
	return &defaultLogger{verbose: verbose}
}

// defaultLogger is a simple logger that prints to stdout.
type defaultLogger struct {
	verbose bool
}

func (l *defaultLogger) Debug(msg string, args ...interface{}) {
	if !l.verbose {
		return
	}
	fmt.Printf("[DEBUG] "+msg+"\n", args...)
}

func (l *defaultLogger) Info(msg string, args ...interface{}) {
	fmt.Printf("[INFO] "+msg+"\n", args...)
}

func (l *defaultLogger) Warn(msg string, args ...interface{}) {
	fmt.Printf("[WARN] "+msg+"\n", args...)
}

func (l *defaultLogger) Error(msg string, args ...interface{}) {
	fmt.Printf("[ERROR] "+msg+"\n", args...)
}
