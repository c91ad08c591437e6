// Package logger owns the debug log; the terminal is in raw mode so nothing goes to stdout or stderr
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "elevator.log"
	maxLogSize  = 10 * 1024 * 1024

	timeFormat = "2006-01-02T15:04:05.000Z07:00"
)

var (
	mu      sync.RWMutex
	current = zerolog.Nop()
)

// Setup points the logger at logs/elevator.log when debug is set, rotating a file over 10 MB to a timestamped name
// Without debug all output is discarded and nil is returned; callers close the returned file
func Setup(debug bool) *os.File {
	if !debug {
		set(io.Discard, zerolog.Disabled)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		set(io.Discard, zerolog.Disabled)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("elevator-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		set(io.Discard, zerolog.Disabled)
		return nil
	}

	set(file, zerolog.DebugLevel)
	Get().Info().Str("path", logPath).Msg("logging started")
	return file
}

func set(w io.Writer, level zerolog.Level) {
	zerolog.TimeFieldFormat = timeFormat

	mu.Lock()
	if level == zerolog.Disabled {
		current = zerolog.Nop()
	} else {
		current = zerolog.New(w).Level(level).With().Timestamp().Logger()
	}
	mu.Unlock()

	// Stray stdlib log calls follow the same destination
	log.SetOutput(w)
}

// Get returns the process logger
func Get() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := current
	return &l
}

// With returns a child logger tagged with a component name
func With(component string) zerolog.Logger {
	return Get().With().Str("component", component).Logger()
}
