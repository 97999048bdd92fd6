// Package logger provides verbose logging for the Synergos CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are written to stderr to show every call made to the TTP.
//
// Messages are rendered by zerolog's console writer. Nothing is written
// unless verbose mode is on.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	log               = build(os.Stderr, false)
)

// build returns a console logger on w. Timestamps are left out so output
// stays readable next to command results.
func build(w io.Writer, enabled bool) zerolog.Logger {
	level := zerolog.Disabled
	if enabled {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:          zerolog.SyncWriter(w),
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}).Level(level)
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	log = build(output, verbose)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	log = build(output, verbose)
}

// Debug logs a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	log.Debug().Msgf(format, args...)
}

// Section logs a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	log.Info().Msg(fmt.Sprintf("=== %s ===", name))
}

// Info logs an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	log.Info().Msgf(format, args...)
}

// Warn logs a warning if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	log.Warn().Msgf(format, args...)
}

// Request logs one completed TTP call with its fields.
func Request(requestID, method, path string, status int, elapsed time.Duration, err error) {
	mu.RLock()
	defer mu.RUnlock()
	ev := log.Debug()
	if err != nil {
		ev = log.Warn().Err(err)
	}
	ev.Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("elapsed", elapsed).
		Msg("ttp call")
}
