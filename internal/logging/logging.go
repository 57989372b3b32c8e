package logging

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var (
	debugEnabled atomic.Bool

	mu   sync.RWMutex
	base = newLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
)

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// Setup redirects all log output to w. Passing nil restores the console writer.
func Setup(w io.Writer) {
	if w == nil {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	}
	mu.Lock()
	base = newLogger(w)
	mu.Unlock()
}

// EnableDebug turns on verbose debug logging for the application lifecycle.
func EnableDebug() {
	debugEnabled.Store(true)
	logger := current()
	logger.Debug().Msg("debug logging enabled")
}

// DisableDebug turns verbose logging back off.
func DisableDebug() {
	debugEnabled.Store(false)
}

// DebugEnabled reports whether debug logging is active.
func DebugEnabled() bool {
	return debugEnabled.Load()
}

// Debugf emits a formatted debug log message when debugging is enabled.
func Debugf(format string, args ...interface{}) {
	if !DebugEnabled() {
		return
	}
	logger := current()
	logger.Debug().Msg(fmt.Sprintf(format, args...))
}

// Printf emits an informational line regardless of the debug switch.
func Printf(format string, args ...interface{}) {
	logger := current()
	logger.Info().Msg(fmt.Sprintf(format, args...))
}

// Warnf emits a warning line regardless of the debug switch.
func Warnf(format string, args ...interface{}) {
	logger := current()
	logger.Warn().Msg(fmt.Sprintf(format, args...))
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// SanitizeURL renders u with query secrets and passwords masked.
func SanitizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}

	clone := *u
	if clone.RawQuery != "" {
		query := clone.Query()
		sanitized := false
		for key, values := range query {
			if !isSensitiveKey(key) {
				continue
			}
			sanitized = true
			for idx, value := range values {
				query[key][idx] = MaskIdentifier(value)
			}
		}
		if sanitized {
			clone.RawQuery = query.Encode()
		}
	}

	if clone.User != nil {
		if password, ok := clone.User.Password(); ok {
			clone.User = url.UserPassword(clone.User.Username(), MaskIdentifier(password))
		}
	}

	return clone.String()
}

func isSensitiveKey(name string) bool {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "api-key"),
		strings.Contains(lower, "apikey"),
		strings.Contains(lower, "authorization"),
		strings.Contains(lower, "secret"),
		strings.Contains(lower, "token"):
		return true
	default:
		return false
	}
}

// MaskIdentifier obscures sensitive identifiers leaving only the last four characters visible.
func MaskIdentifier(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(trimmed)-4) + trimmed[len(trimmed)-4:]
}
