package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/example/webshell/internal/logging"
)

const (
	// DefaultWindowWidth is used when size.config is absent or its width is unusable.
	DefaultWindowWidth = 1200
	// DefaultWindowHeight is used when size.config is absent or its height is unusable.
	DefaultWindowHeight = 800

	keyWindowWidth  = "windowWidth"
	keyWindowHeight = "windowHeight"
)

// WindowConfig holds the dimensions of the primary window.
type WindowConfig struct {
	Width  int
	Height int
}

// DefaultWindowConfig returns the built-in 1200x800 dimensions.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{Width: DefaultWindowWidth, Height: DefaultWindowHeight}
}

// String renders the dimensions as WIDTHxHEIGHT.
func (c WindowConfig) String() string {
	return fmt.Sprintf("%dx%d", c.Width, c.Height)
}

// LoadWindowConfig reads the size file at path. It never fails: an unreadable
// file yields DefaultWindowConfig and unusable values fall back per field.
func LoadWindowConfig(path string) WindowConfig {
	f, err := os.Open(path)
	if err != nil {
		logging.Debugf("size config %s unavailable, using default window size: %v", path, err)
		return DefaultWindowConfig()
	}
	defer f.Close()

	cfg, err := ParseWindowConfig(f)
	if err != nil {
		logging.Debugf("size config %s unreadable, using default window size: %v", path, err)
		return DefaultWindowConfig()
	}
	logging.Debugf("loaded window size %s from %s", cfg, path)
	return cfg
}

// ParseWindowConfig parses key=value lines. Lines starting with # are
// comments and unknown keys are ignored. Only I/O errors are returned.
func ParseWindowConfig(r io.Reader) (WindowConfig, error) {
	cfg := DefaultWindowConfig()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case keyWindowWidth:
			cfg.Width = parseDimension(value, DefaultWindowWidth)
		case keyWindowHeight:
			cfg.Height = parseDimension(value, DefaultWindowHeight)
		}
	}
	if err := scanner.Err(); err != nil {
		return DefaultWindowConfig(), fmt.Errorf("scan size config: %w", err)
	}

	return cfg, nil
}

// parseDimension reads the leading integer of value, so "900px" and "900.5"
// both yield 900. Anything without leading digits, or not positive, falls back.
func parseDimension(value string, fallback int) int {
	n, ok := leadingInt(value)
	if !ok || n <= 0 {
		logging.Debugf("ignoring window dimension %q, using %d", value, fallback)
		return fallback
	}
	return n
}

func leadingInt(value string) (int, bool) {
	end := 0
	if end < len(value) && (value[end] == '+' || value[end] == '-') {
		end++
	}
	digits := end
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(value[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
