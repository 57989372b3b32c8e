package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSizeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "size.config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadWindowConfigValidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    WindowConfig
	}{
		{
			name:    "both keys",
			content: "windowWidth=900\nwindowHeight=600",
			want:    WindowConfig{Width: 900, Height: 600},
		},
		{
			name:    "comments blanks and whitespace",
			content: "# window size\n\n  windowWidth = 1024 \r\nwindowHeight=768\n",
			want:    WindowConfig{Width: 1024, Height: 768},
		},
		{
			name:    "unknown keys ignored",
			content: "title=hello\nwindowWidth=640\ntheme=dark\nwindowHeight=480",
			want:    WindowConfig{Width: 640, Height: 480},
		},
		{
			name:    "last value wins",
			content: "windowWidth=640\nwindowWidth=700\nwindowHeight=480",
			want:    WindowConfig{Width: 700, Height: 480},
		},
		{
			name:    "split on first equals",
			content: "windowWidth=800=1\nwindowHeight=500",
			want:    WindowConfig{Width: 800, Height: 500},
		},
		{
			name:    "trailing units and fractions",
			content: "windowWidth=900px\nwindowHeight=600.5",
			want:    WindowConfig{Width: 900, Height: 600},
		},
		{
			name:    "explicit plus sign",
			content: "windowWidth=+1024\nwindowHeight=768",
			want:    WindowConfig{Width: 1024, Height: 768},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LoadWindowConfig(writeSizeConfig(t, tt.content))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadWindowConfigFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    WindowConfig
	}{
		{name: "empty file", content: "", want: DefaultWindowConfig()},
		{name: "garbage", content: "not a config\n=\n==", want: DefaultWindowConfig()},
		{name: "non numeric", content: "windowWidth=wide\nwindowHeight=tall", want: DefaultWindowConfig()},
		{name: "zero and negative", content: "windowWidth=0\nwindowHeight=-5", want: DefaultWindowConfig()},
		{name: "negative with units", content: "windowWidth=-900px\nwindowHeight=px600", want: DefaultWindowConfig()},
		{name: "sign only", content: "windowWidth=+\nwindowHeight=-", want: DefaultWindowConfig()},
		{name: "overflow", content: "windowWidth=99999999999999999999999", want: DefaultWindowConfig()},
		{name: "commented out", content: "#windowWidth=900\n# windowHeight=600", want: DefaultWindowConfig()},
		{name: "width only", content: "windowWidth=900", want: WindowConfig{Width: 900, Height: DefaultWindowHeight}},
		{name: "height only bad width", content: "windowWidth=abc\nwindowHeight=600", want: WindowConfig{Width: DefaultWindowWidth, Height: 600}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LoadWindowConfig(writeSizeConfig(t, tt.content))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadWindowConfigMissingFile(t *testing.T) {
	got := LoadWindowConfig(filepath.Join(t.TempDir(), "absent", "size.config"))
	assert.Equal(t, WindowConfig{Width: 1200, Height: 800}, got)
}

func TestLoadWindowConfigDirectory(t *testing.T) {
	got := LoadWindowConfig(t.TempDir())
	assert.Equal(t, DefaultWindowConfig(), got)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestParseWindowConfigReadError(t *testing.T) {
	cfg, err := ParseWindowConfig(failingReader{})
	require.Error(t, err)
	assert.Equal(t, DefaultWindowConfig(), cfg)
}

func TestParseWindowConfigReader(t *testing.T) {
	cfg, err := ParseWindowConfig(strings.NewReader("windowHeight=300"))
	require.NoError(t, err)
	assert.Equal(t, WindowConfig{Width: DefaultWindowWidth, Height: 300}, cfg)
	assert.Equal(t, "1200x300", cfg.String())
}
