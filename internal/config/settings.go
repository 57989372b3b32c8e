package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	envPrefix = "WEBSHELL"

	sizeConfigDir  = "www"
	sizeConfigName = "size.config"
	entryDocument  = "index.html"
	iconName       = "icon.svg"
)

// Settings captures process-level options. Values come from WEBSHELL_*
// environment variables and may be overridden on the command line.
type Settings struct {
	InstallDir  string `envconfig:"INSTALL_DIR"`
	ConfigPath  string `envconfig:"CONFIG_PATH"`
	Debug       bool   `envconfig:"DEBUG"`
	KeepAlive   *bool  `envconfig:"KEEP_ALIVE"`
	Tray        bool   `envconfig:"TRAY"`
	ShowConsole bool   `envconfig:"SHOW_CONSOLE"`
}

// LoadSettings reads settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := envconfig.Process(envPrefix, &s); err != nil {
		return Settings{}, fmt.Errorf("read %s settings: %w", envPrefix, err)
	}
	return s, nil
}

// ResolveInstallDir returns the directory holding the entry document, icon
// and size config. Explicit settings win over the compiled-in directory,
// which wins over the executable's directory.
func (s Settings) ResolveInstallDir() (string, error) {
	if dir := firstNonEmpty(s.InstallDir, CompiledInstallDir); dir != "" {
		return filepath.Abs(dir)
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable: %w", err)
	}
	return filepath.Dir(exe), nil
}

// Path returns the size config location for installDir unless overridden.
func (s Settings) Path(installDir string) string {
	if custom := strings.TrimSpace(s.ConfigPath); custom != "" {
		return custom
	}
	return filepath.Join(installDir, sizeConfigDir, sizeConfigName)
}

// KeepAliveEnabled reports whether the process should stay alive with no
// open windows. Without an explicit setting this follows the platform
// convention, which only keeps background apps alive on macOS.
func (s Settings) KeepAliveEnabled() bool {
	if s.KeepAlive != nil {
		return *s.KeepAlive
	}
	return PlatformKeepsAlive(runtime.GOOS)
}

// PlatformKeepsAlive reports the keep-alive convention for goos.
func PlatformKeepsAlive(goos string) bool {
	return goos == "darwin"
}

// EntryPath returns the shell's static entry document inside installDir.
func EntryPath(installDir string) string {
	return filepath.Join(installDir, entryDocument)
}

// IconPath returns the window icon asset inside installDir.
func IconPath(installDir string) string {
	return filepath.Join(installDir, iconName)
}

// FileURL converts a local path into a file-scheme reference.
func FileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String(), nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			return trimmed
		}
	}
	return ""
}
