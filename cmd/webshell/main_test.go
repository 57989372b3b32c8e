package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"WEBSHELL_INSTALL_DIR", "WEBSHELL_CONFIG_PATH", "WEBSHELL_DEBUG",
		"WEBSHELL_KEEP_ALIVE", "WEBSHELL_TRAY", "WEBSHELL_SHOW_CONSOLE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestResolveSettingsFlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEBSHELL_INSTALL_DIR", "/opt/from-env")
	t.Setenv("WEBSHELL_DEBUG", "true")

	f := &cliFlags{}
	cmd := newRootCommand(f)
	if err := cmd.ParseFlags([]string{"--install-dir", "/opt/from-flag", "--keep-alive=false", "--tray"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	s, err := resolveSettings(cmd, f)
	if err != nil {
		t.Fatalf("resolveSettings returned error: %v", err)
	}
	if s.InstallDir != "/opt/from-flag" {
		t.Fatalf("install dir = %q, want flag value", s.InstallDir)
	}
	if !s.Debug {
		t.Fatalf("debug from environment should survive when the flag is unset")
	}
	if s.KeepAlive == nil || *s.KeepAlive {
		t.Fatalf("keep-alive should be explicitly false, got %v", s.KeepAlive)
	}
	if s.KeepAliveEnabled() {
		t.Fatalf("explicit keep-alive=false must win over the platform default")
	}
	if !s.Tray {
		t.Fatalf("tray flag should be set")
	}
}

func TestResolveSettingsWithoutFlagsKeepsPlatformDefault(t *testing.T) {
	clearEnv(t)

	f := &cliFlags{}
	cmd := newRootCommand(f)
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	s, err := resolveSettings(cmd, f)
	if err != nil {
		t.Fatalf("resolveSettings returned error: %v", err)
	}
	if s.KeepAlive != nil {
		t.Fatalf("keep-alive should be left to the platform, got %v", *s.KeepAlive)
	}
}

func TestResolveSettingsRejectsBadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEBSHELL_DEBUG", "sometimes")

	f := &cliFlags{}
	cmd := newRootCommand(f)
	if _, err := resolveSettings(cmd, f); err == nil {
		t.Fatalf("expected an error for an unparsable boolean")
	}
}

func TestResolvePaths(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	f := &cliFlags{}
	cmd := newRootCommand(f)
	if err := cmd.ParseFlags([]string{"--install-dir", dir}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	s, err := resolveSettings(cmd, f)
	if err != nil {
		t.Fatalf("resolveSettings returned error: %v", err)
	}

	installDir, paths, err := resolvePaths(s)
	if err != nil {
		t.Fatalf("resolvePaths returned error: %v", err)
	}
	if installDir != dir {
		t.Fatalf("install dir = %q, want %q", installDir, dir)
	}
	if paths.SizeConfig != filepath.Join(dir, "www", "size.config") {
		t.Fatalf("unexpected size config path %q", paths.SizeConfig)
	}
	if !strings.HasPrefix(paths.EntryURL, "file://") || !strings.HasSuffix(paths.EntryURL, "/index.html") {
		t.Fatalf("unexpected entry url %q", paths.EntryURL)
	}
	if paths.Icon != filepath.Join(dir, "icon.svg") {
		t.Fatalf("unexpected icon path %q", paths.Icon)
	}
}

func TestInstanceIDIsStablePerInstallDir(t *testing.T) {
	a := instanceID("/opt/a")
	if a != instanceID("/opt/a") {
		t.Fatalf("instance id should be deterministic")
	}
	if a == instanceID("/opt/b") {
		t.Fatalf("different install dirs should not share a lock")
	}
	if !strings.HasPrefix(a, "webshell-") {
		t.Fatalf("unexpected instance id %q", a)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCommand(&cliFlags{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version returned error: %v", err)
	}
	if strings.TrimSpace(out.String()) != "webshell "+version {
		t.Fatalf("unexpected version output %q", out.String())
	}
}
