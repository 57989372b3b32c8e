package lifecycle_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/webshell/internal/config"
	"github.com/example/webshell/internal/ipc"
	"github.com/example/webshell/internal/lifecycle"
	"github.com/example/webshell/internal/native/nativetest"
	"github.com/example/webshell/internal/protocol"
	"github.com/example/webshell/internal/security"
	"github.com/example/webshell/internal/window"
)

type harness struct {
	backend *nativetest.Backend
	app     *nativetest.App
	windows *window.Controller
	lc      *lifecycle.Lifecycle
}

func newHarness(t *testing.T, keepAlive bool, sizeConfig string) *harness {
	t.Helper()
	dir := t.TempDir()
	if sizeConfig != "" {
		path := config.Settings{}.Path(dir)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(sizeConfig), 0o644))
	}
	entry, err := config.FileURL(config.EntryPath(dir))
	require.NoError(t, err)

	h := &harness{backend: &nativetest.Backend{}, app: &nativetest.App{}}
	h.windows, err = window.NewController(h.backend, ipc.NewChannel(), security.NewInsecurePolicy(), window.Paths{
		SizeConfig: config.Settings{}.Path(dir),
		EntryURL:   entry,
		Icon:       config.IconPath(dir),
	})
	require.NoError(t, err)
	h.lc = lifecycle.New(h.windows, h.app, h.app, h.app, keepAlive)
	return h
}

func TestReadyOpensDefaultWindowAndMenu(t *testing.T) {
	h := newHarness(t, false, "")
	require.NoError(t, h.lc.Ready())

	w := h.backend.Last()
	require.NotNil(t, w)
	assert.Equal(t, 1200, w.Opts.Width)
	assert.Equal(t, 800, w.Opts.Height)
	assert.Equal(t, 1, h.app.Installs())

	require.True(t, h.app.Press("Ctrl+O"))
	assert.Equal(t, []protocol.Message{protocol.ShowURLDialog}, w.Fake().Received())
}

func TestReadyHonoursSizeConfig(t *testing.T) {
	h := newHarness(t, false, "windowWidth=900\nwindowHeight=600\n")
	require.NoError(t, h.lc.Ready())

	w := h.backend.Last()
	assert.Equal(t, 900, w.Opts.Width)
	assert.Equal(t, 600, w.Opts.Height)
}

func TestCloseQuitsWithoutKeepAlive(t *testing.T) {
	h := newHarness(t, false, "")
	require.NoError(t, h.lc.Ready())

	require.True(t, h.app.Press("Ctrl+W"))

	assert.Equal(t, 1, h.app.Quits())
	assert.True(t, h.lc.Quitting())
	assert.ErrorIs(t, h.lc.Activate(), lifecycle.ErrQuitting)
	assert.Len(t, h.backend.Windows(), 1)
}

func TestSurfaceCloseQuitsWithoutKeepAlive(t *testing.T) {
	h := newHarness(t, false, "")
	require.NoError(t, h.lc.Ready())

	assert.True(t, h.windows.Channel().Receive(protocol.WindowClose))
	assert.Equal(t, 1, h.app.Quits())
}

func TestKeepAliveStaysResidentAndActivateRecreates(t *testing.T) {
	h := newHarness(t, true, "windowWidth=900\nwindowHeight=600\n")
	require.NoError(t, h.lc.Ready())
	first := h.backend.Last()

	first.Close()
	assert.Zero(t, h.app.Quits())
	assert.False(t, h.lc.Quitting())
	_, ok := h.windows.Current()
	assert.False(t, ok)

	require.NoError(t, h.lc.Activate())
	require.Len(t, h.backend.Windows(), 2)
	second := h.backend.Last()
	assert.Equal(t, 900, second.Opts.Width)
	assert.Equal(t, 600, second.Opts.Height)
	assert.Equal(t, 2, h.app.Installs())

	require.True(t, h.app.Press("Ctrl+R"))
	assert.Empty(t, first.Fake().Received())
	assert.Equal(t, []protocol.Message{protocol.Reload}, second.Fake().Received())
}

func TestActivateWithLiveWindowIsNoop(t *testing.T) {
	h := newHarness(t, false, "")
	require.NoError(t, h.lc.Ready())

	require.NoError(t, h.lc.Activate())
	require.NoError(t, h.lc.Activate())
	assert.Len(t, h.backend.Windows(), 1)
	assert.Equal(t, 1, h.app.Installs())
}

func TestQuitMenuItemIsIdempotent(t *testing.T) {
	h := newHarness(t, true, "")
	require.NoError(t, h.lc.Ready())

	require.True(t, h.app.Press("Ctrl+Q"))
	h.lc.Quit()
	assert.Equal(t, 1, h.app.Quits())
}

func TestMessagesAfterCloseAreDropped(t *testing.T) {
	h := newHarness(t, true, "")
	require.NoError(t, h.lc.Ready())
	w := h.backend.Last()
	w.Close()

	assert.NotPanics(t, func() {
		h.app.Press("Ctrl+O")
		h.app.Press("F11")
		h.windows.Channel().Receive(protocol.WindowMinimize)
	})
	assert.Empty(t, w.Fake().Received())
	minimised, maximised, _ := w.Counts()
	assert.Zero(t, minimised)
	assert.Zero(t, maximised)
}

func TestPlatformKeepAliveDefault(t *testing.T) {
	assert.True(t, config.PlatformKeepsAlive("darwin"))
	assert.False(t, config.PlatformKeepsAlive("windows"))
	assert.False(t, config.PlatformKeepsAlive("linux"))
}
