// Package native binds the host to the Wails v2 runtime. The runtime owns a
// single webview window for the life of the process, so opening a window
// shows it and closing one hides it.
package native

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	wruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/example/webshell/internal/config"
	"github.com/example/webshell/internal/logging"
	"github.com/example/webshell/internal/menu"
	"github.com/example/webshell/internal/protocol"
	"github.com/example/webshell/internal/window"
)

// ErrNotStarted is returned when a window is requested before the runtime
// has finished starting.
var ErrNotStarted = errors.New("native: runtime not started")

// Events are the host callbacks driven by the runtime.
type Events struct {
	// Ready runs once the runtime is up.
	Ready func() error
	// Activate runs when the user launches the application again.
	Activate func() error
	// CloseRequested runs when the platform asks to close the window.
	CloseRequested func()
	// Quitting reports whether the host has already decided to exit.
	Quitting func() bool
	// Receive dispatches a message arriving from the page.
	Receive func(protocol.Message) bool
}

// Config describes the application handed to the runtime. The window starts
// hidden at the default size; Open applies the configured size.
type Config struct {
	Title      string
	UniqueID   string
	InstallDir string
	IconPath   string
	Events     Events
}

// App implements the window backend, menu installer, dialogs and quit hook
// on top of the Wails runtime.
type App struct {
	mu      sync.Mutex
	ctx     context.Context
	current *nativeWindow
	events  Events
	unsub   []func()
	closing bool
}

// New constructs an App that is not yet bound to a runtime.
func New() *App {
	return &App{}
}

// Options builds the runtime options for cfg. The returned value is passed
// to wails.Run by the caller.
func (a *App) Options(cfg Config) *options.App {
	a.mu.Lock()
	a.events = cfg.Events
	a.mu.Unlock()

	bg := window.Background
	opts := &options.App{
		Title:            cfg.Title,
		Width:            config.DefaultWindowWidth,
		Height:           config.DefaultWindowHeight,
		Frameless:        true,
		StartHidden:      true,
		BackgroundColour: &options.RGBA{R: bg.R, G: bg.G, B: bg.B, A: bg.A},
		AssetServer: &assetserver.Options{
			Assets: os.DirFS(cfg.InstallDir),
		},
		OnStartup:     a.startup,
		OnShutdown:    a.shutdown,
		OnBeforeClose: a.beforeClose,
		Mac: &mac.Options{
			About: &mac.AboutInfo{
				Title:   menu.AboutTitle,
				Message: menu.AboutMessage + "\n" + menu.AboutDetail,
			},
		},
		Linux: &linux.Options{
			Icon:        readIcon(cfg.IconPath),
			ProgramName: cfg.Title,
		},
	}
	if cfg.UniqueID != "" {
		opts.SingleInstanceLock = &options.SingleInstanceLock{
			UniqueId:               cfg.UniqueID,
			OnSecondInstanceLaunch: a.secondInstance,
		}
	}
	return opts
}

func readIcon(path string) []byte {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logging.Debugf("native: icon %s unavailable: %v", path, err)
		return nil
	}
	return data
}

func (a *App) startup(ctx context.Context) {
	a.mu.Lock()
	a.ctx = ctx
	events := a.events
	a.mu.Unlock()

	for _, msg := range protocol.SurfaceMessages() {
		msg := msg
		off := wruntime.EventsOn(ctx, string(msg), func(...interface{}) {
			a.receive(msg)
		})
		a.mu.Lock()
		a.unsub = append(a.unsub, off)
		a.mu.Unlock()
	}

	if events.Ready == nil {
		return
	}
	if err := events.Ready(); err != nil {
		logging.Warnf("native: startup failed: %v", err)
		wruntime.Quit(ctx)
	}
}

func (a *App) shutdown(context.Context) {
	a.mu.Lock()
	unsub := a.unsub
	a.unsub = nil
	a.mu.Unlock()
	for _, off := range unsub {
		off()
	}
	logging.Debugf("native: runtime shut down")
}

// beforeClose reports true to veto the platform close so the host decides
// whether the process exits. A quit requested while the host handles the
// close lets the runtime finish closing instead of re-entering it.
func (a *App) beforeClose(context.Context) bool {
	a.mu.Lock()
	events := a.events
	a.closing = true
	a.mu.Unlock()
	defer func() {
		a.mu.Lock()
		a.closing = false
		a.mu.Unlock()
	}()

	quitting := func() bool { return events.Quitting != nil && events.Quitting() }
	if quitting() {
		return false
	}
	if events.CloseRequested != nil {
		events.CloseRequested()
	}
	return !quitting()
}

func (a *App) secondInstance(data options.SecondInstanceData) {
	logging.Debugf("native: second instance launched with %d args", len(data.Args))
	a.mu.Lock()
	activate := a.events.Activate
	a.mu.Unlock()
	if activate == nil {
		return
	}
	if err := activate(); err != nil {
		logging.Warnf("native: activate failed: %v", err)
	}
}

func (a *App) receive(msg protocol.Message) {
	a.mu.Lock()
	w := a.current
	recv := a.events.Receive
	a.mu.Unlock()

	if msg == protocol.SurfaceReady && w != nil {
		w.surface.markReady()
	}
	if recv != nil {
		recv(msg)
	}
}

func (a *App) context() (context.Context, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ctx, a.ctx != nil
}

// Open shows the runtime's window with opts applied.
func (a *App) Open(opts window.Options) (window.Native, error) {
	ctx, ok := a.context()
	if !ok {
		return nil, ErrNotStarted
	}

	w := &nativeWindow{ctx: ctx, surface: &surface{ctx: ctx}}
	a.mu.Lock()
	a.current = w
	a.mu.Unlock()

	bg := opts.Background
	wruntime.WindowSetSize(ctx, opts.Width, opts.Height)
	wruntime.WindowSetBackgroundColour(ctx, bg.R, bg.G, bg.B, bg.A)
	wruntime.WindowCenter(ctx)
	wruntime.WindowShow(ctx)
	logging.Debugf("native: window shown at %dx%d (frameless %t, icon %q)", opts.Width, opts.Height, opts.Frameless, opts.IconPath)
	return w, nil
}

// InstallMenu replaces the application menu.
func (a *App) InstallMenu(spec menu.Spec, activate func(menu.Command)) {
	ctx, ok := a.context()
	if !ok {
		logging.Debugf("native: menu install skipped, runtime not started")
		return
	}
	wruntime.MenuSetApplicationMenu(ctx, buildMenu(spec, activate))
	wruntime.MenuUpdateApplicationMenu(ctx)
}

// ShowInfo opens a modal informational dialog.
func (a *App) ShowInfo(title, message, detail string) {
	ctx, ok := a.context()
	if !ok {
		return
	}
	body := message
	if detail != "" {
		body = strings.Join([]string{message, detail}, "\n\n")
	}
	if _, err := wruntime.MessageDialog(ctx, wruntime.MessageDialogOptions{
		Type:    wruntime.InfoDialog,
		Title:   title,
		Message: body,
	}); err != nil {
		logging.Warnf("native: dialog %q: %v", title, err)
	}
}

// Quit stops the runtime.
func (a *App) Quit() {
	a.mu.Lock()
	ctx, closing := a.ctx, a.closing
	a.mu.Unlock()
	if ctx == nil || closing {
		return
	}
	wruntime.Quit(ctx)
}

type nativeWindow struct {
	ctx     context.Context
	surface *surface

	mu       sync.Mutex
	closed   bool
	onClosed []func()
}

func (w *nativeWindow) Minimise()   { wruntime.WindowMinimise(w.ctx) }
func (w *nativeWindow) Maximise()   { wruntime.WindowMaximise(w.ctx) }
func (w *nativeWindow) Unmaximise() { wruntime.WindowUnmaximise(w.ctx) }

func (w *nativeWindow) IsMaximised() bool {
	return wruntime.WindowIsMaximised(w.ctx)
}

func (w *nativeWindow) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	callbacks := append([]func(){}, w.onClosed...)
	w.mu.Unlock()

	w.surface.markClosed()
	wruntime.WindowHide(w.ctx)
	for _, fn := range callbacks {
		fn()
	}
}

func (w *nativeWindow) OnClosed(fn func()) {
	w.mu.Lock()
	w.onClosed = append(w.onClosed, fn)
	w.mu.Unlock()
}

func (w *nativeWindow) Surface() window.Surface {
	return w.surface
}
