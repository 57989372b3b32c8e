// Package nativetest provides in-memory stand-ins for the native window
// backend and application so host logic can be exercised without a display.
package nativetest

import (
	"sync"

	"github.com/example/webshell/internal/menu"
	"github.com/example/webshell/internal/protocol"
	"github.com/example/webshell/internal/security"
	"github.com/example/webshell/internal/window"
)

// Surface records everything delivered to it and every load request.
type Surface struct {
	security.Hooks

	mu              sync.Mutex
	listening       map[protocol.Message]bool
	received        []protocol.Message
	loads           []string
	hooksBeforeLoad bool

	// LoadErr is returned from Load when set.
	LoadErr error
}

// NewSurface returns a surface with no listeners.
func NewSurface() *Surface {
	return &Surface{listening: make(map[protocol.Message]bool)}
}

// Listen marks msg as having a listener on the surface side.
func (s *Surface) Listen(msg protocol.Message) {
	s.mu.Lock()
	s.listening[msg] = true
	s.mu.Unlock()
}

// ListenAll listens for every host->surface message.
func (s *Surface) ListenAll() {
	for _, msg := range protocol.HostMessages() {
		s.Listen(msg)
	}
}

func (s *Surface) Deliver(msg protocol.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.listening[msg] {
		return false
	}
	s.received = append(s.received, msg)
	return true
}

// Received returns the delivered messages in order.
func (s *Surface) Received() []protocol.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]protocol.Message(nil), s.received...)
}

// Count returns how many times msg was delivered.
func (s *Surface) Count(msg protocol.Message) int {
	n := 0
	for _, m := range s.Received() {
		if m == msg {
			n++
		}
	}
	return n
}

func (s *Surface) Load(url string) error {
	installed := s.Installed()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.loads) == 0 {
		s.hooksBeforeLoad = installed
	}
	s.loads = append(s.loads, url)
	return s.LoadErr
}

// Loads returns every URL passed to Load.
func (s *Surface) Loads() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.loads...)
}

// HooksInstalledBeforeLoad reports whether all security hooks were set when
// the first Load happened.
func (s *Surface) HooksInstalledBeforeLoad() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hooksBeforeLoad
}

// Window is a fake native window.
type Window struct {
	Opts window.Options

	mu        sync.Mutex
	surface   *Surface
	minimised int
	maximised int
	restored  int
	isMax     bool
	closed    bool
	onClosed  []func()
}

func (w *Window) Minimise() {
	w.mu.Lock()
	w.minimised++
	w.mu.Unlock()
}

func (w *Window) Maximise() {
	w.mu.Lock()
	w.maximised++
	w.isMax = true
	w.mu.Unlock()
}

func (w *Window) Unmaximise() {
	w.mu.Lock()
	w.restored++
	w.isMax = false
	w.mu.Unlock()
}

func (w *Window) IsMaximised() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isMax
}

// Close marks the window closed and runs the OnClosed callbacks once.
func (w *Window) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	callbacks := append([]func(){}, w.onClosed...)
	w.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

func (w *Window) OnClosed(fn func()) {
	w.mu.Lock()
	w.onClosed = append(w.onClosed, fn)
	w.mu.Unlock()
}

func (w *Window) Surface() window.Surface {
	return w.surface
}

// Fake returns the concrete surface.
func (w *Window) Fake() *Surface {
	return w.surface
}

// Closed reports whether Close ran.
func (w *Window) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// Counts returns how many times minimise, maximise and unmaximise ran.
func (w *Window) Counts() (minimised, maximised, restored int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.minimised, w.maximised, w.restored
}

// Backend opens fake windows. Surfaces listen for every host message
// unless Silent is set, and fail every Load with LoadErr when it is set.
type Backend struct {
	Err     error
	LoadErr error
	Silent  bool

	mu      sync.Mutex
	windows []*Window
}

func (b *Backend) Open(opts window.Options) (window.Native, error) {
	if b.Err != nil {
		return nil, b.Err
	}
	s := NewSurface()
	s.LoadErr = b.LoadErr
	if !b.Silent {
		s.ListenAll()
	}
	w := &Window{Opts: opts, surface: s}

	b.mu.Lock()
	b.windows = append(b.windows, w)
	b.mu.Unlock()
	return w, nil
}

// Windows returns every window opened so far.
func (b *Backend) Windows() []*Window {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*Window(nil), b.windows...)
}

// Last returns the most recently opened window, or nil.
func (b *Backend) Last() *Window {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.windows) == 0 {
		return nil
	}
	return b.windows[len(b.windows)-1]
}

// Dialog is a recorded info dialog.
type Dialog struct {
	Title, Message, Detail string
}

// App records menu installs, dialogs and quit requests.
type App struct {
	mu       sync.Mutex
	spec     menu.Spec
	activate func(menu.Command)
	installs int
	dialogs  []Dialog
	quits    int
}

func (a *App) InstallMenu(spec menu.Spec, activate func(menu.Command)) {
	a.mu.Lock()
	a.spec = spec
	a.activate = activate
	a.installs++
	a.mu.Unlock()
}

// Menu returns the installed menu.
func (a *App) Menu() menu.Spec {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.spec
}

// Installs returns how many times a menu was installed.
func (a *App) Installs() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.installs
}

// Press simulates the accelerator being pressed. It reports false when no
// menu is installed or nothing is bound to accelerator.
func (a *App) Press(accelerator string) bool {
	a.mu.Lock()
	spec, activate := a.spec, a.activate
	a.mu.Unlock()

	if activate == nil {
		return false
	}
	item, ok := spec.Find(accelerator)
	if !ok {
		return false
	}
	activate(item.Command)
	return true
}

// Click simulates clicking the item labelled label in group.
func (a *App) Click(group, label string) bool {
	a.mu.Lock()
	spec, activate := a.spec, a.activate
	a.mu.Unlock()

	if activate == nil {
		return false
	}
	for _, g := range spec {
		if g.Label != group {
			continue
		}
		for _, item := range g.Items {
			if !item.Separator && item.Label == label {
				activate(item.Command)
				return true
			}
		}
	}
	return false
}

func (a *App) ShowInfo(title, message, detail string) {
	a.mu.Lock()
	a.dialogs = append(a.dialogs, Dialog{Title: title, Message: message, Detail: detail})
	a.mu.Unlock()
}

// Dialogs returns the info dialogs shown so far.
func (a *App) Dialogs() []Dialog {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Dialog(nil), a.dialogs...)
}

func (a *App) Quit() {
	a.mu.Lock()
	a.quits++
	a.mu.Unlock()
}

// Quits returns how many times Quit was called.
func (a *App) Quits() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.quits
}
