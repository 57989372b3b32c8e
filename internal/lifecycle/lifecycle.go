// Package lifecycle drives the application through startup, re-activation,
// all-windows-closed and quit.
package lifecycle

import (
	"errors"
	"fmt"
	"sync"

	"github.com/example/webshell/internal/logging"
	"github.com/example/webshell/internal/menu"
	"github.com/example/webshell/internal/window"
)

// ErrQuitting is returned when a window is requested after quit began.
var ErrQuitting = errors.New("lifecycle: application is quitting")

// Quitter terminates the native application loop.
type Quitter interface {
	Quit()
}

// Lifecycle reacts to application events. Exactly one primary window exists
// while the application is usable; closing it quits the process unless the
// platform keeps applications alive in the background.
type Lifecycle struct {
	windows   *window.Controller
	menus     *menu.Controller
	native    Quitter
	keepAlive bool

	mu       sync.Mutex
	quitting bool
}

// New wires the window controller, the application menu and the native quit
// hook together. keepAlive selects the background-app convention.
func New(windows *window.Controller, installer menu.Installer, dialogs menu.Dialogs, native Quitter, keepAlive bool) *Lifecycle {
	l := &Lifecycle{
		windows:   windows,
		native:    native,
		keepAlive: keepAlive,
	}
	l.menus = menu.NewController(windows.Channel(), windows, installer, dialogs, l.Quit)
	windows.OnDestroyed(func(*window.Handle) { l.WindowsClosed() })
	return l
}

// Menus returns the application menu controller.
func (l *Lifecycle) Menus() *menu.Controller {
	return l.menus
}

// Ready runs once the native runtime has initialised. It opens the primary
// window and installs the application menu.
func (l *Lifecycle) Ready() error {
	logging.Printf("lifecycle: ready (keep-alive %t)", l.keepAlive)
	return l.open()
}

// Activate handles re-activation, such as a dock click or a second launch.
// A window is created only when none exists.
func (l *Lifecycle) Activate() error {
	if _, ok := l.windows.Current(); ok {
		logging.Debugf("lifecycle: activate with a live window, nothing to do")
		return nil
	}
	logging.Printf("lifecycle: activate with no window, recreating")
	return l.open()
}

func (l *Lifecycle) open() error {
	if l.Quitting() {
		return ErrQuitting
	}
	h, err := l.windows.Create()
	if err != nil {
		return fmt.Errorf("create primary window: %w", err)
	}
	l.menus.Build(h)
	return nil
}

// WindowsClosed runs after the last window is gone.
func (l *Lifecycle) WindowsClosed() {
	if l.keepAlive {
		logging.Printf("lifecycle: all windows closed, staying resident")
		return
	}
	logging.Printf("lifecycle: all windows closed, quitting")
	l.Quit()
}

// Quit terminates the application. Repeated calls are ignored.
func (l *Lifecycle) Quit() {
	l.mu.Lock()
	if l.quitting {
		l.mu.Unlock()
		return
	}
	l.quitting = true
	l.mu.Unlock()

	logging.Printf("lifecycle: quit requested")
	if l.native != nil {
		l.native.Quit()
	}
}

// Quitting reports whether Quit has been called.
func (l *Lifecycle) Quitting() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.quitting
}
