package menu

import (
	"sync"

	"github.com/example/webshell/internal/ipc"
	"github.com/example/webshell/internal/logging"
	"github.com/example/webshell/internal/protocol"
	"github.com/example/webshell/internal/window"
)

// Installer replaces the process-wide application menu. activate is called
// with the item's command whenever an item is clicked or its accelerator
// is pressed.
type Installer interface {
	InstallMenu(spec Spec, activate func(Command))
}

// Dialogs shows native informational dialogs.
type Dialogs interface {
	ShowInfo(title, message, detail string)
}

// WindowOps are the window operations a menu item may invoke directly.
type WindowOps interface {
	Minimize()
	ToggleMaximize()
	Close()
}

// Controller builds the application menu and dispatches its activations.
type Controller struct {
	installer Installer

	mu       sync.RWMutex
	handlers map[Command]func()
}

// NewController constructs the handler table for every Template command.
// Navigation items send host->surface messages on ch, window items call
// windows directly, About opens an info dialog and Quit calls quit.
func NewController(ch *ipc.Channel, windows WindowOps, installer Installer, dialogs Dialogs, quit func()) *Controller {
	send := func(msg protocol.Message) func() {
		return func() {
			if !ch.Attached() {
				logging.Debugf("menu: %s ignored, no window", msg)
				return
			}
			ch.Send(msg)
		}
	}

	return &Controller{
		installer: installer,
		handlers: map[Command]func(){
			CommandOpenURL:        send(protocol.ShowURLDialog),
			CommandForward:        send(protocol.GoForward),
			CommandBack:           send(protocol.GoBack),
			CommandReload:         send(protocol.Reload),
			CommandStop:           send(protocol.StopLoading),
			CommandToggleMaximize: windows.ToggleMaximize,
			CommandMinimize:       windows.Minimize,
			CommandClose:          windows.Close,
			CommandAbout: func() {
				dialogs.ShowInfo(AboutTitle, AboutMessage, AboutDetail)
			},
			CommandQuit: quit,
		},
	}
}

// Build installs Template as the application menu for h, replacing any
// prior menu, and returns the installed tree.
func (c *Controller) Build(h *window.Handle) Spec {
	spec := Template()
	if c.installer != nil {
		c.installer.InstallMenu(spec, func(cmd Command) { c.Activate(cmd) })
	}
	if h != nil {
		logging.Debugf("menu: installed %d groups for window %s", len(spec), h.ID)
	}
	return spec
}

// Activate runs the handler for cmd. It reports false for unknown commands.
func (c *Controller) Activate(cmd Command) bool {
	c.mu.RLock()
	fn := c.handlers[cmd]
	c.mu.RUnlock()

	if fn == nil {
		logging.Debugf("menu: no handler for %q", cmd)
		return false
	}
	logging.Debugf("menu: activating %s", cmd)
	fn()
	return true
}
