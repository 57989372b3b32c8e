package window

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/example/webshell/internal/config"
	"github.com/example/webshell/internal/ipc"
	"github.com/example/webshell/internal/logging"
	"github.com/example/webshell/internal/protocol"
	"github.com/example/webshell/internal/security"
)

// ErrNoBackend is returned when a Controller is built without a Backend.
var ErrNoBackend = errors.New("window: no native backend")

// Handle identifies the live primary window.
type Handle struct {
	ID     string
	Config config.WindowConfig

	native Native
}

// Paths locates the files consulted when a window is created.
type Paths struct {
	SizeConfig string
	EntryURL   string
	Icon       string
}

// Controller owns the single primary window. At most one window exists at a
// time; every control operation is a no-op while none does.
type Controller struct {
	backend Backend
	channel *ipc.Channel
	policy  *security.InsecurePolicy
	paths   Paths

	mu          sync.Mutex
	current     *Handle
	onDestroyed []func(*Handle)
}

// NewController wires a Controller to its backend and registers the
// window-control handlers on ch.
func NewController(backend Backend, ch *ipc.Channel, policy *security.InsecurePolicy, paths Paths) (*Controller, error) {
	if backend == nil {
		return nil, ErrNoBackend
	}
	if ch == nil {
		ch = ipc.NewChannel()
	}
	if policy == nil {
		policy = security.NewInsecurePolicy()
	}

	c := &Controller{
		backend: backend,
		channel: ch,
		policy:  policy,
		paths:   paths,
	}

	ch.Handle(protocol.WindowMinimize, c.Minimize)
	ch.Handle(protocol.WindowMaximize, c.ToggleMaximize)
	ch.Handle(protocol.WindowClose, c.Close)
	ch.Handle(protocol.SurfaceReady, func() {
		logging.Debugf("window: surface reported ready")
	})
	return c, nil
}

// Channel returns the command channel bound to the primary window.
func (c *Controller) Channel() *ipc.Channel {
	return c.channel
}

// Create builds the primary window sized from the size config, installs the
// security hooks, then loads the entry document. Calling Create while a
// window is active returns the existing handle.
func (c *Controller) Create() (*Handle, error) {
	c.mu.Lock()
	if c.current != nil {
		h := c.current
		c.mu.Unlock()
		logging.Debugf("window: %s already active, not creating another", h.ID)
		return h, nil
	}

	size := config.LoadWindowConfig(c.paths.SizeConfig)
	opts := Options{
		Width:      size.Width,
		Height:     size.Height,
		Frameless:  true,
		Background: Background,
		IconPath:   resolveIcon(c.paths.Icon),
	}

	native, err := c.backend.Open(opts)
	if err != nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("open window: %w", err)
	}

	h := &Handle{ID: uuid.NewString(), Config: size, native: native}
	surface := native.Surface()
	c.policy.Install(surface)
	native.OnClosed(func() { c.destroyed(h) })
	c.current = h
	c.channel.Attach(surface)
	c.mu.Unlock()

	logging.Printf("window %s created at %s", h.ID, size)

	if c.paths.EntryURL != "" {
		if err := surface.Load(c.paths.EntryURL); err != nil {
			logging.Warnf("window %s: load %s: %v", h.ID, logging.SanitizeURL(c.paths.EntryURL), err)
		}
	}
	return h, nil
}

// Current returns the live window, if any.
func (c *Controller) Current() (*Handle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current, c.current != nil
}

// OnDestroyed registers fn to run after the primary window is destroyed.
func (c *Controller) OnDestroyed(fn func(*Handle)) {
	c.mu.Lock()
	c.onDestroyed = append(c.onDestroyed, fn)
	c.mu.Unlock()
}

// Minimize minimises the primary window.
func (c *Controller) Minimize() {
	h, ok := c.Current()
	if !ok {
		logging.Debugf("window: minimize ignored, no window")
		return
	}
	h.native.Minimise()
}

// ToggleMaximize flips the primary window between maximised and restored.
func (c *Controller) ToggleMaximize() {
	h, ok := c.Current()
	if !ok {
		logging.Debugf("window: maximize ignored, no window")
		return
	}
	if h.native.IsMaximised() {
		h.native.Unmaximise()
		return
	}
	h.native.Maximise()
}

// Close closes the primary window.
func (c *Controller) Close() {
	h, ok := c.Current()
	if !ok {
		logging.Debugf("window: close ignored, no window")
		return
	}
	h.native.Close()
}

func (c *Controller) destroyed(h *Handle) {
	c.mu.Lock()
	if c.current != h {
		c.mu.Unlock()
		return
	}
	c.current = nil
	c.channel.Detach()
	subscribers := make([]func(*Handle), len(c.onDestroyed))
	copy(subscribers, c.onDestroyed)
	c.mu.Unlock()

	logging.Printf("window %s destroyed", h.ID)
	for _, fn := range subscribers {
		fn(h)
	}
}

func resolveIcon(path string) string {
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		logging.Debugf("window: icon %s unavailable, using platform default: %v", path, err)
		return ""
	}
	return path
}
