package ipc

import (
	"sync"

	"github.com/example/webshell/internal/logging"
	"github.com/example/webshell/internal/protocol"
)

// Surface is the rendering side of the channel.
type Surface interface {
	// Deliver hands msg to the surface and reports whether anything was
	// listening for it.
	Deliver(msg protocol.Message) bool
}

// Handler reacts to a message arriving from the surface.
type Handler func()

// Channel carries fire-and-forget messages between the host and the
// rendering surface of the primary window. It is only valid while a surface
// is attached; otherwise every operation is a silent no-op.
type Channel struct {
	mu       sync.RWMutex
	surface  Surface
	handlers map[protocol.Message]Handler
}

// NewChannel constructs a detached channel with an empty handler table.
func NewChannel() *Channel {
	return &Channel{handlers: make(map[protocol.Message]Handler)}
}

// Attach binds the channel to the surface of a newly created window.
func (c *Channel) Attach(s Surface) {
	c.mu.Lock()
	c.surface = s
	c.mu.Unlock()
}

// Detach unbinds the channel when the window is destroyed.
func (c *Channel) Detach() {
	c.mu.Lock()
	c.surface = nil
	c.mu.Unlock()
}

// Attached reports whether a surface is currently bound.
func (c *Channel) Attached() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.surface != nil
}

// Handle registers h for an inbound message name, replacing any previous
// handler for that name.
func (c *Channel) Handle(msg protocol.Message, h Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if h == nil {
		delete(c.handlers, msg)
		return
	}
	c.handlers[msg] = h
}

// Send delivers a host->surface message at most once. It reports false when
// the message was dropped: wrong direction, no window, or no listener.
func (c *Channel) Send(msg protocol.Message) bool {
	if protocol.DirectionOf(msg) != protocol.HostToSurface {
		logging.Debugf("ipc: refusing to send %q toward the surface", msg)
		return false
	}

	c.mu.RLock()
	s := c.surface
	c.mu.RUnlock()

	if s == nil {
		logging.Debugf("ipc: dropped %s, no window", msg)
		return false
	}
	if !s.Deliver(msg) {
		logging.Debugf("ipc: dropped %s, surface not listening", msg)
		return false
	}
	logging.Debugf("ipc: sent %s", msg)
	return true
}

// Receive dispatches a message arriving from the surface to its handler. It
// reports false when the message was ignored.
func (c *Channel) Receive(msg protocol.Message) bool {
	switch protocol.DirectionOf(msg) {
	case protocol.SurfaceToHost, protocol.Informational:
	default:
		logging.Debugf("ipc: ignoring unexpected inbound message %q", msg)
		return false
	}

	c.mu.RLock()
	attached := c.surface != nil
	h := c.handlers[msg]
	c.mu.RUnlock()

	if !attached {
		logging.Debugf("ipc: ignored %s, no window", msg)
		return false
	}
	if h == nil {
		logging.Debugf("ipc: no handler for %s", msg)
		return false
	}
	logging.Debugf("ipc: received %s", msg)
	h()
	return true
}
