package window

import (
	"fmt"

	"github.com/example/webshell/internal/ipc"
	"github.com/example/webshell/internal/security"
)

// Colour is an RGBA background colour.
type Colour struct {
	R, G, B, A uint8
}

func (c Colour) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Background is the fixed lavender backdrop painted before the entry
// document renders.
var Background = Colour{R: 0xf0, G: 0xe6, B: 0xff, A: 0xff}

// Options describes the native window to instantiate.
type Options struct {
	Width      int
	Height     int
	Frameless  bool
	Background Colour
	// IconPath is empty when the platform default icon should be used.
	IconPath string
}

// Surface is the rendering surface hosted by a native window.
type Surface interface {
	ipc.Surface
	security.HookRegistry
	// Load navigates the surface to url.
	Load(url string) error
}

// Native is a live top-level window provided by a Backend.
type Native interface {
	Minimise()
	Maximise()
	Unmaximise()
	IsMaximised() bool
	// Close destroys the window. Callbacks registered with OnClosed run once
	// the window is gone.
	Close()
	OnClosed(fn func())
	Surface() Surface
}

// Backend instantiates native windows.
type Backend interface {
	Open(opts Options) (Native, error)
}
