package protocol

// Message is a payload-less event name carried by the command channel.
type Message string

const (
	// ShowURLDialog asks the surface to display its URL entry UI.
	ShowURLDialog Message = "show-url-dialog"
	// GoForward navigates the surface forward in its history.
	GoForward Message = "go-forward"
	// GoBack navigates the surface backward in its history.
	GoBack Message = "go-back"
	// Reload reloads the surface's current content.
	Reload Message = "reload"
	// StopLoading aborts the surface's in-flight navigation.
	StopLoading Message = "stop-loading"

	// WindowMinimize asks the host to minimise the primary window.
	WindowMinimize Message = "window-minimize"
	// WindowMaximize asks the host to toggle maximise/restore.
	WindowMaximize Message = "window-maximize"
	// WindowClose asks the host to close the primary window.
	WindowClose Message = "window-close"

	// SurfaceReady is sent by the surface once its listeners are attached.
	SurfaceReady Message = "surface-ready"
)

// Direction describes which way a message flows.
type Direction int

const (
	Unknown Direction = iota
	HostToSurface
	SurfaceToHost
	Informational
)

func (d Direction) String() string {
	switch d {
	case HostToSurface:
		return "host->surface"
	case SurfaceToHost:
		return "surface->host"
	case Informational:
		return "informational"
	default:
		return "unknown"
	}
}

var directions = map[Message]Direction{
	ShowURLDialog:  HostToSurface,
	GoForward:      HostToSurface,
	GoBack:         HostToSurface,
	Reload:         HostToSurface,
	StopLoading:    HostToSurface,
	WindowMinimize: SurfaceToHost,
	WindowMaximize: SurfaceToHost,
	WindowClose:    SurfaceToHost,
	SurfaceReady:   Informational,
}

// DirectionOf reports the direction of m, or Unknown for unrecognised names.
func DirectionOf(m Message) Direction {
	return directions[m]
}

// HostMessages lists the host->surface names.
func HostMessages() []Message {
	return []Message{ShowURLDialog, GoForward, GoBack, Reload, StopLoading}
}

// SurfaceMessages lists the names the host listens for, including the
// informational ready signal.
func SurfaceMessages() []Message {
	return []Message{WindowMinimize, WindowMaximize, WindowClose, SurfaceReady}
}
