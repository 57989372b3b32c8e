package native

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	wruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/example/webshell/internal/logging"
	"github.com/example/webshell/internal/protocol"
	"github.com/example/webshell/internal/security"
)

// surface is the page hosted by the runtime's webview. Host messages are
// emitted as runtime events once the page reports surface-ready.
//
// The webview does not expose certificate, client certificate or content
// policy events, so the installed hooks are stored but never raised here.
// Under this backend no certificate bypass takes effect: the engine's own
// TLS and content policy handling applies unchanged.
type surface struct {
	security.Hooks

	ctx context.Context

	mu     sync.Mutex
	ready  bool
	closed bool
}

func (s *surface) markReady() {
	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()
}

func (s *surface) markClosed() {
	s.mu.Lock()
	s.closed = true
	s.ready = false
	s.mu.Unlock()
}

func (s *surface) listening() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready && !s.closed
}

func (s *surface) Deliver(msg protocol.Message) bool {
	if !s.listening() {
		return false
	}
	wruntime.EventsEmit(s.ctx, string(msg))
	return true
}

// Load navigates the page. Local documents are served by the runtime's asset
// server, so they reload the app instead of leaving it.
func (s *surface) Load(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.ready = false
	s.mu.Unlock()

	if u.Scheme == "file" {
		logging.Debugf("native: loading local entry %s", logging.SanitizeURL(raw))
		wruntime.WindowReloadApp(s.ctx)
		return nil
	}
	logging.Debugf("native: navigating to %s", logging.SanitizeURL(raw))
	wruntime.WindowExecJS(s.ctx, "window.location.href = "+strconv.Quote(raw)+";")
	return nil
}
