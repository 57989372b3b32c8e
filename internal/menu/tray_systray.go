//go:build cgo || windows
// +build cgo windows

package menu

import (
	"context"

	"github.com/getlantern/systray"

	"github.com/example/webshell/internal/logging"
)

// Register attaches the tray to the event loop owned by the window runtime.
// It does not block.
func (t *Tray) Register() {
	systray.Register(t.onReady, t.onExit)
}

// Quit removes the tray icon.
func (t *Tray) Quit() {
	systray.Quit()
}

func (t *Tray) onReady() {
	if len(t.icon) > 0 {
		systray.SetIcon(t.icon)
		setTemplateIcon(t.icon)
	}
	systray.SetTitle("")
	systray.SetTooltip("Local Browser")

	ctx, cancel := context.WithCancel(context.Background())
	t.mu.Lock()
	t.cancel = cancel
	t.mu.Unlock()

	for _, row := range t.rows {
		if row.separator {
			systray.AddSeparator()
			continue
		}
		mi := systray.AddMenuItem(row.label, row.tooltip)
		go t.listen(ctx, mi.ClickedCh, row)
	}
	logging.Debugf("tray: registered %d entries", len(t.rows))
}

func (t *Tray) listen(ctx context.Context, ch <-chan struct{}, row trayRow) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			t.click(row)
		}
	}
}

func (t *Tray) onExit() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}
