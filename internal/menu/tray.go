package menu

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/example/webshell/internal/logging"
)

const trayGroup = "Browser"

// Tray mirrors the Browser menu in the system tray and adds a Show Window
// entry that re-activates the application when no window is open.
type Tray struct {
	icon     []byte
	show     func()
	activate func(Command)
	rows     []trayRow

	mu     sync.Mutex
	cancel context.CancelFunc
}

type trayRow struct {
	label     string
	tooltip   string
	command   Command
	show      bool
	separator bool
}

// NewTray builds a tray for spec. show is called for Show Window and
// activate for every mirrored menu item.
func NewTray(spec Spec, icon []byte, show func(), activate func(Command)) *Tray {
	return &Tray{
		icon:     icon,
		show:     show,
		activate: activate,
		rows:     trayRows(spec),
	}
}

func trayRows(spec Spec) []trayRow {
	rows := []trayRow{
		{label: "Show Window", tooltip: "Open the browser window", show: true},
		{separator: true},
	}
	for _, group := range spec {
		if group.Label != trayGroup {
			continue
		}
		for _, item := range group.Items {
			if item.Separator {
				rows = append(rows, trayRow{separator: true})
				continue
			}
			rows = append(rows, trayRow{label: item.Label, tooltip: item.Accelerator, command: item.Command})
		}
	}
	return rows
}

func (t *Tray) click(row trayRow) {
	if row.show {
		if t.show != nil {
			t.show()
		}
		return
	}
	if t.activate != nil {
		t.activate(row.command)
	}
}

// LoadTrayIcon reads the platform tray icon from dir, returning nil when it
// is missing so the tray falls back to a text-only entry.
func LoadTrayIcon(dir string) []byte {
	name := "tray.png"
	if runtime.GOOS == "windows" {
		name = "tray.ico"
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		logging.Debugf("tray: icon %s unavailable: %v", name, err)
		return nil
	}
	return data
}
