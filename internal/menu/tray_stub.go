//go:build !cgo && !windows
// +build !cgo,!windows

package menu

import "github.com/example/webshell/internal/logging"

// Register logs that the tray is unavailable without cgo support.
func (t *Tray) Register() {
	logging.Printf("system tray is unavailable without cgo support")
}

// Quit is a no-op without cgo support.
func (t *Tray) Quit() {}
