//go:build windows

package main

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/windows"
)

// The binary is built for the console subsystem so logs are visible when
// started from a terminal. Launched from Explorer it would leave an empty
// console behind, which is detached here unless asked for.
func init() {
	if consoleRequested(os.Getenv("WEBSHELL_SHOW_CONSOLE"), os.Args[1:]) {
		return
	}
	detachConsole()
}

func consoleRequested(env string, args []string) bool {
	if on, err := strconv.ParseBool(strings.TrimSpace(env)); err == nil && on {
		return true
	}
	for _, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(strings.TrimSpace(arg), "-"), "=")
		if !strings.EqualFold(name, "console") {
			continue
		}
		if !hasValue {
			return true
		}
		if on, err := strconv.ParseBool(value); err == nil && on {
			return true
		}
	}
	return false
}

func detachConsole() {
	kernel32 := windows.NewLazySystemDLL("kernel32.dll")
	user32 := windows.NewLazySystemDLL("user32.dll")

	hwnd, _, _ := kernel32.NewProc("GetConsoleWindow").Call()
	if hwnd == 0 {
		return
	}
	const swHide = 0
	user32.NewProc("ShowWindow").Call(hwnd, swHide)
	kernel32.NewProc("FreeConsole").Call()
}
