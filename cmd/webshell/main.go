package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/wailsapp/wails/v2"

	"github.com/example/webshell/internal/config"
	"github.com/example/webshell/internal/ipc"
	"github.com/example/webshell/internal/lifecycle"
	"github.com/example/webshell/internal/logging"
	"github.com/example/webshell/internal/menu"
	"github.com/example/webshell/internal/native"
	"github.com/example/webshell/internal/security"
	"github.com/example/webshell/internal/window"
)

const (
	appTitle = "Local Browser"
	version  = "1.0.0"
)

type cliFlags struct {
	installDir string
	configPath string
	debug      bool
	keepAlive  bool
	tray       bool
	console    bool
}

func main() {
	if err := newRootCommand(&cliFlags{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand(f *cliFlags) *cobra.Command {
	root := &cobra.Command{
		Use:          "webshell",
		Short:        "Host a local web page in a frameless desktop window",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := resolveSettings(cmd, f)
			if err != nil {
				return err
			}
			return run(settings)
		},
	}

	fl := root.Flags()
	fl.StringVar(&f.installDir, "install-dir", "", "directory holding index.html, icon.svg and www/size.config")
	fl.StringVar(&f.configPath, "config", "", "path to the window size config")
	fl.BoolVar(&f.debug, "debug", false, "enable verbose logging")
	fl.BoolVar(&f.keepAlive, "keep-alive", false, "stay running after the window closes (defaults to the platform convention)")
	fl.BoolVar(&f.tray, "tray", false, "show a system tray icon mirroring the Browser menu")
	fl.BoolVar(&f.console, "console", false, "keep the console window visible on Windows")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "webshell %s\n", version)
		},
	})
	return root
}

// resolveSettings layers explicitly set flags over the WEBSHELL_* environment.
func resolveSettings(cmd *cobra.Command, f *cliFlags) (config.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return config.Settings{}, err
	}

	fl := cmd.Flags()
	if fl.Changed("install-dir") {
		settings.InstallDir = f.installDir
	}
	if fl.Changed("config") {
		settings.ConfigPath = f.configPath
	}
	if fl.Changed("debug") {
		settings.Debug = f.debug
	}
	if fl.Changed("keep-alive") {
		keepAlive := f.keepAlive
		settings.KeepAlive = &keepAlive
	}
	if fl.Changed("tray") {
		settings.Tray = f.tray
	}
	if fl.Changed("console") {
		settings.ShowConsole = f.console
	}
	return settings, nil
}

func resolvePaths(settings config.Settings) (string, window.Paths, error) {
	installDir, err := settings.ResolveInstallDir()
	if err != nil {
		return "", window.Paths{}, err
	}
	entry, err := config.FileURL(config.EntryPath(installDir))
	if err != nil {
		return "", window.Paths{}, err
	}
	return installDir, window.Paths{
		SizeConfig: settings.Path(installDir),
		EntryURL:   entry,
		Icon:       config.IconPath(installDir),
	}, nil
}

// instanceID scopes the single-instance lock to one install directory.
func instanceID(installDir string) string {
	return "webshell-" + uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+installDir)).String()
}

func run(settings config.Settings) error {
	logging.Setup(nil)
	if settings.Debug {
		logging.EnableDebug()
	} else {
		logging.DisableDebug()
	}

	installDir, paths, err := resolvePaths(settings)
	if err != nil {
		return fmt.Errorf("resolve install directory: %w", err)
	}
	logging.Printf("webshell %s starting from %s", version, installDir)
	logging.Debugf("size config %s, entry %s", paths.SizeConfig, logging.SanitizeURL(paths.EntryURL))

	ch := ipc.NewChannel()
	app := native.New()
	windows, err := window.NewController(app, ch, security.NewInsecurePolicy(), paths)
	if err != nil {
		return err
	}
	lc := lifecycle.New(windows, app, app, app, settings.KeepAliveEnabled())

	if settings.Tray {
		tray := menu.NewTray(menu.Template(), menu.LoadTrayIcon(installDir),
			func() {
				if err := lc.Activate(); err != nil {
					logging.Warnf("tray: show window: %v", err)
				}
			},
			func(cmd menu.Command) { lc.Menus().Activate(cmd) },
		)
		tray.Register()
		defer tray.Quit()
	}

	opts := app.Options(native.Config{
		Title:      appTitle,
		UniqueID:   instanceID(installDir),
		InstallDir: installDir,
		IconPath:   paths.Icon,
		Events: native.Events{
			Ready:          lc.Ready,
			Activate:       lc.Activate,
			CloseRequested: windows.Close,
			Quitting:       lc.Quitting,
			Receive:        ch.Receive,
		},
	})

	if err := wails.Run(opts); err != nil {
		return fmt.Errorf("run application: %w", err)
	}
	logging.Printf("exited")
	return nil
}
