package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/1broseidon/fbdash/internal/config"
	"github.com/1broseidon/fbdash/internal/fbdev"
	"github.com/1broseidon/fbdash/internal/manager"
)

// runShow composes the configured scene and presents it: enable
// graphics, draw, wait for a line of input, restore text mode. The
// restore is deferred so the console comes back on every exit path.
func runShow(args []string) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file path (default: ~/.config/fbdash/config.yaml)")
	noWait := fs.Bool("no-wait", false, "draw and exit without waiting for input")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Switching the console to graphics mode without a terminal to read
	// the closing newline from would leave no way back.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if !interactive && !*noWait && cfg.Device.Backend == config.BackendFramebuffer {
		fmt.Fprintln(os.Stderr, "stdin is not a terminal; refusing to enter graphics mode (use --no-wait)")
		return 1
	}

	dev, err := openDevice(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open display: %v\n", err)
		return 1
	}
	defer dev.Close()

	geom := dev.Geometry()
	templates, err := cfg.Templates(geom)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to lay out windows: %v\n", err)
		return 1
	}
	m, err := manager.New(dev, templates)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build windows: %v\n", err)
		return 1
	}

	fills, err := cfg.Scene()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve scene colors: %v\n", err)
		return 1
	}
	for _, f := range fills {
		if f.Border {
			err = m.FillBorder(f.ID, f.Color)
		} else {
			err = m.Fill(f.ID, f.Color)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to fill window %d: %v\n", f.ID, err)
			return 1
		}
	}

	slog.Info("composited scene",
		"windows", m.Len(),
		"fills", len(fills),
		"height", geom.Height,
		"row_stride", geom.RowStride)

	restore, err := fbdev.EnterGraphics(dev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to enter graphics mode: %v\n", err)
		return 1
	}
	defer func() {
		if err := restore(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to restore text mode: %v\n", err)
		}
	}()

	if err := m.Draw(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to draw: %v\n", err)
		return 1
	}

	if !*noWait {
		// Block until the user presses Enter, then restore the console.
		bufio.NewReader(os.Stdin).ReadString('\n')
	}
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}
