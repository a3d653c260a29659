package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/fbdash/internal/manager"
	"github.com/1broseidon/fbdash/internal/mcp"
)

func printMCPUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: fbdash mcp <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve    Start the MCP server (stdio transport)")
}

func runMCP(args []string) int {
	if len(args) == 0 {
		printMCPUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "serve":
		return runMCPServe(args[1:])
	case "help", "-h", "--help":
		printMCPUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown mcp command: %s\n\n", args[0])
		printMCPUsage(os.Stderr)
		return 2
	}
}

// runMCPServe builds a manager over the configured device and serves
// the fill/draw tools on stdio until the client disconnects.
func runMCPServe(args []string) int {
	fs := flag.NewFlagSet("mcp serve", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file path (default: ~/.config/fbdash/config.yaml)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting MCP server", "windows", m.Len(), "backend", cfg.Device.Backend)
	if err := mcp.NewServer(m).Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "MCP server failed: %v\n", err)
		return 1
	}
	return 0
}
