package main

import (
	"flag"
	"fmt"
	"os"
)

// runInfo opens the configured display and prints its geometry.
func runInfo(args []string) int {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
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
	fmt.Printf("backend:         %s\n", cfg.Device.Backend)
	fmt.Printf("height:          %d rows\n", geom.Height)
	fmt.Printf("row stride:      %d bytes\n", geom.RowStride)
	fmt.Printf("bytes per pixel: %d\n", geom.BytesPerPixel)
	fmt.Printf("columns:         %d\n", geom.Columns())
	fmt.Printf("buffer size:     %d bytes\n", geom.BufferSize())
	return 0
}
