package main

import (
	"fmt"

	"github.com/1broseidon/fbdash/internal/compose"
	"github.com/1broseidon/fbdash/internal/config"
	"github.com/1broseidon/fbdash/internal/fbdev"
)

// openDevice acquires the display backend the config selects.
func openDevice(cfg *config.Config) (fbdev.Device, error) {
	switch cfg.Device.Backend {
	case config.BackendFramebuffer, "":
		return fbdev.Open(cfg.Device.Path)
	case config.BackendX11:
		return fbdev.OpenX11Preview(cfg.Device.Width, cfg.Device.Height)
	case config.BackendMemory:
		return fbdev.NewMemory(compose.Geometry{
			Height:        cfg.Device.Height,
			RowStride:     cfg.Device.Width * 4,
			BytesPerPixel: 4,
		})
	default:
		return nil, fmt.Errorf("unknown device backend %q", cfg.Device.Backend)
	}
}
