// Package config loads and validates the fbdash YAML configuration:
// which display backend to open, the window set (explicit list or
// auto-layout), and the scene colors applied before drawing.
package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/1broseidon/fbdash/internal/compose"
	"github.com/1broseidon/fbdash/internal/layout"
)

// Backend selects the display device implementation.
type Backend string

const (
	BackendFramebuffer Backend = "fb"     // Linux framebuffer console
	BackendX11         Backend = "x11"    // windowed X11 preview
	BackendMemory      Backend = "memory" // in-memory, headless
)

// DeviceConfig selects and parameterizes the display backend. Width and
// height apply to the x11 and memory backends only; the framebuffer
// reports its own geometry.
type DeviceConfig struct {
	Backend Backend `yaml:"backend"`
	Path    string  `yaml:"path,omitempty"`   // fb backend: device node, default /dev/fb0
	Width   int     `yaml:"width,omitempty"`  // x11/memory: 0 = screen width
	Height  int     `yaml:"height,omitempty"` // x11/memory: 0 = screen height
}

// WindowConfig declares one window and its scene colors. Colors are
// "#rrggbb" hex strings; an empty string means no fill for that region.
type WindowConfig struct {
	X          int    `yaml:"x"`
	Y          int    `yaml:"y"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Border     int    `yaml:"border,omitempty"`
	Fill       string `yaml:"fill,omitempty"`
	BorderFill string `yaml:"border_fill,omitempty"`
}

// LayoutConfig arranges Count identical windows automatically instead
// of listing them. Mutually exclusive with the windows list.
type LayoutConfig struct {
	Mode       layout.Mode `yaml:"mode"`
	Count      int         `yaml:"count"`
	Rows       int         `yaml:"rows,omitempty"`
	Cols       int         `yaml:"cols,omitempty"`
	Gap        int         `yaml:"gap,omitempty"`
	Border     int         `yaml:"border,omitempty"`
	Fill       string      `yaml:"fill,omitempty"`
	BorderFill string      `yaml:"border_fill,omitempty"`
}

// Config is the root configuration.
type Config struct {
	Device  DeviceConfig   `yaml:"device"`
	Windows []WindowConfig `yaml:"windows,omitempty"`
	Layout  *LayoutConfig  `yaml:"layout,omitempty"`
}

// SceneFill is one color application resolved from the config.
type SceneFill struct {
	ID     int
	Color  compose.Color
	Border bool
}

// Default returns the built-in five-window dashboard over a 1280x1024
// display: bordered background, title, picture, status, and bargraph
// panes.
func Default() *Config {
	return &Config{
		Device: DeviceConfig{Backend: BackendFramebuffer},
		Windows: []WindowConfig{
			{X: 0, Y: 0, Width: 1280, Height: 1024, Border: 5, BorderFill: "#ff0000"},
			{X: 0, Y: 0, Width: 854, Height: 512, Fill: "#00ff00"},
			{X: 854, Y: 0, Width: 426, Height: 512, Border: 5, Fill: "#0000ff"},
			{X: 0, Y: 512, Width: 1280, Height: 410, Fill: "#ffff00"},
			{X: 0, Y: 922, Width: 1280, Height: 102, Border: 5, Fill: "#00ffff"},
		},
	}
}

// ParseColor parses a "#rrggbb" hex string into a Color.
func ParseColor(s string) (compose.Color, error) {
	c, err := colorful.Hex(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return compose.Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return compose.Color{R: r, G: g, B: b}, nil
}

// Validate checks the configuration without touching a device.
func (c *Config) Validate() error {
	switch c.Device.Backend {
	case BackendFramebuffer, BackendX11, BackendMemory, "":
	default:
		return fmt.Errorf("unknown device backend %q (want fb, x11 or memory)", c.Device.Backend)
	}
	if c.Device.Backend == BackendMemory && (c.Device.Width <= 0 || c.Device.Height <= 0) {
		return fmt.Errorf("memory backend needs explicit width and height")
	}
	if len(c.Windows) > 0 && c.Layout != nil {
		return fmt.Errorf("windows and layout are mutually exclusive")
	}
	if c.Layout != nil && c.Layout.Count <= 0 {
		return fmt.Errorf("layout.count must be positive, got %d", c.Layout.Count)
	}
	if l := c.Layout; l != nil && l.Mode == layout.ModeFixed && l.Rows*l.Cols < l.Count {
		return fmt.Errorf("layout: %d windows do not fit a %dx%d grid", l.Count, l.Rows, l.Cols)
	}
	for i, w := range c.Windows {
		if w.Width <= 0 || w.Height <= 0 {
			return fmt.Errorf("window %d: size %dx%d", i, w.Width, w.Height)
		}
		if w.X < 0 || w.Y < 0 {
			return fmt.Errorf("window %d: location (%d,%d)", i, w.X, w.Y)
		}
		if w.Border < 0 || (w.Border > 0 && 2*w.Border >= minInt(w.Width, w.Height)) {
			return fmt.Errorf("window %d: border %d leaves no interior in %dx%d", i, w.Border, w.Width, w.Height)
		}
		for _, col := range []string{w.Fill, w.BorderFill} {
			if col == "" {
				continue
			}
			if _, err := ParseColor(col); err != nil {
				return fmt.Errorf("window %d: %w", i, err)
			}
		}
		if w.BorderFill != "" && w.Border == 0 {
			return fmt.Errorf("window %d: border_fill without a border", i)
		}
	}
	if l := c.Layout; l != nil {
		for _, col := range []string{l.Fill, l.BorderFill} {
			if col == "" {
				continue
			}
			if _, err := ParseColor(col); err != nil {
				return fmt.Errorf("layout: %w", err)
			}
		}
		if l.BorderFill != "" && l.Border == 0 {
			return fmt.Errorf("layout: border_fill without a border")
		}
	}
	return nil
}

// Templates resolves the configured window set against the display
// geometry, in declaration order.
func (c *Config) Templates(geom compose.Geometry) ([]compose.Template, error) {
	if c.Layout != nil {
		return layout.Plan(c.Layout.Count, geom, layout.Spec{
			Mode:   c.Layout.Mode,
			Rows:   c.Layout.Rows,
			Cols:   c.Layout.Cols,
			Gap:    c.Layout.Gap,
			Border: c.Layout.Border,
		})
	}
	templates := make([]compose.Template, len(c.Windows))
	for i, w := range c.Windows {
		templates[i] = compose.Template{
			ID:              i,
			Location:        compose.Point{X: w.X, Y: w.Y},
			Width:           w.Width,
			Height:          w.Height,
			BorderThickness: w.Border,
		}
	}
	return templates, nil
}

// Scene resolves the configured fills, in application order: for each
// window the interior fill first, then the border fill.
func (c *Config) Scene() ([]SceneFill, error) {
	var fills []SceneFill
	add := func(id int, spec string, border bool) error {
		if spec == "" {
			return nil
		}
		col, err := ParseColor(spec)
		if err != nil {
			return err
		}
		fills = append(fills, SceneFill{ID: id, Color: col, Border: border})
		return nil
	}

	if l := c.Layout; l != nil {
		for i := 0; i < l.Count; i++ {
			if err := add(i, l.Fill, false); err != nil {
				return nil, err
			}
			if err := add(i, l.BorderFill, true); err != nil {
				return nil, err
			}
		}
		return fills, nil
	}
	for i, w := range c.Windows {
		if err := add(i, w.Fill, false); err != nil {
			return nil, err
		}
		if err := add(i, w.BorderFill, true); err != nil {
			return nil, err
		}
	}
	return fills, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
