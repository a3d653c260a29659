// Package manager owns the composited pixel buffer and the windows
// built over it. Windows hold offset metadata only; every color write
// goes through the manager's buffer, keeping one logical writer.
package manager

import (
	"errors"
	"fmt"

	"github.com/1broseidon/fbdash/internal/compose"
	"github.com/1broseidon/fbdash/internal/fbdev"
)

// ErrWindowRange reports a window id outside the managed set.
var ErrWindowRange = errors.New("window id out of range")

// Manager composites windows into a private buffer sized to the display
// and flushes it to the device on Draw. Geometry and window layout are
// fixed at construction; a layout change means building a new Manager.
type Manager struct {
	dev     fbdev.Device
	geom    compose.Geometry
	buffer  []byte
	windows []compose.Window
}

// New queries the device geometry once, allocates a zeroed buffer, and
// builds one window per template in template order. Each template's ID
// must equal its position; windows are addressed positionally
// afterwards.
func New(dev fbdev.Device, templates []compose.Template) (*Manager, error) {
	geom := dev.Geometry()
	if err := geom.Validate(); err != nil {
		return nil, err
	}

	windows := make([]compose.Window, 0, len(templates))
	for i, tpl := range templates {
		if tpl.ID != i {
			return nil, fmt.Errorf("%w: template at position %d carries id %d", compose.ErrBadTemplate, i, tpl.ID)
		}
		w, err := compose.NewWindow(tpl, geom)
		if err != nil {
			return nil, fmt.Errorf("build window %d: %w", i, err)
		}
		windows = append(windows, w)
	}

	return &Manager{
		dev:     dev,
		geom:    geom,
		buffer:  make([]byte, geom.BufferSize()),
		windows: windows,
	}, nil
}

// Len returns the number of managed windows.
func (m *Manager) Len() int { return len(m.windows) }

// Geometry returns the display geometry the manager was built against.
func (m *Manager) Geometry() compose.Geometry { return m.geom }

// Buffer exposes the composited bytes, mainly for tests and tooling.
func (m *Manager) Buffer() []byte { return m.buffer }

// Window returns the window at id.
func (m *Manager) Window(id int) (*compose.Window, error) {
	if id < 0 || id >= len(m.windows) {
		return nil, fmt.Errorf("%w: id %d, %d windows", ErrWindowRange, id, len(m.windows))
	}
	return &m.windows[id], nil
}

// Fill sets the interior of window id to c. The buffer is untouched
// when id is out of range.
func (m *Manager) Fill(id int, c compose.Color) error {
	w, err := m.Window(id)
	if err != nil {
		return err
	}
	return w.FillMain(m.buffer, c)
}

// FillBorder sets the border of window id to c; no-op for a borderless
// window.
func (m *Manager) FillBorder(id int, c compose.Color) error {
	w, err := m.Window(id)
	if err != nil {
		return err
	}
	return w.FillBorder(m.buffer, c)
}

// Clear sets every addressable pixel of the buffer to c, regardless of
// window coverage.
func (m *Manager) Clear(c compose.Color) error {
	cols := m.geom.Columns()
	for row := 0; row < m.geom.Height; row++ {
		for col := 0; col < cols; col++ {
			p := compose.Pixel{Offset: row*m.geom.RowStride + col*m.geom.BytesPerPixel}
			if err := p.SetColor(m.buffer, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// Draw flushes the composited buffer to the display device. Callers
// must have the device in graphics mode for the frame to be visible on
// a console framebuffer.
func (m *Manager) Draw() error {
	if err := m.dev.WriteFrame(m.buffer); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
