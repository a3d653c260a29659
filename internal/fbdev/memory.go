package fbdev

import (
	"fmt"

	"github.com/1broseidon/fbdash/internal/compose"
)

// Memory is an in-process Device backed by a plain byte slice. It
// records the last presented frame and every mode change, which makes
// it the backend for tests and for headless tooling that only needs the
// composited bytes.
type Memory struct {
	geom   compose.Geometry
	frame  []byte
	mode   Mode
	writes int
	modes  []Mode
	closed bool
}

// NewMemory creates a memory device with the given geometry.
func NewMemory(geom compose.Geometry) (*Memory, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	return &Memory{
		geom:  geom,
		frame: make([]byte, geom.BufferSize()),
		mode:  ModeText,
	}, nil
}

func (m *Memory) Geometry() compose.Geometry { return m.geom }

func (m *Memory) WriteFrame(buf []byte) error {
	if m.closed {
		return fmt.Errorf("write frame: device closed")
	}
	if len(buf) != m.geom.BufferSize() {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrFrameSize, len(buf), m.geom.BufferSize())
	}
	copy(m.frame, buf)
	m.writes++
	return nil
}

func (m *Memory) SetMode(mode Mode) error {
	if m.closed {
		return fmt.Errorf("set mode: device closed")
	}
	m.mode = mode
	m.modes = append(m.modes, mode)
	return nil
}

func (m *Memory) Close() error {
	m.closed = true
	return nil
}

// LastFrame returns the most recently presented frame.
func (m *Memory) LastFrame() []byte { return m.frame }

// Writes returns how many frames have been presented.
func (m *Memory) Writes() int { return m.writes }

// Mode returns the current mode.
func (m *Memory) Mode() Mode { return m.mode }

// ModeHistory returns every mode transition in order.
func (m *Memory) ModeHistory() []Mode { return m.modes }
