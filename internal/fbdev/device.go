// Package fbdev provides the display-device backends the compositor
// draws to: the Linux framebuffer console, an X11 preview window, and an
// in-memory device for tests and headless runs.
package fbdev

import (
	"errors"
	"fmt"

	"github.com/1broseidon/fbdash/internal/compose"
)

// Mode is the console display mode.
type Mode int

const (
	ModeText Mode = iota
	ModeGraphics
)

func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeGraphics:
		return "graphics"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ErrFrameSize reports a frame whose length does not match the device
// geometry.
var ErrFrameSize = errors.New("frame length does not match device geometry")

// Device is the compositor's view of a display. Geometry is fixed for
// the lifetime of the handle; WriteFrame expects exactly
// RowStride*Height bytes. SetMode toggles global console state shared by
// every handle in the process, so concurrent toggling must be
// serialized by the caller.
type Device interface {
	Geometry() compose.Geometry
	WriteFrame(buf []byte) error
	SetMode(m Mode) error
	Close() error
}

// EnterGraphics switches the device into graphics mode and returns the
// restore func that switches it back. Callers must defer the restore so
// the console leaves graphics mode on every exit path, errors included.
func EnterGraphics(d Device) (restore func() error, err error) {
	if err := d.SetMode(ModeGraphics); err != nil {
		return nil, fmt.Errorf("enter graphics mode: %w", err)
	}
	return func() error {
		if err := d.SetMode(ModeText); err != nil {
			return fmt.Errorf("restore text mode: %w", err)
		}
		return nil
	}, nil
}
