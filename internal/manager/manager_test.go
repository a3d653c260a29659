package manager

import (
	"bytes"
	"errors"
	"testing"

	"github.com/1broseidon/fbdash/internal/compose"
	"github.com/1broseidon/fbdash/internal/fbdev"
)

func newMemoryManager(t *testing.T, geom compose.Geometry, templates []compose.Template) (*Manager, *fbdev.Memory) {
	t.Helper()
	dev, err := fbdev.NewMemory(geom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, err := New(dev, templates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m, dev
}

func TestFillFullScreenWindow(t *testing.T) {
	geom := compose.Geometry{Height: 1000, RowStride: 4000, BytesPerPixel: 4}
	m, _ := newMemoryManager(t, geom, []compose.Template{
		{ID: 0, Location: compose.Point{}, Width: 1000, Height: 1000},
	})

	if err := m.Fill(0, compose.Color{R: 255}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	buf := m.Buffer()
	for i := 0; i < 1000; i++ {
		for q := 0; q < 1000; q++ {
			idx := i*4000 + q*4
			if buf[idx] != 0 || buf[idx+1] != 0 || buf[idx+2] != 255 {
				t.Fatalf("pixel (%d,%d): expected BGR [0 0 255], got %v", i, q, buf[idx:idx+3])
			}
		}
	}
}

func TestFillOutOfRangeLeavesBufferUntouched(t *testing.T) {
	geom := compose.Geometry{Height: 100, RowStride: 400, BytesPerPixel: 4}
	m, _ := newMemoryManager(t, geom, []compose.Template{
		{ID: 0, Width: 10, Height: 10},
		{ID: 1, Location: compose.Point{X: 20}, Width: 10, Height: 10},
		{ID: 2, Location: compose.Point{X: 40}, Width: 10, Height: 10},
	})

	before := make([]byte, len(m.Buffer()))
	copy(before, m.Buffer())

	if err := m.Fill(5, compose.Color{R: 1}); !errors.Is(err, ErrWindowRange) {
		t.Fatalf("expected ErrWindowRange, got %v", err)
	}
	if err := m.FillBorder(-1, compose.Color{R: 1}); !errors.Is(err, ErrWindowRange) {
		t.Fatalf("expected ErrWindowRange, got %v", err)
	}
	if !bytes.Equal(before, m.Buffer()) {
		t.Fatalf("failed fill mutated the buffer")
	}
}

func TestFillBorderAndInteriorAreDisjointWrites(t *testing.T) {
	geom := compose.Geometry{Height: 300, RowStride: 1200, BytesPerPixel: 4}
	m, _ := newMemoryManager(t, geom, []compose.Template{
		{ID: 0, Location: compose.Point{X: 10, Y: 10}, Width: 200, Height: 200, BorderThickness: 10},
	})

	interior := compose.Color{G: 255}
	frame := compose.Color{R: 255}
	if err := m.Fill(0, interior); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.FillBorder(0, frame); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, err := m.Window(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The border fill must not have bled into the interior.
	for _, row := range w.Main.Pixels {
		for _, p := range row {
			got, err := p.GetColor(m.Buffer())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != interior {
				t.Fatalf("interior pixel at offset %d overwritten by border fill: %+v", p.Offset, got)
			}
		}
	}
	// Corner pixel belongs to the top strip and carries the frame color.
	corner := compose.Pixel{Offset: 10*geom.RowStride + 10*geom.BytesPerPixel}
	got, err := corner.GetColor(m.Buffer())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != frame {
		t.Fatalf("expected corner to carry the border color, got %+v", got)
	}
}

func TestNewRejectsMismatchedTemplateID(t *testing.T) {
	dev, err := fbdev.NewMemory(compose.Geometry{Height: 100, RowStride: 400, BytesPerPixel: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = New(dev, []compose.Template{
		{ID: 0, Width: 10, Height: 10},
		{ID: 5, Location: compose.Point{X: 20}, Width: 10, Height: 10},
	})
	if !errors.Is(err, compose.ErrBadTemplate) {
		t.Fatalf("expected ErrBadTemplate for id/position mismatch, got %v", err)
	}
}

func TestNewRejectsTemplateOffDisplay(t *testing.T) {
	dev, err := fbdev.NewMemory(compose.Geometry{Height: 100, RowStride: 400, BytesPerPixel: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = New(dev, []compose.Template{
		{ID: 0, Location: compose.Point{Y: 50}, Width: 10, Height: 60},
	})
	if !errors.Is(err, compose.ErrBadTemplate) {
		t.Fatalf("expected ErrBadTemplate, got %v", err)
	}
}

func TestDrawPresentsBuffer(t *testing.T) {
	geom := compose.Geometry{Height: 20, RowStride: 80, BytesPerPixel: 4}
	m, dev := newMemoryManager(t, geom, []compose.Template{
		{ID: 0, Width: 20, Height: 20},
	})

	if err := m.Fill(0, compose.Color{B: 7}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Draw(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dev.Writes() != 1 {
		t.Fatalf("expected one presented frame, got %d", dev.Writes())
	}
	if !bytes.Equal(dev.LastFrame(), m.Buffer()) {
		t.Fatalf("presented frame differs from composited buffer")
	}
}

func TestClearCoversEveryAddressablePixel(t *testing.T) {
	geom := compose.Geometry{Height: 5, RowStride: 33, BytesPerPixel: 3}
	m, _ := newMemoryManager(t, geom, nil)

	c := compose.Color{R: 9, G: 8, B: 7}
	if err := m.Clear(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for row := 0; row < geom.Height; row++ {
		for col := 0; col < geom.Columns(); col++ {
			p := compose.Pixel{Offset: row*geom.RowStride + col*geom.BytesPerPixel}
			got, err := p.GetColor(m.Buffer())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c {
				t.Fatalf("pixel (%d,%d) not cleared: %+v", row, col, got)
			}
		}
	}
}
