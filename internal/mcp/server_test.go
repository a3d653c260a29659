package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/1broseidon/fbdash/internal/compose"
	"github.com/1broseidon/fbdash/internal/fbdev"
	"github.com/1broseidon/fbdash/internal/manager"
)

func newTestServer(t *testing.T) (*Server, *fbdev.Memory) {
	t.Helper()
	geom := compose.Geometry{Height: 100, RowStride: 400, BytesPerPixel: 4}
	dev, err := fbdev.NewMemory(geom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mgr, err := manager.New(dev, []compose.Template{
		{ID: 0, Width: 100, Height: 100, BorderThickness: 10},
		{ID: 1, Location: compose.Point{X: 50, Y: 50}, Width: 40, Height: 40},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewServer(mgr), dev
}

func TestListWindows(t *testing.T) {
	s, _ := newTestServer(t)
	_, out, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RowStride != 400 || out.Height != 100 {
		t.Fatalf("unexpected geometry in output: %+v", out)
	}
	if len(out.Windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(out.Windows))
	}
	if !out.Windows[0].HasBorder || out.Windows[0].Border != 10 {
		t.Fatalf("window 0 must report its border: %+v", out.Windows[0])
	}
	if out.Windows[0].X != 0 || out.Windows[0].Y != 0 {
		t.Fatalf("window 0 must report the footprint origin, got (%d,%d)", out.Windows[0].X, out.Windows[0].Y)
	}
	if out.Windows[1].HasBorder || out.Windows[1].X != 50 {
		t.Fatalf("window 1 mismatch: %+v", out.Windows[1])
	}
}

func TestFillWindowAndDraw(t *testing.T) {
	s, dev := newTestServer(t)
	ctx := context.Background()

	_, out, err := s.handleFillWindow(ctx, nil, FillWindowInput{ID: 0, Color: "#ff0000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Pixels != 80*80 {
		t.Fatalf("expected %d interior pixels, got %d", 80*80, out.Pixels)
	}

	_, bout, err := s.handleFillBorder(ctx, nil, FillBorderInput{ID: 0, Color: "#0000ff"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bout.Pixels != 100*100-80*80 {
		t.Fatalf("expected %d border pixels, got %d", 100*100-80*80, bout.Pixels)
	}

	if _, _, err := s.handleDraw(ctx, nil, DrawInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dev.Writes() != 1 {
		t.Fatalf("expected one presented frame, got %d", dev.Writes())
	}

	// Interior pixel at screen (50,50): red, BGR order in the frame.
	frame := dev.LastFrame()
	idx := 50*400 + 50*4
	if frame[idx] != 0 || frame[idx+1] != 0 || frame[idx+2] != 255 {
		t.Fatalf("expected red interior at offset %d, got %v", idx, frame[idx:idx+3])
	}
	// Corner (0,0) belongs to the border: blue.
	if frame[0] != 255 || frame[2] != 0 {
		t.Fatalf("expected blue border corner, got %v", frame[0:3])
	}
}

func TestFillWindowErrors(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	if _, _, err := s.handleFillWindow(ctx, nil, FillWindowInput{ID: 7, Color: "#ffffff"}); err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("expected out-of-range error, got %v", err)
	}
	if _, _, err := s.handleFillWindow(ctx, nil, FillWindowInput{ID: 0, Color: "teal"}); err == nil || !strings.Contains(err.Error(), "parse color") {
		t.Fatalf("expected color parse error, got %v", err)
	}
}

func TestClear(t *testing.T) {
	s, _ := newTestServer(t)
	_, out, err := s.handleClear(context.Background(), nil, ClearInput{Color: "#808080"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Pixels != 100*100 {
		t.Fatalf("expected %d cleared pixels, got %d", 100*100, out.Pixels)
	}
	buf := s.mgr.Buffer()
	if buf[0] != 0x80 || buf[1] != 0x80 || buf[2] != 0x80 {
		t.Fatalf("expected gray pixels, got %v", buf[0:3])
	}
}
