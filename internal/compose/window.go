package compose

import "fmt"

// Border frames a window with four disjoint rectangles of uniform
// thickness. Top and bottom span the window's full width and own the
// corner pixels; left and right are inset vertically by the thickness.
// Changing that corner ownership would change rendered output, so the
// construction order in NewWindow preserves it exactly.
type Border struct {
	Top    Rectangle
	Bottom Rectangle
	Left   Rectangle
	Right  Rectangle
}

// Window is a rectangular screen region: an optional border frame plus
// the main content rectangle filling the interior.
type Window struct {
	Border *Border
	Width  int
	Height int
	Main   Rectangle
}

// Template declares a window before construction. ID must equal the
// template's position in the slice handed to the manager; windows are
// stored and addressed positionally.
type Template struct {
	ID              int
	Location        Point
	Width           int
	Height          int
	BorderThickness int
}

// Validate rejects templates that would produce degenerate regions or
// out-of-range offsets, before any offset is computed.
func (t Template) Validate(geom Geometry) error {
	if err := geom.Validate(); err != nil {
		return err
	}
	if t.Location.X < 0 || t.Location.Y < 0 {
		return fmt.Errorf("%w: window %d located at (%d,%d)", ErrBadTemplate, t.ID, t.Location.X, t.Location.Y)
	}
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("%w: window %d sized %dx%d", ErrBadTemplate, t.ID, t.Width, t.Height)
	}
	if t.BorderThickness < 0 {
		return fmt.Errorf("%w: window %d border thickness %d", ErrBadTemplate, t.ID, t.BorderThickness)
	}
	if min := minInt(t.Width, t.Height); 2*t.BorderThickness >= min && t.BorderThickness > 0 {
		return fmt.Errorf("%w: window %d border thickness %d leaves no interior in %dx%d",
			ErrBadTemplate, t.ID, t.BorderThickness, t.Width, t.Height)
	}
	if t.Location.X+t.Width > geom.Columns() || t.Location.Y+t.Height > geom.Height {
		return fmt.Errorf("%w: window %d (%d,%d)+%dx%d exceeds display %dx%d",
			ErrBadTemplate, t.ID, t.Location.X, t.Location.Y, t.Width, t.Height, geom.Columns(), geom.Height)
	}
	return nil
}

// NewWindow builds a window from its template. With a positive border
// thickness t the frame partitions the footprint: full-width top and
// bottom strips, left/right strips of height Height-2t inset by t, and
// a main rectangle of (Width-2t)x(Height-2t) at offset (t,t). With t=0
// the main rectangle covers the whole footprint.
func NewWindow(t Template, geom Geometry) (Window, error) {
	if err := t.Validate(geom); err != nil {
		return Window{}, err
	}

	loc := t.Location
	mainH, mainW := t.Height, t.Width

	var border *Border
	if bt := t.BorderThickness; bt > 0 {
		top, err := NewRectangle(t.Location, bt, t.Width, geom)
		if err != nil {
			return Window{}, err
		}
		bottom, err := NewRectangle(t.Location.Translate(0, t.Height-bt), bt, t.Width, geom)
		if err != nil {
			return Window{}, err
		}
		right, err := NewRectangle(t.Location.Translate(t.Width-bt, bt), t.Height-2*bt, bt, geom)
		if err != nil {
			return Window{}, err
		}
		left, err := NewRectangle(t.Location.Translate(0, bt), t.Height-2*bt, bt, geom)
		if err != nil {
			return Window{}, err
		}
		border = &Border{Top: top, Bottom: bottom, Left: left, Right: right}

		loc = loc.Translate(bt, bt)
		mainH -= 2 * bt
		mainW -= 2 * bt
	}

	main, err := NewRectangle(loc, mainH, mainW, geom)
	if err != nil {
		return Window{}, err
	}
	return Window{Border: border, Width: t.Width, Height: t.Height, Main: main}, nil
}

// FillMain fills the window's content rectangle with c.
func (w *Window) FillMain(buf []byte, c Color) error {
	return w.Main.Fill(buf, c)
}

// FillBorder fills all four border rectangles with c. The rectangles
// are disjoint so the fill order is irrelevant. No-op for borderless
// windows.
func (w *Window) FillBorder(buf []byte, c Color) error {
	if w.Border == nil {
		return nil
	}
	for _, r := range []Rectangle{w.Border.Top, w.Border.Left, w.Border.Right, w.Border.Bottom} {
		if err := r.Fill(buf, c); err != nil {
			return err
		}
	}
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
