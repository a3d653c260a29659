package layout

import (
	"errors"
	"testing"

	"github.com/1broseidon/fbdash/internal/compose"
)

func TestGrid(t *testing.T) {
	cases := []struct {
		n, rows, cols int
	}{
		{0, 0, 0},
		{1, 1, 1},
		{2, 1, 2},
		{4, 2, 2},
		{5, 2, 3},
		{9, 3, 3},
		{10, 3, 4},
	}
	for _, tc := range cases {
		rows, cols := Grid(tc.n)
		if rows != tc.rows || cols != tc.cols {
			t.Fatalf("Grid(%d): expected %dx%d, got %dx%d", tc.n, tc.rows, tc.cols, rows, cols)
		}
	}
}

func TestPlanFixedGridWithGaps(t *testing.T) {
	geom := compose.Geometry{Height: 100, RowStride: 840, BytesPerPixel: 4}
	templates, err := Plan(2, geom, Spec{Mode: ModeFixed, Rows: 1, Cols: 2, Gap: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(templates))
	}

	// 210 columns, gap 10: cells are (210-30)/2 = 90 wide, (100-20)/1 = 80 tall.
	if templates[0].Location != (compose.Point{X: 10, Y: 10}) {
		t.Fatalf("expected first window at (10,10), got (%d,%d)", templates[0].Location.X, templates[0].Location.Y)
	}
	if templates[1].Location != (compose.Point{X: 110, Y: 10}) {
		t.Fatalf("expected second window at (110,10), got (%d,%d)", templates[1].Location.X, templates[1].Location.Y)
	}
	for i, tpl := range templates {
		if tpl.ID != i {
			t.Fatalf("template %d carries id %d", i, tpl.ID)
		}
		if tpl.Width != 90 || tpl.Height != 80 {
			t.Fatalf("template %d: expected 90x80, got %dx%d", i, tpl.Width, tpl.Height)
		}
		if err := tpl.Validate(geom); err != nil {
			t.Fatalf("template %d does not fit its own display: %v", i, err)
		}
	}
}

func TestPlanVerticalStack(t *testing.T) {
	geom := compose.Geometry{Height: 330, RowStride: 400, BytesPerPixel: 4}
	templates, err := Plan(3, geom, Spec{Mode: ModeVertical, Gap: 0, Border: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, tpl := range templates {
		if tpl.Location.Y != i*110 {
			t.Fatalf("window %d: expected y=%d, got %d", i, i*110, tpl.Location.Y)
		}
		if tpl.BorderThickness != 5 {
			t.Fatalf("window %d: expected border 5, got %d", i, tpl.BorderThickness)
		}
	}
}

func TestPlanErrorsWhenInsufficientSpace(t *testing.T) {
	geom := compose.Geometry{Height: 10, RowStride: 80, BytesPerPixel: 4}
	if _, err := Plan(2, geom, Spec{Mode: ModeFixed, Rows: 1, Cols: 2, Gap: 20}); !errors.Is(err, compose.ErrBadTemplate) {
		t.Fatalf("expected ErrBadTemplate for oversized gaps, got %v", err)
	}
	if _, err := Plan(4, geom, Spec{Mode: ModeAuto, Border: 5}); !errors.Is(err, compose.ErrBadTemplate) {
		t.Fatalf("expected ErrBadTemplate for oversized border, got %v", err)
	}
}

func TestPlanUnknownMode(t *testing.T) {
	geom := compose.Geometry{Height: 100, RowStride: 400, BytesPerPixel: 4}
	if _, err := Plan(1, geom, Spec{Mode: "spiral"}); !errors.Is(err, compose.ErrBadTemplate) {
		t.Fatalf("expected ErrBadTemplate for unknown mode, got %v", err)
	}
}
