// Package layout arranges a number of windows over the display and
// produces the templates the manager builds from. It covers the common
// dashboard arrangements; hand-written template lists in the config
// bypass it entirely.
package layout

import (
	"fmt"
	"math"

	"github.com/1broseidon/fbdash/internal/compose"
)

// Mode selects how windows are arranged.
type Mode string

const (
	ModeAuto       Mode = "auto"       // Dynamic grid based on count.
	ModeFixed      Mode = "fixed"      // Specific rows × cols.
	ModeVertical   Mode = "vertical"   // Single column stack.
	ModeHorizontal Mode = "horizontal" // Single row side-by-side.
)

// Spec is a layout configuration.
type Spec struct {
	Mode   Mode
	Rows   int // fixed mode only
	Cols   int // fixed mode only
	Gap    int // pixels between windows and around the edges
	Border int // border thickness applied to every window
}

// Grid determines the grid dimensions for the given number of windows
// in auto mode: columns are the ceiling of the square root, rows follow.
func Grid(numWindows int) (rows, cols int) {
	if numWindows == 0 {
		return 0, 0
	}
	cols = int(math.Ceil(math.Sqrt(float64(numWindows))))
	rows = int(math.Ceil(float64(numWindows) / float64(cols)))
	return rows, cols
}

// Plan computes templates for n windows over the display geometry.
// Template IDs follow slot order, left to right then top to bottom.
// Degenerate cell sizes (too many windows, oversized gaps or borders)
// are configuration errors.
func Plan(n int, geom compose.Geometry, spec Spec) ([]compose.Template, error) {
	if n <= 0 {
		return nil, nil
	}
	if spec.Gap < 0 || spec.Border < 0 {
		return nil, fmt.Errorf("%w: gap %d, border %d", compose.ErrBadTemplate, spec.Gap, spec.Border)
	}

	var rows, cols int
	switch spec.Mode {
	case ModeAuto, "":
		rows, cols = Grid(n)
	case ModeFixed:
		rows, cols = spec.Rows, spec.Cols
		if rows <= 0 || cols <= 0 {
			return nil, fmt.Errorf("%w: fixed grid %dx%d", compose.ErrBadTemplate, rows, cols)
		}
		if n > rows*cols {
			n = rows * cols
		}
	case ModeVertical:
		rows, cols = n, 1
	case ModeHorizontal:
		rows, cols = 1, n
	default:
		return nil, fmt.Errorf("%w: unsupported layout mode %q", compose.ErrBadTemplate, spec.Mode)
	}

	width := geom.Columns()
	height := geom.Height

	// One gap before each column and one after the last; same vertically.
	cellWidth := (width - (cols+1)*spec.Gap) / cols
	cellHeight := (height - (rows+1)*spec.Gap) / rows
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf("%w: insufficient space for layout: display=%dx%d rows=%d cols=%d gap=%d (cell=%dx%d)",
			compose.ErrBadTemplate, width, height, rows, cols, spec.Gap, cellWidth, cellHeight)
	}
	if spec.Border > 0 && 2*spec.Border >= minInt(cellWidth, cellHeight) {
		return nil, fmt.Errorf("%w: border %d leaves no interior in %dx%d cells",
			compose.ErrBadTemplate, spec.Border, cellWidth, cellHeight)
	}

	templates := make([]compose.Template, n)
	for i := 0; i < n; i++ {
		row := i / cols
		col := i % cols
		templates[i] = compose.Template{
			ID: i,
			Location: compose.Point{
				X: spec.Gap + col*(cellWidth+spec.Gap),
				Y: spec.Gap + row*(cellHeight+spec.Gap),
			},
			Width:           cellWidth,
			Height:          cellHeight,
			BorderThickness: spec.Border,
		}
	}
	return templates, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
