package label

import (
	"strconv"
	"strings"

	"github.com/qrsheet/qrsheet/pkg/errors"
)

// =============================================================================
// Transform - Print Calibration
// =============================================================================

// Transform is a print-calibration correction applied uniformly to every
// computed cell as the last layout step: scale first, anchored at the
// sheetbox top-left corner so the sheetbox origin never moves, then offset.
//
//	x' = left + (x - left) * ScaleX + DX
//	y' = top  + (y - top)  * ScaleY + DY
//	w' = w * ScaleX
//	h' = h * ScaleY
//
// DX/DY are millimetres (positive = right/down). ScaleX/ScaleY correct
// printer drift and are independent; 1.0 means no correction.
type Transform struct {
	DX     float64
	DY     float64
	ScaleX float64
	ScaleY float64
}

// Identity returns the no-op transform.
func Identity() Transform {
	return Transform{ScaleX: 1.0, ScaleY: 1.0}
}

// Validate rejects non-positive scale factors.
func (tr Transform) Validate() error {
	if tr.ScaleX <= 0 || tr.ScaleY <= 0 {
		return errors.New(errors.ErrCodeInvalidTransform, "scale factors must be > 0, got %.3f x %.3f", tr.ScaleX, tr.ScaleY)
	}
	return nil
}

// IsIdentity reports whether the transform changes nothing.
func (tr Transform) IsIdentity() bool {
	return tr.DX == 0 && tr.DY == 0 && tr.ScaleX == 1 && tr.ScaleY == 1
}

// =============================================================================
// SkipSet - Dead Zones
// =============================================================================

// GridRef identifies one grid position by row and column, both 0-based.
type GridRef struct {
	Row int
	Col int
}

// SkipSet is the set of grid positions excluded from placement (dead zones,
// e.g. already-used stickers on a partially printed sheet). The set applies
// identically to every page. A skipped position consumes no payload and
// emits no geometry, but does not shift later cells: positions are
// grid-fixed, only payload consumption advances.
type SkipSet map[GridRef]struct{}

// ParseSkips parses "row,col" strings (0-based) into a SkipSet.
func ParseSkips(specs []string) (SkipSet, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	set := make(SkipSet, len(specs))
	for _, s := range specs {
		parts := strings.Split(s, ",")
		if len(parts) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid skip %q: expected \"row,col\"", s)
		}
		row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid skip row in %q", s)
		}
		col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid skip column in %q", s)
		}
		if row < 0 || col < 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "skip %q: row and column must be >= 0", s)
		}
		set[GridRef{Row: row, Col: col}] = struct{}{}
	}
	return set, nil
}

// Contains reports whether the position is a dead zone.
func (s SkipSet) Contains(row, col int) bool {
	_, ok := s[GridRef{Row: row, Col: col}]
	return ok
}

// CountWithin returns how many skip entries actually fall inside an
// rows x cols grid. Entries outside the grid are harmless and ignored.
func (s SkipSet) CountWithin(rows, cols int) int {
	n := 0
	for ref := range s {
		if ref.Row < rows && ref.Col < cols {
			n++
		}
	}
	return n
}

// =============================================================================
// Layout Engine
// =============================================================================

// Cell is one computed label placement: absolute top-left corner and size in
// millimetres, with y increasing downward. Cells are derived values,
// recomputed whenever the configuration changes, never mutated.
type Cell struct {
	Page int // 0-based page index
	Row  int
	Col  int
	X    float64
	Y    float64
	W    float64
	H    float64
}

// Layout computes the absolute position and size of every label cell on
// every page, in row-major order (rows top to bottom, columns left to
// right), skipping dead zones and applying the calibration transform last.
//
// The result is deterministic: identical inputs always produce the identical
// cell sequence. Each page holds Rows*Cols minus the in-grid skip count
// cells.
func Layout(t Template, pages int, tr Transform, skip SkipSet) ([]Cell, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	if pages < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "page count must be >= 0, got %d", pages)
	}

	var (
		left = t.MarginLeft
		top  = t.MarginTop
		lw   = t.LabelWidth()
		lh   = t.LabelHeight()
	)

	perPage := t.CellsPerPage() - skip.CountWithin(t.Rows, t.Cols)
	cells := make([]Cell, 0, pages*perPage)

	for page := 0; page < pages; page++ {
		for row := 0; row < t.Rows; row++ {
			for col := 0; col < t.Cols; col++ {
				if skip.Contains(row, col) {
					continue
				}

				// Nominal top-left corner anchored to the sheetbox.
				x := left + float64(col)*(lw+t.GapX)
				y := top + float64(row)*(lh+t.GapY)

				cells = append(cells, Cell{
					Page: page,
					Row:  row,
					Col:  col,
					X:    left + (x-left)*tr.ScaleX + tr.DX,
					Y:    top + (y-top)*tr.ScaleY + tr.DY,
					W:    lw * tr.ScaleX,
					H:    lh * tr.ScaleY,
				})
			}
		}
	}
	return cells, nil
}
