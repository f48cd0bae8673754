package label

import (
	"github.com/qrsheet/qrsheet/pkg/errors"
)

// Page presets (mm).
var (
	// PageA4 is ISO 216 A4: 210 x 297 mm.
	PageA4 = PageSize{Name: "A4", W: 210.0, H: 297.0}

	// PageLetter is US Letter: 8.5" x 11".
	PageLetter = PageSize{Name: "Letter", W: 215.9, H: 279.4}
)

// PageSize is a named page dimension in millimetres.
type PageSize struct {
	Name string
	W    float64
	H    float64
}

// =============================================================================
// Template - Sheet Configuration
// =============================================================================

// Template is an immutable description of a physical label sheet product:
// page size, the margins that pin the sheetbox (the printable label area,
// which must not move), the label grid, and the gaps between labels.
//
// All lengths are millimetres. The label size is never stored; it is derived
// from the sheetbox and the grid so that the sheetbox stays fixed.
type Template struct {
	Key      string `toml:"key"`       // stable identifier, e.g. "avery-l4731rev-25"
	Name     string `toml:"name"`      // human-readable product name
	PageName string `toml:"page_name"` // e.g. "A4", "Letter", "Custom"

	PageW float64 `toml:"page_w_mm"`
	PageH float64 `toml:"page_h_mm"`

	MarginTop    float64 `toml:"margin_top_mm"`
	MarginBottom float64 `toml:"margin_bottom_mm"`
	MarginLeft   float64 `toml:"margin_left_mm"`
	MarginRight  float64 `toml:"margin_right_mm"`

	Rows int `toml:"rows"`
	Cols int `toml:"cols"`

	GapX float64 `toml:"gap_x_mm"` // horizontal gap between columns
	GapY float64 `toml:"gap_y_mm"` // vertical gap between rows

	// InsetLeft/InsetRight are strips inside every label that carry no
	// content (e.g. a rounded die-cut edge). They reduce the content box the
	// renderer draws into; they do not affect the cell geometry itself.
	InsetLeft  float64 `toml:"inset_left_mm"`
	InsetRight float64 `toml:"inset_right_mm"`
}

// SheetWidth returns the usable width between the left and right margins.
func (t Template) SheetWidth() float64 {
	return t.PageW - t.MarginLeft - t.MarginRight
}

// SheetHeight returns the usable height between the top and bottom margins.
func (t Template) SheetHeight() float64 {
	return t.PageH - t.MarginTop - t.MarginBottom
}

// LabelWidth returns the derived width of a single label cell.
// Only meaningful after Validate has passed.
func (t Template) LabelWidth() float64 {
	return (t.SheetWidth() - float64(t.Cols-1)*t.GapX) / float64(t.Cols)
}

// LabelHeight returns the derived height of a single label cell.
// Only meaningful after Validate has passed.
func (t Template) LabelHeight() float64 {
	return (t.SheetHeight() - float64(t.Rows-1)*t.GapY) / float64(t.Rows)
}

// CellsPerPage returns the number of grid positions on one page, before any
// skip set is applied.
func (t Template) CellsPerPage() int {
	return t.Rows * t.Cols
}

// Validate checks the template's layout math. Errors here are configuration
// errors: they abort the run and are never silently clamped.
func (t Template) Validate() error {
	if t.Rows < 1 || t.Cols < 1 {
		return errors.New(errors.ErrCodeInvalidGrid, "grid must have at least 1 row and 1 column, got %dx%d", t.Rows, t.Cols)
	}
	if t.PageW <= 0 || t.PageH <= 0 {
		return errors.New(errors.ErrCodeInvalidTemplate, "page size must be positive, got %.2f x %.2f mm", t.PageW, t.PageH)
	}
	if t.MarginTop < 0 || t.MarginBottom < 0 || t.MarginLeft < 0 || t.MarginRight < 0 {
		return errors.New(errors.ErrCodeInvalidTemplate, "margins must be >= 0")
	}
	if t.GapX < 0 || t.GapY < 0 {
		return errors.New(errors.ErrCodeInvalidTemplate, "gaps must be >= 0")
	}
	if t.InsetLeft < 0 || t.InsetRight < 0 {
		return errors.New(errors.ErrCodeInvalidTemplate, "insets must be >= 0")
	}
	if t.SheetWidth() <= 0 || t.SheetHeight() <= 0 {
		return errors.New(errors.ErrCodeInvalidTemplate, "margins too large: sheetbox would be <= 0")
	}
	if t.LabelWidth() <= 0 {
		return errors.New(errors.ErrCodeInvalidTemplate, "horizontal gap too large: computed label width is <= 0")
	}
	if t.LabelHeight() <= 0 {
		return errors.New(errors.ErrCodeInvalidTemplate, "vertical gap too large: computed label height is <= 0")
	}
	if t.InsetLeft+t.InsetRight >= t.LabelWidth() {
		return errors.New(errors.ErrCodeInvalidTemplate, "insets too large: label content width would be <= 0")
	}
	return nil
}
