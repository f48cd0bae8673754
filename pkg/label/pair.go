package label

import (
	"github.com/qrsheet/qrsheet/pkg/errors"
)

// =============================================================================
// Pairing Driver
// =============================================================================

// Placement is one (code, cell) pair handed to the renderer. Blank
// placements mark trailing cells on the final page that have no code left;
// the renderer draws nothing in them (or just the debug frame).
type Placement struct {
	Cell  Cell
	Code  string
	Index int  // position in the code series; -1 for blank cells
	Blank bool
}

// PlanPages returns the number of pages needed to place count codes at
// perPage usable cells per page, but never fewer than minPages. Pages are
// extended automatically so that no code is ever silently dropped: the
// declared purpose of a run is printing a known quantity of codes.
func PlanPages(count, perPage, minPages int) (int, error) {
	if perPage <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidGrid, "no usable cells per page (grid fully skipped?)")
	}
	if minPages < 0 {
		minPages = 0
	}
	pages := (count + perPage - 1) / perPage
	if pages < minPages {
		pages = minPages
	}
	return pages, nil
}

// Pair zips codes and cells in lockstep by position. Cells beyond the last
// code become blank placements. Callers must size the cell sequence with
// PlanPages first; more codes than cells is a programming error and is
// rejected rather than silently dropping codes.
func Pair(codes []string, cells []Cell) ([]Placement, error) {
	if len(codes) > len(cells) {
		return nil, errors.New(errors.ErrCodeInternal, "%d codes but only %d cells; plan pages before pairing", len(codes), len(cells))
	}
	placements := make([]Placement, len(cells))
	for i, cell := range cells {
		if i < len(codes) {
			placements[i] = Placement{Cell: cell, Code: codes[i], Index: i}
		} else {
			placements[i] = Placement{Cell: cell, Index: -1, Blank: true}
		}
	}
	return placements, nil
}
