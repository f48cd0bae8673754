// Package label computes print-ready label sheet layouts.
//
// The package is pure computation: a Template describes a physical label
// sheet (page size, margins, grid, gaps), a CodeSpec describes a sequential
// code series (prefix plus zero-padded counter), and Layout maps the logical
// grid onto absolute page coordinates. Pair zips codes and cells into
// Placements consumed by the PDF renderer in pkg/render.
//
// All values are millimetres with a top-left origin and y increasing
// downward. Every function here is deterministic and side-effect free:
// calling Layout or CodeSpec.Codes twice with identical inputs yields
// identical results.
package label
