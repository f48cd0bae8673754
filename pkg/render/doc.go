// Package render draws computed label layouts into a PDF document.
//
// The package is the rendering boundary of qrsheet: it consumes the
// (code, cell) placements produced by pkg/label and is responsible for the
// QR glyphs (skip2/go-qrcode), the caption text next to each glyph, the
// optional debug frames, and the PDF byte stream itself (go-pdf/fpdf).
//
// Rendering happens entirely in memory; the document is written out in one
// piece at the end, so a failed run never leaves a partial PDF behind.
package render
