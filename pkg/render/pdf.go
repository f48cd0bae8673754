package render

import (
	"bytes"
	"math"
	"os"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/qrsheet/qrsheet/pkg/buildinfo"
	"github.com/qrsheet/qrsheet/pkg/errors"
	"github.com/qrsheet/qrsheet/pkg/label"
)

// =============================================================================
// Constants
// =============================================================================

// Drawing constants, matching the geometry the Avery templates were tuned
// for. All lengths are millimetres unless noted; the mm values are scaled
// with the calibration transform so drift correction scales everything.
const (
	qrVPad        = 0.5 // fixed QR padding top and bottom
	qrTextGap     = 0.6 // gap between QR and caption
	captionRPad   = 0.6 // right padding after the caption
	minCaptionW   = 6.0 // minimum width reserved for the caption
	frameLine     = 0.09
	qrPixels      = 512 // rendered QR image edge, px
	captionFont   = "Helvetica"
	captionStyle  = "B"
	maxCaptionPt  = 9.0 // font sizes in points
	minCaptionPt  = 3.5
	captionStepPt = 0.5
	ptToMM        = 25.4 / 72.0
)

// =============================================================================
// Job and Options
// =============================================================================

// Job is one complete rendering pass: the sheet configuration plus the
// placements computed by label.Layout and label.Pair.
type Job struct {
	Template   label.Template
	Transform  label.Transform
	Spec       label.CodeSpec
	Placements []label.Placement
	Pages      int

	// BatchID identifies the run in the PDF metadata and in logs.
	// Generated if empty.
	BatchID string
}

// Options control the visual extras.
type Options struct {
	Title       string
	Caption     bool // draw the code text next to each QR
	LabelFrames bool // light grey outline around every cell (debug)
	SheetFrame  bool // red outline around the sheetbox (debug)
}

// DefaultOptions returns the standard rendering options.
func DefaultOptions() Options {
	return Options{Title: "QR label sheet", Caption: true}
}

// =============================================================================
// PDF Rendering
// =============================================================================

// PDF renders the job into a complete PDF document and returns its bytes.
func PDF(job Job, opts Options) ([]byte, error) {
	if err := job.Template.Validate(); err != nil {
		return nil, err
	}
	if err := job.Transform.Validate(); err != nil {
		return nil, err
	}
	if job.BatchID == "" {
		job.BatchID = uuid.NewString()
	}

	r := newRenderer(job, opts)
	if err := r.drawPages(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "emit PDF")
	}
	return buf.Bytes(), nil
}

// WriteFile renders the job and writes the document to path in one piece.
func WriteFile(path string, job Job, opts Options) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	data, err := PDF(job, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}

// =============================================================================
// Renderer
// =============================================================================

type renderer struct {
	pdf  *fpdf.Fpdf
	job  Job
	opts Options

	// QR images are registered once per distinct code.
	registered map[string]bool
}

func newRenderer(job Job, opts Options) *renderer {
	t := job.Template
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: t.PageW, Ht: t.PageH},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	title := opts.Title
	if title == "" {
		title = "QR label sheet"
	}
	pdf.SetTitle(title, true)
	pdf.SetCreator("qrsheet "+buildinfo.Version, true)
	pdf.SetSubject("batch "+job.BatchID, true)

	pdf.SetFont(captionFont, captionStyle, maxCaptionPt)

	return &renderer{pdf: pdf, job: job, opts: opts, registered: make(map[string]bool)}
}

func (r *renderer) drawPages() error {
	next := 0 // index into Placements, which are ordered by page
	for page := 0; page < r.job.Pages; page++ {
		r.pdf.AddPage()

		if r.opts.SheetFrame {
			r.drawSheetFrame()
		}

		for next < len(r.job.Placements) && r.job.Placements[next].Cell.Page == page {
			if err := r.drawPlacement(r.job.Placements[next]); err != nil {
				return err
			}
			next++
		}
	}
	return r.pdf.Error()
}

// drawSheetFrame outlines the sheetbox in red. The frame follows the same
// anchor logic as the labels: scaled around the sheetbox top-left corner,
// then offset, so a misaligned print shows exactly where labels would land.
func (r *renderer) drawSheetFrame() {
	t, tr := r.job.Template, r.job.Transform
	r.pdf.SetLineWidth(frameLine)
	r.pdf.SetDrawColor(220, 0, 0)
	r.pdf.Rect(
		t.MarginLeft+tr.DX,
		t.MarginTop+tr.DY,
		t.SheetWidth()*tr.ScaleX,
		t.SheetHeight()*tr.ScaleY,
		"D",
	)
}

func (r *renderer) drawPlacement(p label.Placement) error {
	t, tr := r.job.Template, r.job.Transform
	c := p.Cell

	if r.opts.LabelFrames {
		r.pdf.SetLineWidth(frameLine)
		r.pdf.SetDrawColor(211, 211, 211)
		r.pdf.Rect(c.X, c.Y, c.W, c.H, "D")
	}
	if p.Blank {
		return nil
	}

	// Content box: the cell minus the scaled left/right insets.
	dzL := t.InsetLeft * tr.ScaleX
	dzR := t.InsetRight * tr.ScaleX
	contentX := c.X + dzL
	contentW := c.W - dzL - dzR
	if contentW <= 0 {
		return errors.New(errors.ErrCodeInvalidTemplate, "label content width is <= 0 (insets/scale)")
	}

	// QR square: as tall as the label allows with fixed vertical padding,
	// but never so wide that no caption space remains.
	vpad := qrVPad * tr.ScaleY
	qrHMax := c.H - 2*vpad
	if qrHMax <= 0 {
		return errors.New(errors.ErrCodeInvalidTemplate, "label height too small for %.1fmm QR top/bottom padding", qrVPad)
	}
	qrWMax := contentW - qrTextGap*tr.ScaleX - minCaptionW*tr.ScaleX
	if qrWMax <= 0 {
		return errors.New(errors.ErrCodeInvalidTemplate, "label too narrow for QR and caption (reduce columns, gaps, or insets)")
	}
	qrSize := math.Min(qrHMax, qrWMax)

	name, err := r.qrImage(p.Code)
	if err != nil {
		return err
	}
	imgOpts := fpdf.ImageOptions{ImageType: "PNG"}
	r.pdf.ImageOptions(name, contentX, c.Y+vpad, qrSize, qrSize, false, imgOpts, 0, "")

	if r.opts.Caption {
		textX := contentX + qrSize + qrTextGap*tr.ScaleX
		textW := (contentX + contentW) - textX - captionRPad*tr.ScaleX
		if textW < 1.0 {
			textW = 1.0
		}
		r.drawCaption(textX, c.Y+c.H/2, textW, c.H, p)
	}
	return nil
}

// qrImage encodes the code as a QR PNG (error correction level M) and
// registers it with the document, once per distinct payload.
func (r *renderer) qrImage(code string) (string, error) {
	name := "qr:" + code
	if r.registered[code] {
		return name, nil
	}
	png, err := qrcode.Encode(code, qrcode.Medium, qrPixels)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "encode QR for %q", code)
	}
	r.pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	r.registered[code] = true
	return name, nil
}

// =============================================================================
// Caption Text
// =============================================================================

// drawCaption draws the full code centered vertically in the space right of
// the QR, shrinking the font until it fits. If even the minimum size is too
// wide, it falls back to two lines: prefix on top, number below.
func (r *renderer) drawCaption(x, yCenter, w, h float64, p label.Placement) {
	code := p.Code

	fs := r.fitFontSize(code, w, maxCaptionPt)
	r.pdf.SetFontSize(fs)
	if r.pdf.GetStringWidth(code) <= w {
		r.pdf.Text(x, yCenter+fs*ptToMM/2.7, code)
		return
	}

	line1 := r.job.Spec.Prefix
	line2 := p.Code
	if p.Index >= 0 {
		line2 = r.job.Spec.NumberPart(p.Index)
	}

	fs1 := r.fitFontSize(line1, w, maxCaptionPt-0.5)
	fs2 := r.fitFontSize(line2, w, maxCaptionPt)
	fs = math.Min(fs1, fs2)
	r.pdf.SetFontSize(fs)

	fsMM := fs * ptToMM
	lineGap := math.Min(h*0.32, fsMM*1.2)
	r.pdf.Text(x, yCenter-lineGap/2+fsMM/2.7, line1)
	r.pdf.Text(x, yCenter+lineGap/1.2+fsMM/2.7, line2)
}

// fitFontSize returns the largest font size (points, in captionStepPt steps,
// bounded below by minCaptionPt) at which s fits into maxW millimetres.
func (r *renderer) fitFontSize(s string, maxW, maxPt float64) float64 {
	for fs := maxPt; fs >= minCaptionPt-1e-9; fs -= captionStepPt {
		r.pdf.SetFontSize(fs)
		if r.pdf.GetStringWidth(s) <= maxW {
			return fs
		}
	}
	return minCaptionPt
}
