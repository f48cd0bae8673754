package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/qrsheet/qrsheet/pkg/errors"
	"github.com/qrsheet/qrsheet/pkg/label"
	"github.com/qrsheet/qrsheet/pkg/render"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	template string   // catalog key; empty = interactive wizard
	output   string   // output PDF path
	pages    int      // minimum number of pages
	count    int      // number of codes; 0 = fill the requested pages
	prefix   string   // code prefix
	start    int      // first counter value
	pad      int      // zero-padding width
	skips    []string // dead zones as "row,col"
	offsetX  float64  // printer offset, mm
	offsetY  float64
	scaleX   float64 // printer drift correction
	scaleY   float64
	frames   bool // debug label frames
	sheet    bool // debug sheetbox frame
	noCap    bool // suppress captions
}

// jobConfig is the full, validated configuration of one generation run,
// assembled either from flags or from the interactive wizard.
type jobConfig struct {
	template   label.Template
	spec       label.CodeSpec // Count 0 means "fill the requested pages"
	pages      int
	tr         label.Transform
	skip       label.SkipSet
	output     string
	frames     bool
	sheetFrame bool
	caption    bool
}

// validate checks the configuration as a unit before any work happens.
func (cfg *jobConfig) validate() error {
	if err := cfg.template.Validate(); err != nil {
		return err
	}
	if err := cfg.spec.Validate(); err != nil {
		return err
	}
	if err := cfg.tr.Validate(); err != nil {
		return err
	}
	if err := errors.ValidateOutputPath(cfg.output); err != nil {
		return err
	}
	if cfg.pages < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "page count must be >= 1, got %d", cfg.pages)
	}
	return nil
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		output: defaultOutput,
		pages:  1,
		prefix: "ASN",
		start:  1,
		pad:    5,
		scaleX: 1.0,
		scaleY: 1.0,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a QR label sheet PDF",
		Long: `Generate a print-ready PDF of QR-encoded labels.

With --template, the sheet layout is taken from the catalog and the PDF is
written directly. Without it, an interactive wizard walks through template
selection (including fully custom layouts), code settings, and the advanced
print calibration options.

Codes are the prefix followed by a zero-padded counter (ASN00001, ASN00002,
...). If --count asks for more codes than fit on --pages, pages are added
until every code is placed; codes are never dropped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "sheet template key (see 'qrsheet templates'); omit for the wizard")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output PDF file")
	cmd.Flags().IntVarP(&opts.pages, "pages", "p", opts.pages, "number of pages to generate (grows if --count needs more)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "number of codes to generate (0 = fill the requested pages)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", opts.prefix, "code prefix")
	cmd.Flags().IntVar(&opts.start, "start", opts.start, "first counter value")
	cmd.Flags().IntVar(&opts.pad, "pad", opts.pad, "zero-padding width (0 = none)")
	cmd.Flags().StringArrayVar(&opts.skips, "skip", nil, "grid cell to leave empty on every page, as row,col (repeatable)")
	cmd.Flags().Float64Var(&opts.offsetX, "offset-x", 0, "printer offset X in mm (right positive)")
	cmd.Flags().Float64Var(&opts.offsetY, "offset-y", 0, "printer offset Y in mm (down positive)")
	cmd.Flags().Float64Var(&opts.scaleX, "scale-x", opts.scaleX, "printer drift correction X")
	cmd.Flags().Float64Var(&opts.scaleY, "scale-y", opts.scaleY, "printer drift correction Y")
	cmd.Flags().BoolVar(&opts.frames, "debug-frames", false, "draw a frame around every label cell")
	cmd.Flags().BoolVar(&opts.sheet, "debug-sheet", false, "draw the sheetbox frame in red")
	cmd.Flags().BoolVar(&opts.noCap, "no-caption", false, "omit the code text next to each QR")

	return cmd
}

// runGenerate assembles the configuration (flags or wizard) and runs the job.
func (c *CLI) runGenerate(ctx context.Context, opts generateOpts) error {
	catalog, err := c.loadCatalog()
	if err != nil {
		return err
	}

	var cfg *jobConfig
	if opts.template == "" {
		cfg, err = c.runWizard(ctx, catalog)
	} else {
		cfg, err = configFromFlags(catalog, opts)
	}
	if err != nil {
		return err
	}

	return c.runJob(cfg)
}

// configFromFlags builds and validates a jobConfig without any interaction.
func configFromFlags(catalog *label.Catalog, opts generateOpts) (*jobConfig, error) {
	tpl, err := catalog.Get(opts.template)
	if err != nil {
		return nil, err
	}

	skip, err := label.ParseSkips(opts.skips)
	if err != nil {
		return nil, err
	}

	cfg := &jobConfig{
		template: tpl,
		spec: label.CodeSpec{
			Prefix:   opts.prefix,
			Start:    opts.start,
			Count:    opts.count,
			PadWidth: opts.pad,
		},
		pages:      opts.pages,
		tr:         label.Transform{DX: opts.offsetX, DY: opts.offsetY, ScaleX: opts.scaleX, ScaleY: opts.scaleY},
		skip:       skip,
		output:     opts.output,
		frames:     opts.frames,
		sheetFrame: opts.sheet,
		caption:    !opts.noCap,
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runJob computes the layout, pairs it with the code series, renders the PDF
// and writes it to disk.
func (c *CLI) runJob(cfg *jobConfig) error {
	prog := newProgress(c.Logger)
	batch := uuid.NewString()

	perPage := cfg.template.CellsPerPage() - cfg.skip.CountWithin(cfg.template.Rows, cfg.template.Cols)

	spec := cfg.spec
	if spec.Count <= 0 {
		spec.Count = perPage * cfg.pages
	}

	pages, err := label.PlanPages(spec.Count, perPage, cfg.pages)
	if err != nil {
		return err
	}
	if pages > cfg.pages {
		c.Logger.Infof("Extending to %d pages so all %d codes fit", pages, spec.Count)
	}

	c.Logger.Debug("Computing layout",
		"batch", batch,
		"template", cfg.template.Key,
		"pages", pages,
		"codes", spec.Count,
		"cells_per_page", perPage)

	cells, err := label.Layout(cfg.template, pages, cfg.tr, cfg.skip)
	if err != nil {
		return err
	}
	placements, err := label.Pair(spec.Codes(), cells)
	if err != nil {
		return err
	}

	job := render.Job{
		Template:   cfg.template,
		Transform:  cfg.tr,
		Spec:       spec,
		Placements: placements,
		Pages:      pages,
		BatchID:    batch,
	}
	renderOpts := render.Options{
		Title:       fmt.Sprintf("%s labels %s", spec.Prefix, spec.Code(0)),
		Caption:     cfg.caption,
		LabelFrames: cfg.frames,
		SheetFrame:  cfg.sheetFrame,
	}

	spinner := newSpinner(fmt.Sprintf("Rendering %d labels on %d page(s)...", spec.Count, pages))
	spinner.Start()
	err = render.WriteFile(cfg.output, job, renderOpts)
	spinner.Stop()
	if err != nil {
		return err
	}

	printSuccess("Created %s", cfg.output)
	printDetail("%s .. %s on %d page(s)", spec.Code(0), spec.Code(spec.Count-1), pages)
	prog.done(fmt.Sprintf("Generated %d labels", spec.Count))
	return nil
}
