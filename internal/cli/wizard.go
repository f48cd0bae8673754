package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qrsheet/qrsheet/pkg/errors"
	"github.com/qrsheet/qrsheet/pkg/label"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// TemplateListModel - Interactive template selection
// =============================================================================

// templateItem is one selectable row: a catalog template or the custom entry.
type templateItem struct {
	template label.Template
	custom   bool
}

func (it templateItem) title() string {
	if it.custom {
		return "Custom (enter all layout values)"
	}
	return it.template.Name
}

// TemplateListModel is the bubbletea model for interactive template selection.
type TemplateListModel struct {
	Items    []templateItem
	Cursor   int
	Selected *templateItem
}

// NewTemplateListModel creates a list over the catalog plus a Custom entry.
func NewTemplateListModel(catalog *label.Catalog) TemplateListModel {
	items := make([]templateItem, 0, catalog.Len()+1)
	for _, t := range catalog.All() {
		items = append(items, templateItem{template: t})
	}
	items = append(items, templateItem{custom: true})
	return TemplateListModel{Items: items}
}

func (m TemplateListModel) Init() tea.Cmd {
	return nil
}

func (m TemplateListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Items[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m TemplateListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Sheet Template"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, it := range m.Items {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		line := cursor + style.Render(it.title())
		if !it.custom {
			t := it.template
			line += listDimStyle.Render(fmt.Sprintf("  %s, %dx%d", t.PageName, t.Rows, t.Cols))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// =============================================================================
// Wizard Flow
// =============================================================================

// runWizard collects a full job configuration interactively, shows a summary
// and asks for confirmation. Declining restarts the whole flow from the
// template selection.
func (c *CLI) runWizard(ctx context.Context, catalog *label.Catalog) (*jobConfig, error) {
	p := newPrompter(os.Stdin, os.Stdout)

	for {
		cfg, err := c.collectConfig(ctx, catalog, p)
		if err != nil {
			return nil, err
		}

		printSummary(cfg)
		ok, err := p.askYesNo("Create the file with the above settings?", true)
		if err != nil {
			return nil, err
		}
		if ok {
			return cfg, nil
		}
		printInfo("Restarting...")
		printNewline()
	}
}

// collectConfig walks through template selection, code settings, and the
// advanced options. Input validation failures re-prompt inside the askers;
// layout math is validated as a unit at the end so the user sees
// configuration errors before any file is written.
func (c *CLI) collectConfig(ctx context.Context, catalog *label.Catalog, p *prompter) (*jobConfig, error) {
	fmt.Println(StyleTitle.Render("qrsheet — QR label generator"))
	printNewline()

	tpl, err := c.selectTemplate(ctx, catalog, p)
	if err != nil {
		return nil, err
	}

	output, err := p.askString("Output PDF filename", defaultOutput)
	if err != nil {
		return nil, err
	}

	pages, err := p.askInt("Number of pages", intPtr(1), 1)
	if err != nil {
		return nil, err
	}

	p.say("")
	p.say("Code settings:")
	prefix, err := p.askString("Prefix", "ASN")
	if err != nil {
		return nil, err
	}
	if err := errors.ValidatePrefix(prefix); err != nil {
		p.say("%s", errors.UserMessage(err))
		prefix = "ASN"
	}
	start, err := p.askInt("Start number", intPtr(1), 0)
	if err != nil {
		return nil, err
	}
	pad, err := p.askInt("Leading zeros (0 = none)", intPtr(5), 0)
	if err != nil {
		return nil, err
	}

	cfg := &jobConfig{
		template: tpl,
		spec:     label.CodeSpec{Prefix: prefix, Start: start, PadWidth: pad},
		pages:    pages,
		tr:       label.Identity(),
		output:   output,
		caption:  true,
	}

	advanced, err := p.askYesNo("\nDo you wish to set advanced options?", false)
	if err != nil {
		return nil, err
	}
	if advanced {
		if err := collectAdvanced(p, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		// Configuration error: report and restart the flow rather than abort.
		printError("%s", errors.UserMessage(err))
		printNewline()
		return c.collectConfig(ctx, catalog, p)
	}
	return cfg, nil
}

// selectTemplate runs the bubbletea picker and, for the custom entry,
// collects every layout value with no defaults.
func (c *CLI) selectTemplate(ctx context.Context, catalog *label.Catalog, p *prompter) (label.Template, error) {
	prog := tea.NewProgram(NewTemplateListModel(catalog), tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil {
		return label.Template{}, err
	}
	m := final.(TemplateListModel)
	if m.Selected == nil {
		return label.Template{}, context.Canceled
	}
	if !m.Selected.custom {
		printInfo("Loaded template: %s", m.Selected.template.Name)
		return m.Selected.template, nil
	}
	return collectCustomTemplate(p)
}

// collectCustomTemplate prompts for a full custom layout. All values are
// required: a sheet product we know nothing about has no sensible defaults.
func collectCustomTemplate(p *prompter) (label.Template, error) {
	p.say("")
	p.say("Custom layout selected. All layout values are required.")
	p.say("")
	p.say("Select page layout:")
	p.say("  1 - A4")
	p.say("  2 - Letter")
	p.say("  3 - Custom")

	choice, err := p.askChoice("Enter 1, 2, or 3", []string{"1", "2", "3"}, "")
	if err != nil {
		return label.Template{}, err
	}

	var page label.PageSize
	switch choice {
	case "1":
		page = label.PageA4
	case "2":
		page = label.PageLetter
	default:
		page.Name = "Custom"
		if page.W, err = p.askFloat("Custom page width (mm)", nil, 1.0); err != nil {
			return label.Template{}, err
		}
		if page.H, err = p.askFloat("Custom page height (mm)", nil, 1.0); err != nil {
			return label.Template{}, err
		}
	}

	t := label.Template{
		Key:      "custom",
		Name:     "Custom",
		PageName: page.Name,
		PageW:    page.W,
		PageH:    page.H,
	}

	p.say("")
	p.say("Margins (mm) (define the fixed sheetbox):")
	if t.MarginTop, err = p.askFloat("Top margin", nil, 0); err != nil {
		return label.Template{}, err
	}
	if t.MarginBottom, err = p.askFloat("Bottom margin", nil, 0); err != nil {
		return label.Template{}, err
	}
	if t.MarginLeft, err = p.askFloat("Left margin", nil, 0); err != nil {
		return label.Template{}, err
	}
	if t.MarginRight, err = p.askFloat("Right margin", nil, 0); err != nil {
		return label.Template{}, err
	}

	p.say("")
	p.say("Grid:")
	if t.Rows, err = p.askInt("Rows", nil, 1); err != nil {
		return label.Template{}, err
	}
	if t.Cols, err = p.askInt("Columns", nil, 1); err != nil {
		return label.Template{}, err
	}

	p.say("")
	p.say("Label gaps (mm):")
	if t.GapX, err = p.askFloat("Horizontal gap (left/right)", nil, 0); err != nil {
		return label.Template{}, err
	}
	if t.GapY, err = p.askFloat("Vertical gap (up/down)", nil, 0); err != nil {
		return label.Template{}, err
	}

	p.say("")
	p.say("Content insets inside each label (mm):")
	if t.InsetLeft, err = p.askFloat("Inset LEFT", nil, 0); err != nil {
		return label.Template{}, err
	}
	if t.InsetRight, err = p.askFloat("Inset RIGHT", nil, 0); err != nil {
		return label.Template{}, err
	}

	return t, nil
}

// collectAdvanced prompts for the debug and print calibration options.
func collectAdvanced(p *prompter, cfg *jobConfig) error {
	var err error

	p.say("")
	p.say("Advanced options:")
	if cfg.frames, err = p.askYesNo("Draw label frames (debug)", false); err != nil {
		return err
	}
	if cfg.sheetFrame, err = p.askYesNo("Draw sheetbox frame (debug, red)", false); err != nil {
		return err
	}

	p.say("")
	p.say("Printer offset (mm):")
	dx, err := p.askFloat("Offset X (right + / left -)", floatPtr(0), -1000)
	if err != nil {
		return err
	}
	dy, err := p.askFloat("Offset Y (down + / up -)", floatPtr(0), -1000)
	if err != nil {
		return err
	}

	p.say("")
	p.say("Printer scale (drift correction):")
	sx, err := p.askFloat("Scale X", floatPtr(1.0), 0.1)
	if err != nil {
		return err
	}
	sy, err := p.askFloat("Scale Y", floatPtr(1.0), 0.1)
	if err != nil {
		return err
	}

	cfg.tr = label.Transform{DX: dx, DY: dy, ScaleX: sx, ScaleY: sy}
	return nil
}

// printSummary shows the collected settings before anything is generated.
func printSummary(cfg *jobConfig) {
	t := cfg.template

	printNewline()
	fmt.Println(StyleTitle.Render("Please confirm these settings"))
	printDetail("Output file:      %s", cfg.output)
	printDetail("Page layout:      %s (%.1f x %.1f mm)", t.PageName, t.PageW, t.PageH)
	printDetail("Margins (mm):     top=%g bottom=%g left=%g right=%g", t.MarginTop, t.MarginBottom, t.MarginLeft, t.MarginRight)
	printDetail("Grid:             rows=%d cols=%d", t.Rows, t.Cols)
	printDetail("Gaps (mm):        horizontal=%g vertical=%g", t.GapX, t.GapY)
	printDetail("Insets (mm):      left=%g right=%g", t.InsetLeft, t.InsetRight)
	printDetail("Pages:            %d", cfg.pages)
	printDetail("Prefix:           %s", cfg.spec.Prefix)
	printDetail("Start number:     %d", cfg.spec.Start)
	printDetail("Leading zeros:    %d", cfg.spec.PadWidth)
	if !cfg.tr.IsIdentity() || cfg.frames || cfg.sheetFrame {
		printDetail("Debug frames:     labels=%t sheetbox=%t", cfg.frames, cfg.sheetFrame)
		printDetail("Offset (mm):      x=%g y=%g", cfg.tr.DX, cfg.tr.DY)
		printDetail("Scale:            x=%g y=%g", cfg.tr.ScaleX, cfg.tr.ScaleY)
	}
	printNewline()
}
