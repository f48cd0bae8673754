package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// templatesCommand creates the templates command for listing the catalog.
func (c *CLI) templatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available sheet templates",
		Long: `List the built-in sheet templates plus any user-defined templates from
~/.config/qrsheet/templates.toml. Pass a key to 'generate --template'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTemplates()
		},
	}
}

func (c *CLI) runTemplates() error {
	catalog, err := c.loadCatalog()
	if err != nil {
		return err
	}

	rows := [][]string{}
	for _, t := range catalog.All() {
		rows = append(rows, []string{
			t.Key,
			t.Name,
			fmt.Sprintf("%s %.0fx%.0f", t.PageName, t.PageW, t.PageH),
			fmt.Sprintf("%dx%d", t.Rows, t.Cols),
			fmt.Sprintf("%.1f x %.1f", t.LabelWidth(), t.LabelHeight()),
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Key", "Name", "Page (mm)", "Grid", "Label (mm)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		})

	fmt.Println(tbl.Render())
	printDetail("%d template(s). Use: qrsheet generate -t <key>", catalog.Len())
	return nil
}
