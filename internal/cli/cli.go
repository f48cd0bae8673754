// Package cli implements the qrsheet command-line interface.
//
// This package provides commands for generating QR label sheets as PDF and
// for inspecting the template catalog. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: lay out a series of QR codes onto a label sheet PDF
//   - templates: list the built-in and user-defined sheet templates
//   - completion: generate shell completion scripts
//
// Without --template, generate starts an interactive wizard that walks
// through template selection, code settings, and the advanced print
// calibration options.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/qrsheet/qrsheet/pkg/buildinfo"
	"github.com/qrsheet/qrsheet/pkg/label"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "qrsheet"

	// defaultOutput is the PDF written when no --output is given.
	defaultOutput = "asn_labels.pdf"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Generate QR label sheets as PDF",
		Long:         `qrsheet lays out QR-encoded labels (e.g. archive serial numbers for a paperless workflow) onto a print-ready page grid and writes a PDF, with templates for common label sheet products and print calibration for stubborn printers.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(log.DebugLevel)
			}
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.templatesCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadCatalog returns the template catalog: built-ins merged with any user
// templates from the XDG config directory.
func (c *CLI) loadCatalog() (*label.Catalog, error) {
	path, err := label.DefaultCatalogPath()
	if err != nil {
		c.Logger.Debugf("No config dir, using built-in templates only: %v", err)
		return label.NewCatalog(), nil
	}
	return label.LoadCatalog(path)
}
