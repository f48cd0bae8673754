package label

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/qrsheet/qrsheet/pkg/errors"
)

// appName is used for the user config directory (~/.config/qrsheet/).
const appName = "qrsheet"

// builtins is the shipped template catalog. It is constructed once and never
// mutated; adding a template is a data-only change.
//
// The Avery values come from the L4731REV-25 data sheet: A4, 189 labels of
// 25.4 x 10 mm in a 27x7 grid with a 2.5 mm column gap and touching rows.
// The 1 mm left inset keeps content off the rounded die-cut edge.
var builtins = map[string]Template{
	"avery-l4731rev-25": {
		Key:          "avery-l4731rev-25",
		Name:         "Avery L4731REV-25 (A4)",
		PageName:     PageA4.Name,
		PageW:        PageA4.W,
		PageH:        PageA4.H,
		MarginTop:    13.6,
		MarginBottom: 13.6,
		MarginLeft:   8.5,
		MarginRight:  8.5,
		Rows:         27,
		Cols:         7,
		GapX:         2.5,
		GapY:         0.0,
		InsetLeft:    1.0,
		InsetRight:   0.0,
	},
}

// =============================================================================
// Catalog - Template Registry
// =============================================================================

// Catalog is a read-only registry of named sheet templates: the shipped
// built-ins plus any user-defined templates loaded from a TOML file.
type Catalog struct {
	templates map[string]Template
}

// NewCatalog returns a catalog containing only the built-in templates.
func NewCatalog() *Catalog {
	m := make(map[string]Template, len(builtins))
	for k, t := range builtins {
		m[k] = t
	}
	return &Catalog{templates: m}
}

// LoadCatalog returns the built-in catalog merged with user templates from
// path. A missing file is not an error; a user template reusing a built-in
// key is.
func LoadCatalog(path string) (*Catalog, error) {
	c := NewCatalog()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read template catalog %s", path)
	}

	var file struct {
		Templates []Template `toml:"template"`
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "parse template catalog %s", path)
	}

	for _, t := range file.Templates {
		if err := errors.ValidateTemplateKey(t.Key); err != nil {
			return nil, err
		}
		if _, exists := c.templates[t.Key]; exists {
			return nil, errors.New(errors.ErrCodeInvalidTemplate, "duplicate template key %q in %s", t.Key, path)
		}
		if err := t.Validate(); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "template %q in %s", t.Key, path)
		}
		c.templates[t.Key] = t
	}
	return c, nil
}

// DefaultCatalogPath returns the user template file location,
// $XDG_CONFIG_HOME/qrsheet/templates.toml (or ~/.config/qrsheet/).
func DefaultCatalogPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "templates.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "templates.toml"), nil
}

// Get looks up a template by key.
func (c *Catalog) Get(key string) (Template, error) {
	t, ok := c.templates[key]
	if !ok {
		return Template{}, errors.New(errors.ErrCodeTemplateNotFound, "unknown template %q (try 'qrsheet templates')", key)
	}
	return t, nil
}

// Keys returns all template keys in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.templates))
	for k := range c.templates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns all templates ordered by key.
func (c *Catalog) All() []Template {
	keys := c.Keys()
	out := make([]Template, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.templates[k])
	}
	return out
}

// Len returns the number of templates in the catalog.
func (c *Catalog) Len() int {
	return len(c.templates)
}
