package label

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/qrsheet/qrsheet/pkg/errors"
)

func TestCatalogBuiltins(t *testing.T) {
	c := NewCatalog()
	if c.Len() < 1 {
		t.Fatal("catalog has no built-in templates")
	}

	tpl, err := c.Get("avery-l4731rev-25")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if tpl.Name != "Avery L4731REV-25 (A4)" {
		t.Errorf("Name = %q", tpl.Name)
	}

	_, err = c.Get("no-such-template")
	if !errors.Is(err, errors.ErrCodeTemplateNotFound) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeTemplateNotFound)
	}
}

func TestCatalogKeysSorted(t *testing.T) {
	c := NewCatalog()
	keys := c.Keys()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not sorted: %v", keys)
		}
	}
	if len(c.All()) != len(keys) {
		t.Fatalf("All() and Keys() disagree")
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	c, err := LoadCatalog(filepath.Join(t.TempDir(), "templates.toml"))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if c.Len() != NewCatalog().Len() {
		t.Fatal("missing file changed the catalog")
	}
}

func TestLoadCatalogUserTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.toml")
	data := `
[[template]]
key = "herma-4201"
name = "HERMA 4201 (A4)"
page_name = "A4"
page_w_mm = 210.0
page_h_mm = 297.0
margin_top_mm = 9.0
margin_bottom_mm = 9.0
margin_left_mm = 9.75
margin_right_mm = 9.75
rows = 16
cols = 4
gap_x_mm = 2.5
gap_y_mm = 0.0
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	tpl, err := c.Get("herma-4201")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if tpl.Rows != 16 || tpl.Cols != 4 {
		t.Fatalf("grid = %dx%d, want 16x4", tpl.Rows, tpl.Cols)
	}
}

func TestLoadCatalogRejectsBadTemplates(t *testing.T) {
	tests := []struct {
		name string
		toml string
		code errors.Code
	}{
		{
			"duplicate of builtin",
			"[[template]]\nkey = \"avery-l4731rev-25\"\nname = \"dup\"\npage_w_mm = 210.0\npage_h_mm = 297.0\nrows = 1\ncols = 1\n",
			errors.ErrCodeInvalidTemplate,
		},
		{
			"bad key",
			"[[template]]\nkey = \"Not A Slug\"\nname = \"x\"\npage_w_mm = 210.0\npage_h_mm = 297.0\nrows = 1\ncols = 1\n",
			errors.ErrCodeInvalidTemplate,
		},
		{
			"invalid layout",
			"[[template]]\nkey = \"broken\"\nname = \"x\"\npage_w_mm = 210.0\npage_h_mm = 297.0\nrows = 0\ncols = 1\n",
			errors.ErrCodeInvalidGrid,
		},
		{
			"not toml",
			"{ this is json }",
			errors.ErrCodeInvalidTemplate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "templates.toml")
			if err := os.WriteFile(path, []byte(tt.toml), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadCatalog(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.code) {
				t.Fatalf("error code = %s, want %s (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestDefaultCatalogPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	path, err := DefaultCatalogPath()
	if err != nil {
		t.Fatalf("DefaultCatalogPath: %v", err)
	}
	if want := filepath.Join("/tmp/xdg-test", "qrsheet", "templates.toml"); path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}
}
