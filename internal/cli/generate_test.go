package cli

import (
	"io"
	"testing"

	"github.com/qrsheet/qrsheet/pkg/errors"
	"github.com/qrsheet/qrsheet/pkg/label"
)

func TestConfigFromFlags(t *testing.T) {
	catalog := label.NewCatalog()
	opts := generateOpts{
		template: "avery-l4731rev-25",
		output:   "labels.pdf",
		pages:    2,
		count:    100,
		prefix:   "ASN",
		start:    1,
		pad:      5,
		skips:    []string{"0,0", "0,1"},
		scaleX:   1.0,
		scaleY:   1.0,
	}

	cfg, err := configFromFlags(catalog, opts)
	if err != nil {
		t.Fatalf("configFromFlags: %v", err)
	}
	if cfg.template.Key != "avery-l4731rev-25" {
		t.Errorf("template = %q", cfg.template.Key)
	}
	if len(cfg.skip) != 2 {
		t.Errorf("skip set has %d entries, want 2", len(cfg.skip))
	}
	if !cfg.caption {
		t.Error("caption should default to on")
	}
	if !cfg.tr.IsIdentity() {
		t.Errorf("transform = %+v, want identity", cfg.tr)
	}
}

func TestConfigFromFlagsErrors(t *testing.T) {
	catalog := label.NewCatalog()
	base := generateOpts{
		template: "avery-l4731rev-25",
		output:   "labels.pdf",
		pages:    1,
		prefix:   "ASN",
		start:    1,
		pad:      5,
		scaleX:   1.0,
		scaleY:   1.0,
	}

	tests := []struct {
		name   string
		mutate func(*generateOpts)
		code   errors.Code
	}{
		{"unknown template", func(o *generateOpts) { o.template = "nope" }, errors.ErrCodeTemplateNotFound},
		{"bad skip", func(o *generateOpts) { o.skips = []string{"x"} }, errors.ErrCodeInvalidInput},
		{"negative start", func(o *generateOpts) { o.start = -1 }, errors.ErrCodeInvalidCode},
		{"zero scale", func(o *generateOpts) { o.scaleX = 0 }, errors.ErrCodeInvalidTransform},
		{"empty output", func(o *generateOpts) { o.output = "" }, errors.ErrCodeInvalidPath},
		{"zero pages", func(o *generateOpts) { o.pages = 0 }, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := base
			tt.mutate(&opts)
			_, err := configFromFlags(catalog, opts)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.code) {
				t.Fatalf("error code = %s, want %s (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{"generate": false, "templates": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
