package label_test

import (
	"fmt"

	"github.com/qrsheet/qrsheet/pkg/label"
)

func ExampleCodeSpec_Codes() {
	spec := label.CodeSpec{Prefix: "ASN", Start: 100, Count: 3, PadWidth: 5}
	for _, code := range spec.Codes() {
		fmt.Println(code)
	}
	// Output:
	// ASN00100
	// ASN00101
	// ASN00102
}

func ExampleLayout() {
	// A tiny 2x2 sheet: 100x100 mm page, 10 mm margins, 2 mm gaps.
	tpl := label.Template{
		Key: "mini", Name: "Mini", PageName: "Custom",
		PageW: 100, PageH: 100,
		MarginTop: 10, MarginBottom: 10, MarginLeft: 10, MarginRight: 10,
		Rows: 2, Cols: 2, GapX: 2, GapY: 2,
	}

	cells, err := label.Layout(tpl, 1, label.Identity(), nil)
	if err != nil {
		panic(err)
	}
	for _, c := range cells {
		fmt.Printf("(%d,%d) at %.0f,%.0f size %.0fx%.0f\n", c.Row, c.Col, c.X, c.Y, c.W, c.H)
	}
	// Output:
	// (0,0) at 10,10 size 39x39
	// (0,1) at 51,10 size 39x39
	// (1,0) at 10,51 size 39x39
	// (1,1) at 51,51 size 39x39
}

func ExamplePair() {
	tpl := label.Template{
		Key: "strip", Name: "Strip", PageName: "Custom",
		PageW: 100, PageH: 40,
		MarginTop: 5, MarginBottom: 5, MarginLeft: 5, MarginRight: 5,
		Rows: 1, Cols: 3,
	}
	spec := label.CodeSpec{Prefix: "ASN", Start: 1, Count: 2, PadWidth: 3}

	cells, _ := label.Layout(tpl, 1, label.Identity(), nil)
	placements, _ := label.Pair(spec.Codes(), cells)
	for _, p := range placements {
		if p.Blank {
			fmt.Println("(blank)")
			continue
		}
		fmt.Println(p.Code)
	}
	// Output:
	// ASN001
	// ASN002
	// (blank)
}
