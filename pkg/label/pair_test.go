package label

import (
	"testing"

	"github.com/qrsheet/qrsheet/pkg/errors"
)

func TestPlanPages(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		perPage  int
		minPages int
		want     int
	}{
		{"exact fit", 189, 189, 1, 1},
		{"one over", 190, 189, 1, 2},
		{"min wins", 10, 189, 3, 3},
		{"zero codes", 0, 189, 1, 1},
		{"many pages", 1000, 189, 1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlanPages(tt.count, tt.perPage, tt.minPages)
			if err != nil {
				t.Fatalf("PlanPages: %v", err)
			}
			if got != tt.want {
				t.Errorf("PlanPages(%d, %d, %d) = %d, want %d", tt.count, tt.perPage, tt.minPages, got, tt.want)
			}
		})
	}
}

func TestPlanPagesNoUsableCells(t *testing.T) {
	_, err := PlanPages(10, 0, 1)
	if !errors.Is(err, errors.ErrCodeInvalidGrid) {
		t.Fatalf("error = %v, want %s", err, errors.ErrCodeInvalidGrid)
	}
}

func TestPairBlanksTrailingCells(t *testing.T) {
	cells, err := Layout(testTemplate(), 1, Identity(), nil)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	spec := CodeSpec{Prefix: "ASN", Start: 100, Count: 10, PadWidth: 4}

	placements, err := Pair(spec.Codes(), cells)
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}
	if len(placements) != len(cells) {
		t.Fatalf("got %d placements, want %d", len(placements), len(cells))
	}

	for i, p := range placements {
		if i < 10 {
			if p.Blank {
				t.Fatalf("placement %d unexpectedly blank", i)
			}
			if p.Code != spec.Code(i) || p.Index != i {
				t.Fatalf("placement %d = (%q, %d), want (%q, %d)", i, p.Code, p.Index, spec.Code(i), i)
			}
		} else {
			if !p.Blank || p.Code != "" || p.Index != -1 {
				t.Fatalf("trailing placement %d not blank: %+v", i, p)
			}
		}
	}

	// The first ten codes land in the first ten row-major cells of page 0.
	if placements[0].Cell.Row != 0 || placements[0].Cell.Col != 0 {
		t.Fatalf("first code at (%d,%d), want (0,0)", placements[0].Cell.Row, placements[0].Cell.Col)
	}
	if placements[9].Cell.Row != 1 || placements[9].Cell.Col != 2 {
		t.Fatalf("tenth code at (%d,%d), want (1,2)", placements[9].Cell.Row, placements[9].Cell.Col)
	}
}

func TestPairAllBlankWhenNoCodes(t *testing.T) {
	cells, err := Layout(testTemplate(), 1, Identity(), nil)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}

	placements, err := Pair(nil, cells)
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}
	if len(placements) != len(cells) {
		t.Fatalf("got %d placements, want %d", len(placements), len(cells))
	}
	for i, p := range placements {
		if !p.Blank {
			t.Fatalf("placement %d not blank", i)
		}
	}
}

func TestPairRejectsOverflow(t *testing.T) {
	cells, err := Layout(testTemplate(), 1, Identity(), nil)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	spec := CodeSpec{Prefix: "ASN", Start: 1, Count: len(cells) + 1, PadWidth: 5}

	if _, err := Pair(spec.Codes(), cells); err == nil {
		t.Fatal("Pair accepted more codes than cells")
	}
}
