package label

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/qrsheet/qrsheet/pkg/errors"
)

// =============================================================================
// CodeSpec - Sequential Code Series
// =============================================================================

// CodeSpec describes a series of label payload codes: a fixed prefix followed
// by a zero-padded incrementing counter (e.g., "ASN00042").
type CodeSpec struct {
	Prefix   string // literal prefix, may be empty
	Start    int    // first counter value
	Count    int    // number of codes in the series
	PadWidth int    // minimum digit count, filled with leading zeros (0 = none)
}

// Validate checks the spec for structural errors.
func (s CodeSpec) Validate() error {
	if s.Count < 0 {
		return errors.New(errors.ErrCodeInvalidCode, "code count must be >= 0, got %d", s.Count)
	}
	if s.Start < 0 {
		return errors.New(errors.ErrCodeInvalidCode, "start number must be >= 0, got %d", s.Start)
	}
	if s.PadWidth < 0 {
		return errors.New(errors.ErrCodeInvalidCode, "pad width must be >= 0, got %d", s.PadWidth)
	}
	for _, r := range s.Prefix {
		if unicode.IsControl(r) {
			return errors.New(errors.ErrCodeInvalidCode, "prefix contains control characters")
		}
	}
	return nil
}

// Code returns the i-th code of the series.
//
// Numbers that need more digits than PadWidth are emitted at their natural
// width. This is deliberate: numeric correctness wins over fixed-width
// formatting, and the caller is responsible for choosing a pad width large
// enough for Start+Count-1 if downstream systems require fixed-width codes.
func (s CodeSpec) Code(i int) string {
	n := s.Start + i
	if s.PadWidth <= 0 {
		return s.Prefix + strconv.Itoa(n)
	}
	return s.Prefix + fmt.Sprintf("%0*d", s.PadWidth, n)
}

// Codes returns all Count codes in order. The result is a pure function of
// the spec; there is no hidden counter state, so repeated calls return
// identical series.
func (s CodeSpec) Codes() []string {
	codes := make([]string, s.Count)
	for i := range codes {
		codes[i] = s.Code(i)
	}
	return codes
}

// NumberPart returns just the formatted counter portion of the i-th code,
// without the prefix. The renderer uses it for the two-line caption fallback.
func (s CodeSpec) NumberPart(i int) string {
	n := s.Start + i
	if s.PadWidth <= 0 {
		return strconv.Itoa(n)
	}
	return fmt.Sprintf("%0*d", s.PadWidth, n)
}
