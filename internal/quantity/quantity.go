// Package quantity parses human-readable size strings into byte counts.
//
// It accepts the Kubernetes quantity grammar: binary suffixes (Ki, Mi, Gi,
// Ti), decimal suffixes (k, M, G, T) and bare integers, which denote raw
// bytes. Parsed values are normalized to bytes and can be converted to a
// target unit for rate multiplication.
package quantity

import (
	"errors"
	"fmt"

	"k8s.io/apimachinery/pkg/api/resource"
)

// ErrInvalidQuantity is returned when a size string cannot be parsed.
var ErrInvalidQuantity = errors.New("invalid quantity")

// Unit is the number of bytes in one unit of the given scale.
type Unit int64

const (
	Bytes Unit = 1

	// Decimal (SI) units.
	KB Unit = 1000
	MB Unit = 1000 * KB
	GB Unit = 1000 * MB
	TB Unit = 1000 * GB

	// Binary (IEC) units.
	KiB Unit = 1024
	MiB Unit = 1024 * KiB
	GiB Unit = 1024 * MiB
	TiB Unit = 1024 * GiB
)

// Parse parses a quantity string into a byte count. Negative quantities are
// rejected.
func Parse(s string) (int64, error) {
	q, err := resource.ParseQuantity(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, s)
	}
	if q.Sign() < 0 {
		return 0, fmt.Errorf("%w: %q: must not be negative", ErrInvalidQuantity, s)
	}
	return q.Value(), nil
}

// Validate reports whether s is a parseable, non-negative quantity. It is
// used as an input gate during prompting so malformed strings are rejected
// at entry.
func Validate(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Convert converts a byte count to the given unit.
func Convert(bytes int64, unit Unit) float64 {
	return float64(bytes) / float64(unit)
}

// ParseToUnit parses a quantity string and converts it to the given unit in
// one step.
func ParseToUnit(s string, unit Unit) (float64, error) {
	b, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return Convert(b, unit), nil
}
