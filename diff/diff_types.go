package diff

import (
	"fmt"
	"io"
)

// Delta represents the type of difference found when comparing two sorted slices.
// It indicates whether an item is unique to the first slice (OLD) or second slice (NEW).
type Delta int

const (
	// NEW indicates an item that exists only in the second slice (B).
	NEW Delta = iota // +

	// OLD indicates an item that exists only in the first slice (A).
	OLD // -
)

func (d Delta) String() string {
	switch d {
	case NEW:
		return ">"
	case OLD:
		return "<"
	default:
		return "?"
	}
}

// ResultFunc is called once for each item that appears in only one of the two slices.
// If the function returns an error, the diff stops and returns that error.
type ResultFunc[T any] func(Delta, T) error

// StringResultFunc is the ResultFunc used by Strings.
type StringResultFunc func(Delta, string) error

// Result contains counts describing the differences between two sorted slices.
type Result struct {
	// ExtraA is the count of items that exist only in A (OLD items)
	ExtraA uint64

	// ExtraB is the count of items that exist only in B (NEW items)
	ExtraB uint64

	// TotalA is the total count of items processed from A
	TotalA uint64

	// TotalB is the total count of items processed from B
	TotalB uint64

	// Common is the count of items that exist in both
	Common uint64
}

func (r *Result) String() string {
	return fmt.Sprintf("A: %d/%d\tB: %d/%d\tC: %d", r.ExtraA, r.TotalA, r.ExtraB, r.TotalB, r.Common)
}

// Printer returns a ResultFunc writing each difference to w as
// the Delta symbol followed by the item.
func Printer[T any](w io.Writer) ResultFunc[T] {
	return func(d Delta, item T) error {
		_, err := fmt.Fprintf(w, "%s %v\n", d, item)
		return err
	}
}
