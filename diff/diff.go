// Package diff compares two sorted slices and reports the items that exist
// in only one of them.
package diff

import (
	"errors"
	"io"

	"github.com/lanrat/sorter"
)

// Slices walks two slices sorted by less and calls resultFunc for each item
// found in only one of them. Items a and b are considered the same when
// less(a, b) and less(b, a) both hold. Repeated items are matched one for one.
//
// Both slices MUST already be sorted by less; this is not validated.
// The first error returned by resultFunc stops the walk and is returned along
// with the counts gathered so far.
func Slices[T any](a, b []T, less sorter.LessFunc[T], resultFunc ResultFunc[T]) (r Result, err error) {
	if less == nil || resultFunc == nil {
		return Result{}, errors.New("diff.Slices() less and resultFunc must not be nil")
	}

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		aBefore := less(a[i], b[j])
		bBefore := less(b[j], a[i])
		switch {
		case aBefore && bBefore:
			r.Common++
			r.TotalA++
			r.TotalB++
			i++
			j++
		case aBefore:
			r.TotalA++
			r.ExtraA++
			if err = resultFunc(OLD, a[i]); err != nil {
				return
			}
			i++
		default:
			r.TotalB++
			r.ExtraB++
			if err = resultFunc(NEW, b[j]); err != nil {
				return
			}
			j++
		}
	}
	// only one side has data left
	for ; i < len(a); i++ {
		r.TotalA++
		r.ExtraA++
		if err = resultFunc(OLD, a[i]); err != nil {
			return
		}
	}
	for ; j < len(b); j++ {
		r.TotalB++
		r.ExtraB++
		if err = resultFunc(NEW, b[j]); err != nil {
			return
		}
	}
	return
}

// PrintDiff runs Slices over a and b, writing every difference to w in the
// form produced by Printer.
func PrintDiff[T any](w io.Writer, a, b []T, less sorter.LessFunc[T]) (Result, error) {
	return Slices(a, b, less, Printer[T](w))
}
