package diff

import (
	"cmp"

	"github.com/lanrat/sorter"
)

// Ordered performs Slices on two ascending slices of a cmp.Ordered type.
func Ordered[T cmp.Ordered](a, b []T, resultFunc ResultFunc[T]) (Result, error) {
	return Slices(a, b, sorter.Ordered[T], resultFunc)
}

// Strings performs Slices on two lexically sorted string slices.
func Strings(a, b []string, resultFunc StringResultFunc) (Result, error) {
	return Ordered(a, b, ResultFunc[string](resultFunc))
}
