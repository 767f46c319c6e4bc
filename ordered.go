package sorter

import "cmp"

// Ordered is a LessFunc for cmp.Ordered types that sorts ascending.
// It returns true for equal values so sorts using it are stable.
// NaN floats are treated as equal to everything and keep their input position
// relative to their neighbours.
func Ordered[T cmp.Ordered](a, b T) bool {
	return !(a > b)
}

// Reverse returns a LessFunc ordering elements opposite to less.
// Equivalent elements keep their input order.
func Reverse[E any](less LessFunc[E]) LessFunc[E] {
	return func(a, b E) bool {
		return less(b, a)
	}
}

// IsSorted reports whether every adjacent pair of data satisfies less
func IsSorted[E any](data []E, less LessFunc[E]) bool {
	for i := 1; i < len(data); i++ {
		if !less(data[i-1], data[i]) {
			return false
		}
	}
	return true
}
