// Package sorter implements stable merge, insertion and bubble sorts driven by
// a caller-supplied LessFunc. Every function returns a new slice and leaves
// its input untouched.
package sorter

import "fmt"

// Sort returns a sorted copy of data using the algorithm named by method.
// The name is matched case-insensitively against Methods(). An unknown name
// returns a nil slice and an *InvalidMethodError without reading data.
func Sort[E any](data []E, less LessFunc[E], method string) ([]E, error) {
	m, err := ParseMethod(method)
	if err != nil {
		return nil, err
	}
	return SortWith(data, less, m), nil
}

// SortWith returns a sorted copy of data using the algorithm m.
// It panics if m is not one of the declared Method constants.
func SortWith[E any](data []E, less LessFunc[E], m Method) []E {
	switch m {
	case MethodMerge:
		return Merge(data, less)
	case MethodInsertion:
		return Insertion(data, less)
	case MethodBubble:
		return Bubble(data, less)
	}
	panic(fmt.Sprintf("sorter: unknown method %d", int(m)))
}
