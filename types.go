package sorter

import (
	"fmt"
	"strings"
)

// LessFunc reports whether a belongs at or before b in the desired order.
// Returning true for equal elements keeps the sorts stable.
// The function must be consistent for the same pair of arguments; an
// inconsistent LessFunc produces an unspecified permutation of the input.
type LessFunc[E any] func(a, b E) bool

// Method identifies one of the sorting algorithms provided by this package.
type Method int

const (
	// MethodMerge is a top-down recursive merge sort. O(n log n).
	MethodMerge Method = iota
	// MethodInsertion is a straight insertion sort. O(n²), O(n) on sorted input.
	MethodInsertion
	// MethodBubble is a bubble sort that stops after the first pass without swaps.
	MethodBubble
)

// DefaultMethod is the method name used when none is configured.
const DefaultMethod = "merge"

var methodNames = [...]string{
	MethodMerge:     "merge",
	MethodInsertion: "insertion",
	MethodBubble:    "bubble",
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// Methods returns the names of all valid methods in declaration order.
func Methods() []string {
	names := make([]string, len(methodNames))
	copy(names, methodNames[:])
	return names
}

// ParseMethod converts a method name into a Method.
// The name is lowercased and must then match exactly; surrounding whitespace
// is not trimmed. Unknown names return an *InvalidMethodError.
func ParseMethod(name string) (Method, error) {
	lower := strings.ToLower(name)
	for i, n := range methodNames {
		if n == lower {
			return Method(i), nil
		}
	}
	return 0, NewInvalidMethodError(lower)
}
