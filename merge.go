package sorter

// Merge returns a sorted copy of data using a top-down merge sort.
// data is split at len(data)/2, both halves are sorted recursively and then
// merged, taking from the left half whenever less(left, right) is true.
// The sort is stable when less returns true for equal elements.
func Merge[E any](data []E, less LessFunc[E]) []E {
	if len(data) <= 1 {
		return clone(data)
	}

	mid := len(data) / 2
	left := Merge(data[:mid], less)
	right := Merge(data[mid:], less)

	return mergeHalves(left, right, less)
}

// mergeHalves merges two sorted slices into a new slice
func mergeHalves[E any](left, right []E, less LessFunc[E]) []E {
	out := make([]E, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if less(left[i], right[j]) {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	// at most one of these has anything left
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)
	return out
}

// clone returns an independent copy of data, never nil
func clone[E any](data []E) []E {
	out := make([]E, len(data))
	copy(out, data)
	return out
}
