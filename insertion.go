package sorter

// Insertion returns a sorted copy of data using insertion sort.
// Each element is shifted left past every neighbor that is not before it,
// so equivalent elements never cross and the sort is stable.
func Insertion[E any](data []E, less LessFunc[E]) []E {
	arr := clone(data)

	for i := 1; i < len(arr); i++ {
		key := arr[i]
		j := i - 1
		for j >= 0 && !less(arr[j], key) {
			arr[j+1] = arr[j]
			j--
		}
		arr[j+1] = key
	}

	return arr
}
