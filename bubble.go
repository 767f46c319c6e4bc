package sorter

// Bubble returns a sorted copy of data using bubble sort.
// Adjacent elements are swapped only when the left one is not before the
// right one. Sorting stops early after a pass that performs no swaps.
func Bubble[E any](data []E, less LessFunc[E]) []E {
	arr := clone(data)
	n := len(arr)

	for i := 0; i < n; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if !less(arr[j], arr[j+1]) {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return arr
}
