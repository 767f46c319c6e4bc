package sorter

// Uniq returns a copy of sorted with consecutive equivalent elements removed.
// Two elements are equivalent when less(a, b) and less(b, a) both hold.
// The first element of each run of equivalents is kept. Input that is not
// sorted by less only has adjacent duplicates removed.
func Uniq[E any](sorted []E, less LessFunc[E]) []E {
	out := make([]E, 0, len(sorted))
	for i, d := range sorted {
		if i > 0 {
			prior := out[len(out)-1]
			if less(prior, d) && less(d, prior) {
				continue
			}
		}
		out = append(out, d)
	}
	return out
}
