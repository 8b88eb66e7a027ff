// Package common holds small generic helpers shared by the public packages.
package common

// UnknownStr is printed for enum values without a name.
const UnknownStr = "unknown"

// IsMultiple returns true if the slice has more than one element.
func IsMultiple[S ~[]E, E any](s S) bool {
	return len(s) > 1
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Product returns at most limit combinations of the Cartesian product of the
// given choice lists in lexicographic order: the first list varies slowest,
// the last fastest. A truncated result is a prefix of the full product.
//
// A product over zero lists has exactly one (empty) combination. A product
// containing an empty list has none.
func Product[E any](choices [][]E, limit int) [][]E {
	total := 1
	for _, c := range choices {
		if len(c) == 0 {
			return [][]E{}
		}

		// Saturate at limit instead of overflowing.
		if total > limit/len(c) {
			total = limit
		} else {
			total *= len(c)
		}
	}

	total = max(0, min(total, limit))

	result := make([][]E, 0, total)
	if total == 0 {
		return result
	}

	idx := make([]int, len(choices))

	for range total {
		combo := make([]E, len(choices))
		for i, c := range choices {
			combo[i] = c[idx[i]]
		}

		result = append(result, combo)

		// Odometer increment from the rightmost position.
		for i := len(idx) - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(choices[i]) {
				break
			}

			idx[i] = 0
		}
	}

	return result
}
