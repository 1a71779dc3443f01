package tacit

import "strconv"

// itoa is strconv.Itoa, aliased for the attribute builders.
func itoa(i int) string {
	return strconv.Itoa(i)
}

// ftoa renders a float for value attributes without exponent notation.
func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// clampIndex maps an index into [NoIndex, n): anything out of range
// becomes NoIndex.
func clampIndex(i, n int) int {
	if i < 0 || i >= n {
		return NoIndex
	}
	return i
}

// removeIndex drops v from a sorted-insertion slice of indices, if present.
func removeIndex(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// containsIndex reports whether v is present in s.
func containsIndex(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
