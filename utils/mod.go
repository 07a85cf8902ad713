package utils

// Pop removes and returns the last element of the slice.
func Pop[T any](slice *[]T) (T, bool) {
	var zero T
	n := len(*slice)
	if n == 0 {
		return zero, false
	}
	item := (*slice)[n-1]
	(*slice)[n-1] = zero
	*slice = (*slice)[:n-1]
	return item, true
}

// Clone returns a copy of the slice that never aliases the original.
func Clone[T any](slice []T) []T {
	out := make([]T, len(slice))
	copy(out, slice)
	return out
}
