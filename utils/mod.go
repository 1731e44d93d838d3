package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Count returns how many times item appears in slice.
func Count[T comparable](slice []T, item T) int {
	n := 0
	for _, v := range slice {
		if v == item {
			n++
		}
	}
	return n
}
