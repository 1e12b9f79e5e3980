// Package ordering implements the move-then-renumber rule used for every
// drag-and-drop list of the site.
package ordering

// Move returns a copy of items with the element at from relocated to to.
// to is clamped into [0, len(items)-1]. An out of range from leaves the order unchanged.
func Move[T any](items []T, from, to int) []T {
	out := make([]T, len(items))
	copy(out, items)
	if from < 0 || from >= len(out) {
		return out
	}
	to = Clamp(to, len(out))
	if from == to {
		return out
	}

	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}

// Clamp bounds position to a valid index of a list of length n.
func Clamp(position, n int) int {
	if n == 0 || position < 0 {
		return 0
	}
	if position >= n {
		return n - 1
	}
	return position
}

// IndexOf returns the index of the first item matching pred, or -1.
func IndexOf[T any](items []T, pred func(T) bool) int {
	for i, item := range items {
		if pred(item) {
			return i
		}
	}
	return -1
}

// Positions maps each key to its dense index 0..N-1.
func Positions[T any, K comparable](items []T, key func(T) K) map[K]int {
	out := make(map[K]int, len(items))
	for i, item := range items {
		out[key(item)] = i
	}
	return out
}
