package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		expected []string
	}{
		{"forward", 0, 2, []string{"b", "c", "a", "d"}},
		{"backward", 3, 1, []string{"a", "d", "b", "c"}},
		{"same position", 2, 2, []string{"a", "b", "c", "d"}},
		{"clamped past end", 0, 99, []string{"b", "c", "d", "a"}},
		{"clamped before start", 2, -5, []string{"c", "a", "b", "d"}},
		{"unknown source", 7, 0, []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []string{"a", "b", "c", "d"}
			got := Move(items, tt.from, tt.to)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, []string{"a", "b", "c", "d"}, items, "input must not be mutated")
		})
	}
}

func TestMove_Empty(t *testing.T) {
	assert.Empty(t, Move([]int{}, 0, 0))
}

func TestPositions_DenseAndUnique(t *testing.T) {
	moved := Move([]uint{10, 11, 12, 13, 14}, 4, 1)
	positions := Positions(moved, func(id uint) uint { return id })

	assert.Equal(t, map[uint]int{10: 0, 14: 1, 11: 2, 12: 3, 13: 4}, positions)

	seen := map[int]bool{}
	for _, p := range positions {
		assert.False(t, seen[p])
		seen[p] = true
	}
	assert.Len(t, seen, 5)
}

func TestIndexOf(t *testing.T) {
	items := []string{"hero", "about", "faq"}
	assert.Equal(t, 2, IndexOf(items, func(s string) bool { return s == "faq" }))
	assert.Equal(t, -1, IndexOf(items, func(s string) bool { return s == "contact" }))
}
