package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = First([]string(nil))
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestIsMultiple(t *testing.T) {
	assert.False(t, IsMultiple([]int{}))
	assert.False(t, IsMultiple([]int{1}))
	assert.True(t, IsMultiple([]int{1, 2}))
}

func TestProduct(t *testing.T) {
	tests := []struct {
		name     string
		choices  [][]string
		expected [][]string
	}{
		{
			name:     "no lists",
			choices:  nil,
			expected: [][]string{{}},
		},
		{
			name:     "single list",
			choices:  [][]string{{"a", "b"}},
			expected: [][]string{{"a"}, {"b"}},
		},
		{
			name:    "first varies slowest",
			choices: [][]string{{"a", "b"}, {"x", "y"}},
			expected: [][]string{
				{"a", "x"}, {"a", "y"},
				{"b", "x"}, {"b", "y"},
			},
		},
		{
			name:     "empty list yields nothing",
			choices:  [][]string{{"a"}, {}},
			expected: [][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Product(tt.choices, 16))
		})
	}
}

func TestProduct_Size(t *testing.T) {
	two := []int{0, 1}
	assert.Len(t, Product([][]int{two, two, two}, 16), 8)
	assert.Len(t, Product([][]int{two, two, two}, 8), 8)
	assert.Empty(t, Product([][]int{two}, 0))
}

func TestProduct_Limit(t *testing.T) {
	two := []int{0, 1}

	tests := []struct {
		name  string
		lists int
	}{
		{"wraps to zero", 64},
		{"wraps negative", 63},
		{"exceeds int", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			choices := make([][]int, tt.lists)
			for i := range choices {
				choices[i] = two
			}

			got := Product(choices, 3)
			require.Len(t, got, 3)

			for _, combo := range got {
				assert.Len(t, combo, tt.lists)
			}

			// Prefix of the full product: only the last positions move.
			assert.Equal(t, 0, got[0][tt.lists-1])
			assert.Equal(t, 1, got[1][tt.lists-1])
			assert.Equal(t, 1, got[2][tt.lists-2])
			assert.Equal(t, 0, got[2][tt.lists-1])
			assert.NotContains(t, got[2][:tt.lists-2], 1)
		})
	}
}

func TestProduct_EmptyListAfterLimit(t *testing.T) {
	two := []int{0, 1}
	choices := [][]int{}
	for range 70 {
		choices = append(choices, two)
	}

	assert.Empty(t, Product(append(choices, []int{}), 4))
}
