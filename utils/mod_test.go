package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"), "Should return the first match")
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3), "Should return -1 when absent")
}

func TestCount(t *testing.T) {
	require.Equal(t, 2, Count([]int{1, 2, 1}, 1))
	require.Equal(t, 0, Count[int](nil, 1))
}
