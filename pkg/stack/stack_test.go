package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	s := New[int](2)
	require.True(t, s.Empty())

	for i := 0; i < 5; i++ {
		s.Push(i)
	}
	require.Equal(t, 5, s.Size())
	require.Equal(t, 4, s.Top())

	for i := 4; i >= 0; i-- {
		require.Equal(t, i, s.Pop())
	}
	require.True(t, s.Empty())
}

func TestEmptyStackPanics(t *testing.T) {
	s := New[string](0)
	require.PanicsWithValue(t, ErrEmptyStack, func() { s.Pop() })
	require.PanicsWithValue(t, ErrEmptyStack, func() { s.Top() })
}
