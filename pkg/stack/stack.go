package stack

import "errors"

var ErrEmptyStack = errors.New("empty stack")

// Stack is a LIFO of T. It is not safe for concurrent use.
type Stack[T any] interface {
	Push(v T)
	Pop() T
	Top() T
	Size() int
	Empty() bool
}

type stack[T any] struct {
	s []T
}

func New[T any](initialSize int) Stack[T] {
	return &stack[T]{make([]T, 0, initialSize)}
}

func (s *stack[T]) Push(value T) {
	s.s = append(s.s, value)
}

// Pop panics with ErrEmptyStack when the stack is empty.
func (s *stack[T]) Pop() T {
	l := len(s.s)
	if l == 0 {
		panic(ErrEmptyStack)
	}

	value := s.s[l-1]
	var zero T
	s.s[l-1] = zero
	s.s = s.s[:l-1]
	return value
}

func (s *stack[T]) Top() T {
	l := len(s.s)
	if l == 0 {
		panic(ErrEmptyStack)
	}

	return s.s[l-1]
}

func (s *stack[T]) Size() int {
	return len(s.s)
}

func (s *stack[T]) Empty() bool {
	return len(s.s) == 0
}
