// stack is a package that provides a LIFO stack over a singly linked chain.
package stack

import (
	"fmt"
	"iter"

	"github.com/symonk/linlist/internal/contract"
	"github.com/symonk/linlist/internal/node"
)

var (
	// ErrEmptyStack is returned when popping or peeking an empty stack.
	ErrEmptyStack = fmt.Errorf("stack is empty: %w", contract.ErrEmptyContainer)
)

// Stack pushes and pops at the top of its chain.  The zero value
// is an empty stack ready for use.
type Stack[T any] struct {
	contract.Sealed
	top  *node.Node[T]
	size int
}

// Ensure Stack implements Container
var _ contract.Container[any] = (*Stack[any])(nil)

// New returns a pointer to an empty Stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	n := node.New(item)
	n.Next = s.top
	s.top = n
	s.size++
}

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, error) {
	if s.IsEmpty() {
		var t T
		return t, ErrEmptyStack
	}
	old := s.top
	s.top = old.Next
	old.Next = nil
	s.size--
	return old.Value, nil
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.IsEmpty() {
		var t T
		return t, ErrEmptyStack
	}
	return s.top.Value, nil
}

func (s *Stack[T]) IsEmpty() bool {
	return s.top == nil
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	return s.size
}

// Clear releases every node on the stack.
func (s *Stack[T]) Clear() {
	node.Release(s.top)
	s.top = nil
	s.size = 0
}

// All yields the items from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return node.All(s.top)
}

// Slice returns the items from top to bottom.
func (s *Stack[T]) Slice() []T {
	return node.Values(s.top)
}

func (s *Stack[T]) Empty() bool { return s.IsEmpty() }

func (s *Stack[T]) Size() int { return s.size }

func (s *Stack[T]) Values() []interface{} {
	vs := make([]interface{}, 0, s.size)
	for v := range s.All() {
		vs = append(vs, v)
	}
	return vs
}

func (s *Stack[T]) String() string {
	return "Stack\n" + node.String(s.top)
}
