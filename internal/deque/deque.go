// deque is a package that provides a basic implementation of a double ended queue
// over a singly linked chain.
package deque

import (
	"fmt"
	"iter"

	"github.com/symonk/linlist/internal/contract"
	"github.com/symonk/linlist/internal/node"
)

var (
	// ErrEmptyDeque is returned when the deque is empty.
	ErrEmptyDeque = fmt.Errorf("deque is empty: %w", contract.ErrEmptyContainer)
)

// Deque is a basic implementation of a double ended queue.  front owns
// the chain, rear points at its last node without owning it.  There are
// no back links, so PopBack walks the chain and costs O(n); every other
// end operation is O(1).
//
// The zero value is an empty deque ready for use.
type Deque[T any] struct {
	contract.Sealed
	front *node.Node[T]
	rear  *node.Node[T]
	size  int
}

// Ensure Deque implements Container
var _ contract.Container[any] = (*Deque[any])(nil)

// New returns a new pointer to an instance of a Deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// Push puts a new item at the front of the deque.
func (d *Deque[T]) Push(item T) {
	n := node.New(item)
	if d.IsEmpty() {
		d.front, d.rear = n, n
	} else {
		n.Next = d.front
		d.front = n
	}
	d.size++
}

// PushBack puts a new item at the rear of the deque.
func (d *Deque[T]) PushBack(item T) {
	n := node.New(item)
	if d.IsEmpty() {
		d.front, d.rear = n, n
	} else {
		d.rear.Next = n
		d.rear = n
	}
	d.size++
}

// Pop removes the front item of the deque.
func (d *Deque[T]) Pop() (T, error) {
	if d.IsEmpty() {
		var t T
		return t, ErrEmptyDeque
	}
	old := d.front
	if d.front == d.rear {
		d.front, d.rear = nil, nil
	} else {
		d.front = old.Next
	}
	old.Next = nil
	d.size--
	return old.Value, nil
}

// PopBack removes the rear item of the deque.  The new rear is found
// by scanning forward from the front.
func (d *Deque[T]) PopBack() (T, error) {
	if d.IsEmpty() {
		var t T
		return t, ErrEmptyDeque
	}
	old := d.rear
	if d.front == d.rear {
		d.front, d.rear = nil, nil
	} else {
		prev := d.front
		for prev.Next != d.rear {
			prev = prev.Next
		}
		prev.Next = nil
		d.rear = prev
	}
	d.size--
	return old.Value, nil
}

// Peek returns the front item without removing it.
func (d *Deque[T]) Peek() (T, error) {
	if d.IsEmpty() {
		var t T
		return t, ErrEmptyDeque
	}
	return d.front.Value, nil
}

// PeekBack returns the rear item without removing it.
func (d *Deque[T]) PeekBack() (T, error) {
	if d.IsEmpty() {
		var t T
		return t, ErrEmptyDeque
	}
	return d.rear.Value, nil
}

func (d *Deque[T]) IsEmpty() bool {
	return d.front == nil
}

// Len returns the length of the Deque.
func (d *Deque[T]) Len() int {
	return d.size
}

// Clear releases the whole chain.
func (d *Deque[T]) Clear() {
	node.Release(d.front)
	d.front, d.rear = nil, nil
	d.size = 0
}

// All yields the items from front to rear.
func (d *Deque[T]) All() iter.Seq[T] {
	return node.All(d.front)
}

// Slice returns the items from front to rear.
func (d *Deque[T]) Slice() []T {
	return node.Values(d.front)
}

func (d *Deque[T]) Empty() bool { return d.IsEmpty() }

func (d *Deque[T]) Size() int { return d.size }

func (d *Deque[T]) Values() []interface{} {
	vs := make([]interface{}, 0, d.size)
	for v := range d.All() {
		vs = append(vs, v)
	}
	return vs
}

func (d *Deque[T]) String() string {
	return "Deque\n" + node.String(d.front)
}
