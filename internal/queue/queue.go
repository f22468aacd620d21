// queue is a package that provides a FIFO queue on top of a deque.
package queue

import (
	"errors"
	"fmt"
	"iter"

	"github.com/symonk/linlist/internal/contract"
	"github.com/symonk/linlist/internal/deque"
)

var (
	// ErrEmptyQueue is returned when popping or peeking an empty queue.
	ErrEmptyQueue = fmt.Errorf("queue is empty: %w", contract.ErrEmptyContainer)
)

// Queue enqueues at the rear of its deque and dequeues from the front.
// It never pushes to the front of the deque.
type Queue[T any] struct {
	contract.Sealed
	inner deque.Deque[T]
}

// Ensure Queue implements Container
var _ contract.Container[any] = (*Queue[any])(nil)

// New returns a pointer to an empty Queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push enqueues item at the rear.
func (q *Queue[T]) Push(item T) {
	q.inner.PushBack(item)
}

// Pop dequeues the front item.
func (q *Queue[T]) Pop() (T, error) {
	return q.translate(q.inner.Pop())
}

// Peek returns the front item without dequeuing it.
func (q *Queue[T]) Peek() (T, error) {
	return q.translate(q.inner.Peek())
}

func (q *Queue[T]) translate(v T, err error) (T, error) {
	if errors.Is(err, deque.ErrEmptyDeque) {
		return v, ErrEmptyQueue
	}
	return v, err
}

func (q *Queue[T]) IsEmpty() bool {
	return q.inner.IsEmpty()
}

func (q *Queue[T]) Len() int {
	return q.inner.Len()
}

func (q *Queue[T]) Clear() {
	q.inner.Clear()
}

// All yields the items from front to rear.
func (q *Queue[T]) All() iter.Seq[T] {
	return q.inner.All()
}

func (q *Queue[T]) Slice() []T {
	return q.inner.Slice()
}

func (q *Queue[T]) Empty() bool { return q.inner.Empty() }

func (q *Queue[T]) Size() int { return q.inner.Size() }

func (q *Queue[T]) Values() []interface{} { return q.inner.Values() }

func (q *Queue[T]) String() string {
	var items string
	for v := range q.All() {
		if items != "" {
			items += " "
		}
		items += fmt.Sprint(v)
	}
	return "Queue\n" + items
}
