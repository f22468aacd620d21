package contract

import (
	"errors"

	"github.com/emirpasic/gods/containers"
)

var (
	// ErrEmptyContainer is returned by Pop and Peek (and the deque's
	// back end equivalents) when the container holds no elements.
	ErrEmptyContainer = errors.New("container is empty")
)

// Container is the capability set shared by the stack, the deque and
// the queue.  It is closed: only types embedding Sealed satisfy it.
//
// Every container is also a gods container so it can be handed to code
// written against github.com/emirpasic/gods.
type Container[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, error)
	IsEmpty() bool

	containers.Container

	sealed()
}

// Sealed marks the linear list variants as implementations of Container.
type Sealed struct{}

func (Sealed) sealed() {}
