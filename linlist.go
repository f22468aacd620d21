// linlist provides linear list containers (a stack, a deque and a queue)
// built on a shared singly linked node, along with an in place insertion
// sort for raw node chains.
//
// Containers are not safe for concurrent use.
package linlist

import (
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"

	"github.com/symonk/linlist/internal/contract"
	"github.com/symonk/linlist/internal/deque"
	"github.com/symonk/linlist/internal/insertion"
	"github.com/symonk/linlist/internal/node"
	"github.com/symonk/linlist/internal/queue"
	"github.com/symonk/linlist/internal/stack"
)

type (
	// Node is a single link of a chain.
	Node[T any] = node.Node[T]
	// Container is the capability set implemented by Stack, Deque and Queue.
	Container[T any] = contract.Container[T]
	Stack[T any]     = stack.Stack[T]
	Deque[T any]     = deque.Deque[T]
	Queue[T any]     = queue.Queue[T]
)

var (
	// ErrEmptyContainer is matched (via errors.Is) by every error returned
	// from popping or peeking an empty container.
	ErrEmptyContainer = contract.ErrEmptyContainer
	ErrEmptyStack     = stack.ErrEmptyStack
	ErrEmptyDeque     = deque.ErrEmptyDeque
	ErrEmptyQueue     = queue.ErrEmptyQueue
)

// NewStack returns an empty LIFO stack.
func NewStack[T any]() *Stack[T] { return stack.New[T]() }

// NewDeque returns an empty double ended queue.
func NewDeque[T any]() *Deque[T] { return deque.New[T]() }

// NewQueue returns an empty FIFO queue.
func NewQueue[T any]() *Queue[T] { return queue.New[T]() }

// Chain links vs into a chain and returns its head.
func Chain[T any](vs ...T) *Node[T] { return node.Chain(vs...) }

// Release severs every link of the chain at head.
func Release[T any](head *Node[T]) { node.Release(head) }

// InsertionSort sorts the chain at *head ascending by relinking nodes.
// Equal values are not guaranteed to keep their relative order.
func InsertionSort[T constraints.Ordered](head **Node[T]) { insertion.Sort(head) }

// InsertionSortFunc is InsertionSort under a three way comparison.
func InsertionSortFunc[T any](head **Node[T], cmp func(a, b T) int) { insertion.SortFunc(head, cmp) }

// InsertionSortComparator is InsertionSort under a gods comparator.
func InsertionSortComparator[T any](head **Node[T], c utils.Comparator) {
	insertion.SortComparator(head, c)
}

// Kind identifies the variant behind a Container.
type Kind int

const (
	KindUnknown Kind = iota
	KindStack
	KindDeque
	KindQueue
)

func (k Kind) String() string {
	switch k {
	case KindStack:
		return "stack"
	case KindDeque:
		return "deque"
	case KindQueue:
		return "queue"
	default:
		return "unknown"
	}
}

// KindOf reports which variant c is.  Container is closed over the three
// variants, so KindUnknown is only returned for a nil container.
func KindOf[T any](c Container[T]) Kind {
	switch c.(type) {
	case *Stack[T]:
		return KindStack
	case *Deque[T]:
		return KindDeque
	case *Queue[T]:
		return KindQueue
	default:
		return KindUnknown
	}
}
