// insertion is a package that sorts singly linked chains in place by
// relinking their nodes.
package insertion

import (
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"

	"github.com/symonk/linlist/internal/node"
)

// Sort orders the chain at *head ascending.  Nodes are relinked, values
// are never copied.  The sort is not stable: a node whose value equals
// the current head of the sorted run is spliced in front of it.
// Runs in O(n^2), or O(n) for a non-increasing input.
func Sort[T constraints.Ordered](head **node.Node[T]) {
	if head == nil || *head == nil || (*head).Next == nil {
		return
	}
	var sorted *node.Node[T]
	for current := *head; current != nil; {
		next := current.Next
		if sorted == nil || sorted.Value >= current.Value {
			current.Next = sorted
			sorted = current
		} else {
			search := sorted
			for search.Next != nil && search.Next.Value < current.Value {
				search = search.Next
			}
			current.Next = search.Next
			search.Next = current
		}
		current = next
	}
	*head = sorted
}

// SortFunc is Sort driven by a three way comparison: cmp(a, b) is
// negative when a orders before b, zero when equal, positive otherwise.
func SortFunc[T any](head **node.Node[T], cmp func(a, b T) int) {
	if head == nil || *head == nil || (*head).Next == nil {
		return
	}
	var sorted *node.Node[T]
	for current := *head; current != nil; {
		next := current.Next
		if sorted == nil || cmp(sorted.Value, current.Value) >= 0 {
			current.Next = sorted
			sorted = current
		} else {
			search := sorted
			for search.Next != nil && cmp(search.Next.Value, current.Value) < 0 {
				search = search.Next
			}
			current.Next = search.Next
			search.Next = current
		}
		current = next
	}
	*head = sorted
}

// SortComparator sorts the chain with a gods comparator such as
// utils.IntComparator.
func SortComparator[T any](head **node.Node[T], comparator utils.Comparator) {
	SortFunc(head, func(a, b T) int {
		return comparator(a, b)
	})
}
