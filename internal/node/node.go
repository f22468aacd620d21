// node is a package that provides the singly linked cell shared by
// every container and by the insertion sort.
package node

import (
	"fmt"
	"iter"
	"strings"
)

// Node is a single link in a chain.  A node is owned by exactly one
// predecessor (or by the head reference of its container) and must
// never appear in more than one chain at a time.
type Node[T any] struct {
	Value T
	Next  *Node[T]
}

// New returns a detached node holding v.
func New[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Chain links the values into a new chain in argument order and
// returns its head, or nil when no values are given.
func Chain[T any](vs ...T) *Node[T] {
	var head, tail *Node[T]
	for _, v := range vs {
		n := New(v)
		if head == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}
	return head
}

// All yields the values of the chain starting at head.
func All[T any](head *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := head; n != nil; n = n.Next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Values collects the chain into a slice.
func Values[T any](head *Node[T]) []T {
	var vs []T
	for v := range All(head) {
		vs = append(vs, v)
	}
	return vs
}

// Len walks the chain and counts its nodes.
func Len[T any](head *Node[T]) int {
	var n int
	for c := head; c != nil; c = c.Next {
		n++
	}
	return n
}

// String renders the chain as space separated values.
func String[T any](head *Node[T]) string {
	var sb strings.Builder
	for n := head; n != nil; n = n.Next {
		if n != head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.Value)
	}
	return sb.String()
}

// Release tears the chain down, severing every link so no node keeps
// its successor reachable.
func Release[T any](head *Node[T]) {
	for head != nil {
		next := head.Next
		head.Next = nil
		head = next
	}
}
