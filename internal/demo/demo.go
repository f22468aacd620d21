// demo is a package that prints a usage transcript of the linear lists.
package demo

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/symonk/linlist"
)

// Demo writes the usage transcript.
type Demo struct {
	out        io.Writer
	values     []int
	color      bool
	containers bool
}

// New instantiates a Demo and applies the functional options to it.
// By default it sorts 5 3 1 4 2 onto stdout with colour enabled.
func New(opts ...Option) *Demo {
	d := &Demo{
		out:    os.Stdout,
		values: []int{5, 3, 1, 4, 2},
		color:  true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run prints the chain, sorts it, prints it again and releases it.
func (d *Demo) Run() error {
	head := linlist.Chain(d.values...)
	d.line("Original list:", head)
	linlist.InsertionSort(&head)
	d.line("Sorted list:", head)
	linlist.Release(head)

	if !d.containers {
		return nil
	}
	for _, c := range []linlist.Container[int]{
		linlist.NewStack[int](),
		linlist.NewQueue[int](),
	} {
		for _, v := range []int{1, 2, 3} {
			c.Push(v)
		}
		popped, err := drain(c)
		if err != nil {
			return err
		}
		d.printf("%s push 1 2 3, pop: %s\n", linlist.KindOf(c), join(popped))
	}
	return d.deque()
}

func (d *Demo) deque() error {
	dq := linlist.NewDeque[int]()
	dq.Push(1)
	dq.PushBack(2)
	dq.Push(3)
	d.printf("%s front 1, back 2, front 3: %s\n", linlist.KindOf[int](dq), join(dq.Slice()))
	v, err := dq.PopBack()
	if err != nil {
		return fmt.Errorf("deque pop back: %w", err)
	}
	d.printf("%s pop back: %d, leaving: %s\n", linlist.KindOf[int](dq), v, join(dq.Slice()))
	dq.Clear()
	return nil
}

func drain(c linlist.Container[int]) ([]int, error) {
	var vs []int
	for !c.IsEmpty() {
		v, err := c.Pop()
		if err != nil {
			return nil, fmt.Errorf("%s pop: %w", linlist.KindOf(c), err)
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func (d *Demo) line(heading string, head *linlist.Node[int]) {
	var vs []int
	for n := head; n != nil; n = n.Next {
		vs = append(vs, n.Value)
	}
	h := color.New(color.FgCyan, color.Bold)
	if !d.color {
		h.DisableColor()
	}
	h.Fprint(d.out, heading)
	fmt.Fprintf(d.out, " %s\n", join(vs))
}

func (d *Demo) printf(format string, args ...any) {
	c := color.New(color.FgGreen)
	if !d.color {
		c.DisableColor()
	}
	c.Fprintf(d.out, format, args...)
}

func join(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
