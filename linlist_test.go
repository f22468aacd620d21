package linlist

import (
	"errors"
	"testing"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func containersUnderTest() []Container[int] {
	return []Container[int]{NewStack[int](), NewDeque[int](), NewQueue[int]()}
}

func TestKindOfIsExhaustive(t *testing.T) {
	assert.Equal(t, KindStack, KindOf[int](NewStack[int]()))
	assert.Equal(t, KindDeque, KindOf[int](NewDeque[int]()))
	assert.Equal(t, KindQueue, KindOf[int](NewQueue[int]()))
	assert.Equal(t, KindUnknown, KindOf[int](nil))
	assert.Equal(t, "deque", KindDeque.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestEmptyAfterMatchingPops(t *testing.T) {
	for _, c := range containersUnderTest() {
		t.Run(KindOf(c).String(), func(t *testing.T) {
			assert.True(t, c.IsEmpty())
			for _, v := range []int{4, 8, 15, 16} {
				c.Push(v)
				assert.False(t, c.IsEmpty())
			}
			for i := 0; i < 4; i++ {
				assert.False(t, c.IsEmpty())
				_, err := c.Pop()
				require.NoError(t, err)
			}
			assert.True(t, c.IsEmpty())
		})
	}
}

func TestEmptyPopAndPeekMatchSentinel(t *testing.T) {
	for _, c := range containersUnderTest() {
		t.Run(KindOf(c).String(), func(t *testing.T) {
			_, err := c.Pop()
			assert.True(t, errors.Is(err, ErrEmptyContainer))
			_, err = c.Peek()
			assert.True(t, errors.Is(err, ErrEmptyContainer))
			assert.True(t, c.IsEmpty())
		})
	}
}

func TestPeekMatchesNextPop(t *testing.T) {
	for _, c := range containersUnderTest() {
		t.Run(KindOf(c).String(), func(t *testing.T) {
			c.Push(1)
			c.Push(2)
			peeked, err := c.Peek()
			require.NoError(t, err)
			again, err := c.Peek()
			require.NoError(t, err)
			popped, err := c.Pop()
			require.NoError(t, err)
			assert.Equal(t, peeked, again)
			assert.Equal(t, peeked, popped)
		})
	}
}

func TestContainersAreGodsContainers(t *testing.T) {
	var gc containers.Container = NewQueue[int]()
	gc.(Container[int]).Push(3)
	assert.Equal(t, 1, gc.Size())
	assert.Equal(t, []interface{}{3}, gc.Values())
	gc.Clear()
	assert.True(t, gc.Empty())
}

func TestInsertionSortFacade(t *testing.T) {
	head := Chain(5, 3, 1, 4, 2)
	InsertionSort(&head)
	var got []int
	for n := head; n != nil; n = n.Next {
		got = append(got, n.Value)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)

	other := Chain(2, 1)
	InsertionSortComparator(&other, utils.IntComparator)
	assert.Equal(t, 1, other.Value)

	desc := Chain(1, 2, 3)
	InsertionSortFunc(&desc, func(a, b int) int { return b - a })
	assert.Equal(t, 3, desc.Value)

	Release(head)
	assert.Nil(t, head.Next)
}
