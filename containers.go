package aoc

import (
	"container/heap"
	"fmt"
)

// Stack is a LIFO stack. The zero value is ready to use.
type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	v, ok := s.Peek()
	if ok {
		var zero T
		s.s[len(s.s)-1] = zero
		s.s = s.s[:len(s.s)-1]
	}
	return v, ok
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

func (s *Stack[T]) Len() int { return len(s.s) }

// While pops values and passes them to f until the stack is empty or f
// returns false. f may push more values.
func (s *Stack[T]) While(f func(T) bool) {
	for {
		v, ok := s.Pop()
		if !ok || !f(v) {
			return
		}
	}
}

// Queue is a FIFO queue backed by a ring buffer. The zero value is ready
// to use.
type Queue[T any] struct {
	buf        []T
	head, size int
}

func NewQueue[T any](in ...T) Queue[T] {
	var q Queue[T]
	for _, v := range in {
		q.Push(v)
	}
	return q
}

func (q *Queue[T]) Len() int { return q.size }

func (q *Queue[T]) Push(v T) {
	if q.size == len(q.buf) {
		buf := make([]T, max(8, 2*len(q.buf)))
		n := copy(buf, q.buf[q.head:])
		copy(buf[n:], q.buf[:q.head])
		q.buf, q.head = buf, 0
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
}

func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return v, true
}

// While is like Stack.While, in FIFO order.
func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok || !f(v) {
			return
		}
	}
}

// Heap is a priority queue of T. Pop returns the least element under the
// ordering given to NewHeap.
type Heap[T any] struct {
	h heapSlice[T]
}

// NewHeap returns an empty heap ordered by less.
func NewHeap[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{h: heapSlice[T]{less: less}}
}

// MinQueue returns a heap of prioritized values, lowest priority first.
func MinQueue[T any]() *Heap[Prioritized[T]] {
	return NewHeap(func(a, b Prioritized[T]) bool { return a.P < b.P })
}

// MaxQueue returns a heap of prioritized values, highest priority first.
func MaxQueue[T any]() *Heap[Prioritized[T]] {
	return NewHeap(func(a, b Prioritized[T]) bool { return a.P > b.P })
}

// Prioritized is a value with an integer priority.
type Prioritized[T any] struct {
	V T
	P int
}

func (p Prioritized[T]) String() string {
	return fmt.Sprintf("%v:%v", p.V, p.P)
}

func (h *Heap[T]) Push(v T) { heap.Push(&h.h, v) }

// Pop removes and returns the least element. It panics if h is empty.
func (h *Heap[T]) Pop() T { return heap.Pop(&h.h).(T) }

func (h *Heap[T]) Len() int { return len(h.h.s) }

// heapSlice implements heap.Interface.
type heapSlice[T any] struct {
	s    []T
	less func(a, b T) bool
}

func (h heapSlice[T]) Len() int           { return len(h.s) }
func (h heapSlice[T]) Less(i, j int) bool { return h.less(h.s[i], h.s[j]) }
func (h heapSlice[T]) Swap(i, j int)      { h.s[i], h.s[j] = h.s[j], h.s[i] }

func (h *heapSlice[T]) Push(x any) { h.s = append(h.s, x.(T)) }

func (h *heapSlice[T]) Pop() any {
	n := len(h.s)
	v := h.s[n-1]
	var zero T
	h.s[n-1] = zero
	h.s = h.s[:n-1]
	return v
}
