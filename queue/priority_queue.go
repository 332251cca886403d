// Package queue provides the binary min-heap used by the priority-ordered
// search strategies.
package queue

import (
	"cmp"
	"container/heap"
)

// Item pairs an element with its priority key.
type Item[E, K cmp.Ordered] struct {
	Elem E
	Key  K
}

// MinHeap pops items in ascending key order. Items with equal keys pop the
// lower element first, so the pop sequence depends only on the pushed
// (element, key) pairs.
//
// There is no decrease-key: callers push a fresh item whenever a priority
// improves and discard stale items when they are popped.
type MinHeap[E, K cmp.Ordered] struct {
	items items[E, K]
}

// New returns an empty heap.
func New[E, K cmp.Ordered]() *MinHeap[E, K] {
	return &MinHeap[E, K]{}
}

func (h *MinHeap[E, K]) Len() int    { return h.items.Len() }
func (h *MinHeap[E, K]) Empty() bool { return h.items.Len() == 0 }

// Push adds elem with priority key.
func (h *MinHeap[E, K]) Push(elem E, key K) {
	heap.Push(&h.items, Item[E, K]{Elem: elem, Key: key})
}

// Pop removes and returns the minimum item. It panics on an empty heap;
// callers check Empty first.
func (h *MinHeap[E, K]) Pop() (E, K) {
	if h.Empty() {
		panic("queue: Pop on empty heap")
	}
	it := heap.Pop(&h.items).(Item[E, K])
	return it.Elem, it.Key
}

// Peek returns the minimum item without removing it.
func (h *MinHeap[E, K]) Peek() (E, K) {
	if h.Empty() {
		panic("queue: Peek on empty heap")
	}
	it := h.items[0]
	return it.Elem, it.Key
}

// items implements heap.Interface.
type items[E, K cmp.Ordered] []Item[E, K]

func (q items[E, K]) Len() int { return len(q) }

func (q items[E, K]) Less(i, j int) bool {
	if c := cmp.Compare(q[i].Key, q[j].Key); c != 0 {
		return c < 0
	}
	return q[i].Elem < q[j].Elem
}

func (q items[E, K]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *items[E, K]) Push(x any) {
	*q = append(*q, x.(Item[E, K]))
}

func (q *items[E, K]) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
