package util

import "container/heap"

//*******************************************
// dict
//*******************************************

// Dict is a thin wrapper around a Go map, giving it the same call-site
// shape (Get, Length) as the other collection types in this package so
// algorithms can be written generically against any of them without
// caring which is backed by a map and which by a slice.
type Dict[K comparable, V any] map[K]V

func NewDict[K comparable, V any](capacity int) Dict[K, V] {
	return make(Dict[K, V], capacity)
}

func (self Dict[K, V]) Get(key K) (V, bool) {
	v, ok := self[key]
	return v, ok
}
func (self Dict[K, V]) Length() int {
	return len(self)
}

//*******************************************
// list
//*******************************************

// List is a growable slice. NewList preallocates capacity only; length
// starts at 0, unlike Array below.
type List[T any] []T

func NewList[T any](capacity int) List[T] {
	return make(List[T], 0, capacity)
}

func (self *List[T]) Add(value T) {
	*self = append(*self, value)
}
func (self List[T]) Length() int {
	return len(self)
}

//*******************************************
// array
//*******************************************

// Array is a fixed-length slice, sized up-front, with .Length() call-site
// parity against List and Dict. Conversion from a built List (a plain
// slice-to-slice cast) is how a Builder seals its shortcut records.
type Array[T any] []T

func (self Array[T]) Length() int {
	return len(self)
}

//*******************************************
// priority queue
//*******************************************

// PriorityQueue is a classic lazy-deletion min-heap: Enqueue never
// updates or removes an existing entry for the same item, it just pushes
// a new one. Callers discard stale pops themselves by comparing the
// popped priority against their own best-known distance.
type PriorityQueue[T any, P Ordered] struct {
	items _PQItems[T, P]
}

type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func NewPriorityQueue[T any, P Ordered](capacity int) PriorityQueue[T, P] {
	return PriorityQueue[T, P]{
		items: make(_PQItems[T, P], 0, capacity),
	}
}

func (self *PriorityQueue[T, P]) Enqueue(item T, priority P) {
	heap.Push(&self.items, _PQItem[T, P]{item: item, priority: priority})
}
func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	if len(self.items) == 0 {
		var zero T
		return zero, false
	}
	top := heap.Pop(&self.items).(_PQItem[T, P])
	return top.item, true
}
func (self *PriorityQueue[T, P]) Peek() (T, P, bool) {
	if len(self.items) == 0 {
		var zero T
		var zp P
		return zero, zp, false
	}
	top := self.items[0]
	return top.item, top.priority, true
}
func (self *PriorityQueue[T, P]) Length() int {
	return len(self.items)
}
func (self *PriorityQueue[T, P]) Clear() {
	self.items = self.items[:0]
}

type _PQItem[T any, P Ordered] struct {
	item     T
	priority P
}

type _PQItems[T any, P Ordered] []_PQItem[T, P]

func (self _PQItems[T, P]) Len() int            { return len(self) }
func (self _PQItems[T, P]) Less(i, j int) bool  { return self[i].priority < self[j].priority }
func (self _PQItems[T, P]) Swap(i, j int)       { self[i], self[j] = self[j], self[i] }
func (self *_PQItems[T, P]) Push(x interface{}) {
	*self = append(*self, x.(_PQItem[T, P]))
}
func (self *_PQItems[T, P]) Pop() interface{} {
	old := *self
	n := len(old)
	item := old[n-1]
	*self = old[:n-1]
	return item
}
