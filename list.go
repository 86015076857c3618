package ringlist

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/v2/containers"
)

var (
	_ Sequence[int]             = (*List[int])(nil)
	_ containers.Container[int] = (*List[int])(nil)
)

// List is a singly linked list whose last node links back to the head.
// Zero value is an empty list ready to use. List is not safe for concurrent use.
type List[T comparable] struct {
	store store[T]
	head  handle
	tail  handle
	size  int
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// Of returns a list holding elements in the order they were passed.
func Of[T comparable](elements ...T) *List[T] {
	l := New[T]()
	for _, e := range elements {
		l.Add(e)
	}
	return l
}

// Add appends element at the end of the list.
func (l *List[T]) Add(element T) {
	l.insert(l.size, element)
}

// Insert puts element at index, shifting the following elements. Index equal to Size appends.
func (l *List[T]) Insert(index int, element T) error {
	if index < 0 || index > l.size {
		return outOfBounds("insert", index, l.size)
	}
	l.insert(index, element)
	return nil
}

// Set replaces the element stored at index.
func (l *List[T]) Set(index int, element T) error {
	if index < 0 || index >= l.size {
		return outOfBounds("set", index, l.size)
	}
	l.store.setValue(l.nodeAt(index), element)
	return nil
}

// Get returns the element stored at index.
func (l *List[T]) Get(index int) (T, error) {
	if l.size == 0 || index < 0 || index >= l.size {
		var v T
		return v, outOfBounds("get", index, l.size)
	}
	return l.store.value(l.nodeAt(index)), nil
}

// Remove deletes the element at index.
//
// Index equal to Size is accepted: its predecessor is the tail, whose successor is the head,
// so the head is removed.
func (l *List[T]) Remove(index int) error {
	if l.size == 0 || index < 0 || index > l.size {
		return outOfBounds("remove", index, l.size)
	}

	if index == 0 || index == l.size {
		l.removeHead()
		return nil
	}

	prev := l.nodeAt(index - 1)
	victim := l.store.next(prev)
	l.store.setNext(prev, l.store.next(victim))
	if victim == l.tail {
		l.tail = prev
	}
	l.store.release(victim)
	l.size--
	return nil
}

// Contains reports whether any element equals element.
func (l *List[T]) Contains(element T) bool {
	for i, h := 0, l.head; i < l.size; i, h = i+1, l.store.next(h) {
		if l.store.value(h) == element {
			return true
		}
	}
	return false
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// Size returns the number of elements.
func (l *List[T]) Size() int {
	return l.size
}

// Clear removes all the elements.
func (l *List[T]) Clear() {
	l.store.reset()
	l.head = none
	l.tail = none
	l.size = 0
}

// Values returns a copy of the elements in index order.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for i, h := 0, l.head; i < l.size; i, h = i+1, l.store.next(h) {
		values = append(values, l.store.value(h))
	}
	return values
}

func (l *List[T]) String() string {
	values := make([]string, 0, l.size)
	for _, v := range l.Values() {
		values = append(values, fmt.Sprintf("%v", v))
	}
	return "RingList\n" + strings.Join(values, ", ")
}

func (l *List[T]) insert(index int, element T) {
	h := l.store.alloc(element)

	switch {
	case l.size == 0:
		l.store.setNext(h, h)
		l.head = h
		l.tail = h
	case index == 0:
		l.store.setNext(h, l.head)
		l.store.setNext(l.tail, h)
		l.head = h
	default:
		prev := l.tail
		if index < l.size {
			prev = l.nodeAt(index - 1)
		}
		l.store.setNext(h, l.store.next(prev))
		l.store.setNext(prev, h)
		if prev == l.tail {
			l.tail = h
		}
	}

	l.size++
}

func (l *List[T]) removeHead() {
	if l.size == 1 {
		l.Clear()
		return
	}

	h := l.head
	l.head = l.store.next(h)
	l.store.setNext(l.tail, l.head)
	l.store.release(h)
	l.size--
}

// nodeAt walks index successors from head.
func (l *List[T]) nodeAt(index int) handle {
	h := l.head
	for i := 0; i < index; i++ {
		h = l.store.next(h)
	}
	return h
}
