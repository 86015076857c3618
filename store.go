package ringlist

// handle addresses a slot in the store. Zero means "no node".
type handle int

const none handle = 0

type slot[T any] struct {
	Value T
	Next  handle
}

// store keeps nodes in a flat slice so the ring never holds pointers to itself.
// Released slots are chained through Next into the free list.
type store[T any] struct {
	slots []slot[T]
	free  handle
}

func (s *store[T]) alloc(v T) handle {
	if s.free != none {
		h := s.free
		sl := s.at(h)
		s.free = sl.Next
		sl.Value = v
		sl.Next = none
		return h
	}

	s.slots = append(s.slots, slot[T]{Value: v})
	return handle(len(s.slots))
}

func (s *store[T]) release(h handle) {
	sl := s.at(h)
	var v T
	sl.Value = v
	sl.Next = s.free
	s.free = h
}

func (s *store[T]) reset() {
	s.slots = nil
	s.free = none
}

func (s *store[T]) at(h handle) *slot[T] {
	return &s.slots[h-1]
}

func (s *store[T]) next(h handle) handle {
	return s.at(h).Next
}

func (s *store[T]) setNext(h, next handle) {
	s.at(h).Next = next
}

func (s *store[T]) value(h handle) T {
	return s.at(h).Value
}

func (s *store[T]) setValue(h handle, v T) {
	s.at(h).Value = v
}
