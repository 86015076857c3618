package ringlist

import (
	"github.com/pkg/errors"
)

// ErrOutOfBounds is returned when index falls outside the range accepted by the operation.
var ErrOutOfBounds = errors.New("index out of bounds")

// Sequence is the set of operations offered by the list.
type Sequence[T comparable] interface {
	Add(element T)
	Insert(index int, element T) error
	Set(index int, element T) error
	Get(index int) (T, error)
	Remove(index int) error
	Contains(element T) bool
	Empty() bool
	Size() int
	Clear()
	Values() []T
}

func outOfBounds(op string, index, size int) error {
	return errors.Wrapf(ErrOutOfBounds, "%s: index %d, size %d", op, index, size)
}
