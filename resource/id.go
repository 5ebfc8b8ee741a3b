package resource

import "fmt"

// Id is an opaque handle to a resource of kind R. The tag never appears in the
// id's storage, but Id[Buffer] and Id[Image] are distinct types and cannot be
// assigned to one another.
//
// Assigning, reusing and resolving ids is the job of the scheduler.
type Id[R Resource] struct {
	_     [0]R
	index uint64
}

// NewId wraps a dense index
func NewId[R Resource](index uint64) Id[R] {
	return Id[R]{index: index}
}

// Index returns the index the id was created with
func (id Id[R]) Index() uint64 { return id.index }

// Compare returns -1, 0 or 1 following the ordering of the indices
func (id Id[R]) Compare(other Id[R]) int {
	switch {
	case id.index < other.index:
		return -1
	case id.index > other.index:
		return 1
	}
	return 0
}

func (id Id[R]) Less(other Id[R]) bool {
	return id.index < other.index
}

func (id Id[R]) String() string {
	return fmt.Sprintf("%s#%d", KindOf[R](), id.index)
}
