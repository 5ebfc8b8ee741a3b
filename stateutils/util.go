package stateutils

import (
	cerrors "github.com/cockroachdb/errors"
)

// Flags is satisfied by the integer-backed flag types of the HAL and the adapters built on them
type Flags interface {
	~int32 | ~uint32 | ~int | ~uint
}

// IsSubset returns true if every bit set in flags is also set in permitted
func IsSubset[T Flags](flags, permitted T) bool {
	return flags&^permitted == 0
}

func CheckSubset[T Flags](flags, permitted T, name string) error {
	if !IsSubset(flags, permitted) {
		return cerrors.Wrapf(ErrAccessNotInUsage, "%s has bits %#x outside of %#x", name, uint64(flags&^permitted), uint64(permitted))
	}
	return nil
}
