package stateutils

import "github.com/pkg/errors"

// ErrAccessNotInUsage is the error returned from CheckUsage or other methods if a state requests an access
// that the resource's declared usage cannot represent
var ErrAccessNotInUsage error = errors.New("access is not permitted by the resource usage")

// ErrInvertedRange is the error returned when a byte range ends before it starts
var ErrInvertedRange error = errors.New("range end must not precede range start")

// ErrExclusiveAccess is the error returned when a write would share a scheduling point with
// another use of the same resource range
var ErrExclusiveAccess error = errors.New("exclusive access cannot share a resource range")

// ErrLayoutConflict is the error returned when two reads of the same image range require different layouts
var ErrLayoutConflict error = errors.New("layouts cannot be merged")
