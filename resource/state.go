package resource

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/chain/stateutils"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// State is one pending use of a resource: how it is accessed, the layout it must be in, and
// the pipeline stages that observe the access. States are plain values and are safe to copy
// and share between goroutines.
type State[A Access[A], L Layout[L]] struct {
	Access A
	Layout L
	Stages core1_0.PipelineStageFlags
}

// BufferState is a State of a Buffer
type BufferState = State[BufferAccess, BufferLayout]

// ImageState is a State of an Image
type ImageState = State[ImageAccess, ImageLayout]

// Merge combines two uses into one that represents both: the accesses and stages are unioned
// and the layouts are merged.
//
// The layouts must merge. Callers are expected to have checked Compatible, or to be merging
// states that are known to share a layout; Merge panics otherwise.
func (s State[A, L]) Merge(rhs State[A, L]) State[A, L] {
	merged, ok := s.TryMerge(rhs)
	if !ok {
		panic(errors.AssertionFailedf("attempted to merge states with incompatible layouts %s and %s", s.Layout, rhs.Layout))
	}
	return merged
}

// TryMerge is Merge for states whose layouts might not merge. It returns false, and s
// unchanged, if they do not.
func (s State[A, L]) TryMerge(rhs State[A, L]) (State[A, L], bool) {
	layout, ok := s.Layout.Merge(rhs.Layout)
	if !ok {
		return s, false
	}

	return State[A, L]{
		Access: s.Access.Union(rhs.Access),
		Layout: layout,
		Stages: s.Stages | rhs.Stages,
	}, true
}

// Exclusive returns true if the use writes to the resource and so must be serialized
// against every other use of the same range
func (s State[A, L]) Exclusive() bool {
	return s.Access.IsWrite()
}

// Compatible returns true if both uses only read and agree on a layout, which means they
// can run without a barrier or layout transition between them
func (s State[A, L]) Compatible(rhs State[A, L]) bool {
	if s.Exclusive() || rhs.Exclusive() {
		return false
	}

	_, ok := s.Layout.Merge(rhs.Layout)
	return ok
}

// Fold merges any number of states. The result does not depend on the order of states.
// It returns false if some pair of layouts does not merge, and the zero State if states is empty.
func Fold[A Access[A], L Layout[L]](states ...State[A, L]) (State[A, L], bool) {
	var folded State[A, L]
	if len(states) == 0 {
		return folded, true
	}

	folded = states[0]
	for _, state := range states[1:] {
		var ok bool
		folded, ok = folded.TryMerge(state)
		if !ok {
			return folded, false
		}
	}

	return folded, true
}

// CheckUsage verifies that every access requested by state is representable under usage.
// It returns an error wrapping stateutils.ErrAccessNotInUsage otherwise.
func CheckUsage[A Access[A], L Layout[L], U Usage[U, A]](state State[A, L], usage U) error {
	permitted := usage.Accesses()
	if permitted.Union(state.Access) != permitted {
		return errors.Wrapf(stateutils.ErrAccessNotInUsage, "access %s is not covered by usage %s", state.Access, usage)
	}
	return nil
}

func (s State[A, L]) String() string {
	return fmt.Sprintf("{Access: %s, Layout: %s, Stages: %s}", s.Access, s.Layout, s.Stages)
}

// PrintParameters writes the fields of the state into a json object
func (s State[A, L]) PrintParameters(json *jwriter.ObjectState) {
	json.Name("Access").String(s.Access.String())
	json.Name("Layout").String(s.Layout.String())
	json.Name("Stages").String(s.Stages.String())
	json.Name("Exclusive").Bool(s.Exclusive())
}
