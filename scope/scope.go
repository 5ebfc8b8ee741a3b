package scope

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/chain/resource"
	"github.com/vkngwrapper/chain/scope/internal/utils"
	"github.com/vkngwrapper/chain/stateutils"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// Key identifies one range of one resource
type Key[R resource.Resource, G comparable] struct {
	ID    resource.Id[R]
	Range G
}

type entry[A resource.Access[A], L resource.Layout[L]] struct {
	state resource.State[A, L]
	uses  int
	order int
}

// Scope collects the pending uses of resources at a single scheduling point. Each resource range
// holds at most one State: reads that agree on a layout are merged into it, and a write is only
// accepted for a range that has no other use. Scope does not order anything in time; once a use is
// rejected, it is up to the scheduler to place it behind a barrier in a later scope.
type Scope[R resource.Resource, A resource.Access[A], L resource.Layout[L], G comparable] struct {
	mutex       utils.OptionalRWMutex
	logger      *slog.Logger
	createFlags CreateFlags
	capacity    uint32

	entries   *swiss.Map[Key[R, G], entry[A, L]]
	nextOrder int
}

// BufferScope is a Scope of buffer ranges
type BufferScope = Scope[resource.Buffer, resource.BufferAccess, resource.BufferLayout, resource.BufferRange]

// ImageScope is a Scope of image sub-resource ranges
type ImageScope = Scope[resource.Image, resource.ImageAccess, resource.ImageLayout, resource.ImageRange]

var _ stateutils.Validatable = &BufferScope{}

func (s *Scope[R, A, L, G]) init() {
	s.entries = swiss.NewMap[Key[R, G], entry[A, L]](s.capacity)
	s.nextOrder = 0
}

// Add records a use of a resource range.
//
// If the range has no use yet, state is stored as-is. If it does, the two are merged when they are
// Compatible. Otherwise Add returns an error wrapping stateutils.ErrExclusiveAccess if either use
// writes, or stateutils.ErrLayoutConflict if two reads need different layouts, and leaves the scope
// unchanged.
func (s *Scope[R, A, L, G]) Add(id resource.Id[R], rng G, state resource.State[A, L]) error {
	s.logger.Debug("Scope::Add",
		slog.String("Resource", id.String()),
		slog.String("State", state.String()),
	)

	err := s.add(Key[R, G]{ID: id, Range: rng}, state)
	if err != nil {
		s.logger.Debug("  Scope::Add REJECTED", slog.Any("error", err))
		return err
	}

	stateutils.DebugValidate(s)
	return nil
}

func (s *Scope[R, A, L, G]) add(key Key[R, G], state resource.State[A, L]) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	existing, ok := s.entries.Get(key)
	if !ok {
		s.entries.Put(key, entry[A, L]{state: state, uses: 1, order: s.nextOrder})
		s.nextOrder++
		return nil
	}

	if existing.state.Exclusive() || state.Exclusive() {
		return errors.Wrapf(stateutils.ErrExclusiveAccess, "%s range %+v: %s cannot join %s", key.ID, key.Range, state, existing.state)
	}

	merged, ok := existing.state.TryMerge(state)
	if !ok {
		return errors.Wrapf(stateutils.ErrLayoutConflict, "%s range %+v: layout %s cannot join %s", key.ID, key.Range, state.Layout, existing.state.Layout)
	}

	existing.state = merged
	existing.uses++
	s.entries.Put(key, existing)

	return nil
}

// Get returns the combined state of a resource range, and false if the range has no use
func (s *Scope[R, A, L, G]) Get(id resource.Id[R], rng G) (resource.State[A, L], bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	existing, ok := s.entries.Get(Key[R, G]{ID: id, Range: rng})
	return existing.state, ok
}

// Uses returns how many uses were merged into a resource range
func (s *Scope[R, A, L, G]) Uses(id resource.Id[R], rng G) int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	existing, ok := s.entries.Get(Key[R, G]{ID: id, Range: rng})
	if !ok {
		return 0
	}
	return existing.uses
}

// Len returns the number of resource ranges with a use
func (s *Scope[R, A, L, G]) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.entries.Count()
}

// Reset removes every use from the scope so it can be reused for the next scheduling point
func (s *Scope[R, A, L, G]) Reset() {
	s.logger.Debug("Scope::Reset")

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.init()
}

type visitEntry[R resource.Resource, A resource.Access[A], L resource.Layout[L], G comparable] struct {
	key Key[R, G]
	entry[A, L]
}

func (s *Scope[R, A, L, G]) sortedEntries() []visitEntry[R, A, L, G] {
	sorted := make([]visitEntry[R, A, L, G], 0, s.entries.Count())
	s.entries.Iter(func(key Key[R, G], value entry[A, L]) bool {
		sorted = append(sorted, visitEntry[R, A, L, G]{key: key, entry: value})
		return false
	})

	slices.SortFunc(sorted, func(a, b visitEntry[R, A, L, G]) bool {
		if a.key.ID != b.key.ID {
			return a.key.ID.Less(b.key.ID)
		}
		return a.order < b.order
	})

	return sorted
}

// Visit calls the provided callback once for each resource range, ordered by resource id and then by
// the order in which ranges were first added. Visit stops at, and returns, the first error the
// callback returns. The callback must not modify the scope.
func (s *Scope[R, A, L, G]) Visit(callback func(key Key[R, G], state resource.State[A, L]) error) error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, visited := range s.sortedEntries() {
		err := callback(visited.key, visited.state)
		if err != nil {
			return err
		}
	}

	return nil
}

// Validate performs internal consistency checks on the scope. When the scope is functioning
// correctly it should not be possible for this method to return an error.
func (s *Scope[R, A, L, G]) Validate() error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var err error
	s.entries.Iter(func(key Key[R, G], value entry[A, L]) bool {
		switch {
		case value.uses < 1:
			err = errors.Newf("%s range %+v is stored with %d uses", key.ID, key.Range, value.uses)
		case value.uses > 1 && value.state.Exclusive():
			err = errors.Wrapf(stateutils.ErrExclusiveAccess, "%s range %+v merged %d uses into exclusive state %s", key.ID, key.Range, value.uses, value.state)
		case value.order >= s.nextOrder:
			err = errors.Newf("%s range %+v has insertion order %d but only %d ranges were added", key.ID, key.Range, value.order, s.nextOrder)
		}
		return err != nil
	})

	return err
}

// AddStatistics adds the uses of this scope to stats
func (s *Scope[R, A, L, G]) AddStatistics(stats *stateutils.Statistics) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	resources := make(map[resource.Id[R]]struct{})
	s.entries.Iter(func(key Key[R, G], value entry[A, L]) bool {
		resources[key.ID] = struct{}{}
		stats.AddUse(value.state.Exclusive(), value.uses-1)
		return false
	})
	stats.ResourceCount += len(resources)
}

// BuildStatsString returns a json document describing every use in the scope
func (s *Scope[R, A, L, G]) BuildStatsString() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	writer := jwriter.NewWriter()
	s.printDetailedMap(&writer)

	return string(writer.Bytes())
}

func (s *Scope[R, A, L, G]) printDetailedMap(writer *jwriter.Writer) {
	objState := writer.Object()
	defer objState.End()

	objState.Name("Kind").String(resource.KindOf[R]().String())
	objState.Name("Flags").String(s.createFlags.String())
	objState.Name("Ranges").Int(s.entries.Count())

	arrayState := objState.Name("Uses").Array()
	defer arrayState.End()

	for _, visited := range s.sortedEntries() {
		obj := arrayState.Object()
		obj.Name("Resource").String(visited.key.ID.String())
		obj.Name("Range").String(fmt.Sprintf("%+v", visited.key.Range))
		obj.Name("Uses").Int(visited.uses)
		visited.state.PrintParameters(&obj)
		obj.End()
	}
}
