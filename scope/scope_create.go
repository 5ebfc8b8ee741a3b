package scope

import (
	"github.com/vkngwrapper/chain/resource"
	"github.com/vkngwrapper/chain/scope/internal/utils"
	"github.com/vkngwrapper/core/v2/common"
	"golang.org/x/exp/slog"
)

// CreateFlags indicate specific scope behaviors to activate or deactivate
type CreateFlags int32

var scopeCreateFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	scopeCreateFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return scopeCreateFlagsMapping.FlagsToString(f)
}

const (
	// ScopeCreateExternallySynchronized ensures that the scope will not be synchronized internally.
	// The consumer must guarantee it is used from only one goroutine at a time or is synchronized by
	// some other mechanism.
	ScopeCreateExternallySynchronized CreateFlags = 1 << iota
)

func init() {
	ScopeCreateExternallySynchronized.Register("ScopeCreateExternallySynchronized")
}

const (
	// defaultInitialCapacity is the number of resource ranges the scope's map is sized for when
	// CreateOptions does not say otherwise
	defaultInitialCapacity uint32 = 64
)

// CreateOptions contains optional settings when creating a scope
type CreateOptions struct {
	// Flags indicates specific scope behaviors to activate or deactivate
	Flags CreateFlags
	// InitialCapacity is the number of resource ranges to size the scope for
	InitialCapacity uint32
}

// New creates an empty Scope
//
// logger - Receives debug traces of every operation. If nil, slog.Default() is used
//
// options - Optional parameters: it is valid to leave all the fields blank
func New[R resource.Resource, A resource.Access[A], L resource.Layout[L], G comparable](logger *slog.Logger, options CreateOptions) *Scope[R, A, L, G] {
	if logger == nil {
		logger = slog.Default()
	}

	capacity := options.InitialCapacity
	if capacity == 0 {
		capacity = defaultInitialCapacity
	}

	scope := &Scope[R, A, L, G]{
		mutex:       utils.OptionalRWMutex{UseMutex: options.Flags&ScopeCreateExternallySynchronized == 0},
		logger:      logger,
		createFlags: options.Flags,
		capacity:    capacity,
	}
	scope.init()

	return scope
}

// NewBufferScope creates an empty BufferScope
func NewBufferScope(logger *slog.Logger, options CreateOptions) *BufferScope {
	return New[resource.Buffer, resource.BufferAccess, resource.BufferLayout, resource.BufferRange](logger, options)
}

// NewImageScope creates an empty ImageScope
func NewImageScope(logger *slog.Logger, options CreateOptions) *ImageScope {
	return New[resource.Image, resource.ImageAccess, resource.ImageLayout, resource.ImageRange](logger, options)
}
