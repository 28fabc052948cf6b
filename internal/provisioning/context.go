package provisioning

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/imamik/eksbp/internal/config"
)

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Options  *config.GenericProviderOptions
	State    *State
	Observer Observer
}

// NewContext creates a new provisioning context with an empty plan.
// A nil observer discards all events.
func NewContext(ctx context.Context, opts *config.GenericProviderOptions, observer Observer) *Context {
	if observer == nil {
		observer = NewLogObserver(logr.Discard())
	}
	return &Context{
		Context:  ctx,
		Options:  opts,
		State:    NewState(opts.ResolvedClusterName()),
		Observer: observer,
	}
}
