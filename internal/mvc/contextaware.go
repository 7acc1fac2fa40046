// internal/mvc/contextaware.go
//
// Late-bound access to the host context for types that embed it.
package mvc

// ContextAware gives an embedding type late-bound access to the shared
// context.  It owns nothing and caches nothing; each accessor goes back to
// the source.
type ContextAware struct {
	source ContextSource
}

// NewContextAware binds src.
func NewContextAware(src ContextSource) ContextAware {
	return ContextAware{source: src}
}

// Context returns the current shared context.
func (a ContextAware) Context() Context { return a.source.Current() }

// Controller returns the same instance as Context.
func (a ContextAware) Controller() Controller { return a.Context() }

// Request returns the current request.
func (a ContextAware) Request() Request { return a.Context().Request() }

// User returns the current user.
func (a ContextAware) User() User { return a.Context().User() }

// Models returns the current model manager.
func (a ContextAware) Models() ModelManager { return a.Context().Models() }
