// internal/mvc/context.go
//
// Host contracts and context sources.
//
// Context
// -------
// The renderer never owns the host application.  It sees it through the
// Context interface, which bundles the controller contract (unit directory,
// render mode, application handle, and output stream) with accessors for
// the request, user, and model manager.  The context itself acts as the
// controller.
//
// A ContextSource hands out the current Context.  Consumers resolve it on
// every access, so a host that swaps its context (Holder.Set) is seen
// immediately.
//
// Notes
// -----
// • Static is the usual choice for one-request-one-context HTTP hosts.
// • Holder replaces the process-wide singleton of older designs; it is
//   still injected explicitly.
package mvc

import (
	"io"
	"sync/atomic"
)

// Controller is the part of the host a Renderer depends on.
type Controller interface {
	UnitDir() string        // base path of the active unit, used for default templates
	RenderMode() RenderMode // host-level render mode, ORed with the renderer's own
	App() any               // application handle exposed to templates as "mojavi"
	Output() io.Writer      // direct response stream for RenderClient
}

// Request is the read side of the host request object.
type Request interface {
	Method() string
	Parameter(name string) string
}

// User is the read side of the host user object.
type User interface {
	Authenticated() bool
	HasCredential(name string) bool
}

// ModelManager hands out named model instances.
type ModelManager interface {
	Model(name string) (any, error)
}

// Context is the shared host context.
type Context interface {
	Controller
	Request() Request
	User() User
	Models() ModelManager
}

// ContextSource yields the current Context.
type ContextSource interface {
	Current() Context
}

// SourceFunc adapts a plain function to ContextSource.
type SourceFunc func() Context

// Current calls f.
func (f SourceFunc) Current() Context { return f() }

// Static returns a source that always yields ctx.
func Static(ctx Context) ContextSource {
	return SourceFunc(func() Context { return ctx })
}

// Holder is a swappable context slot, safe for concurrent Set and Current.
// The zero value is empty; calling Current before Set is a programming
// error and panics.
type Holder struct {
	p atomic.Pointer[box]
}

type box struct{ ctx Context }

// Set installs ctx as the current context.
func (h *Holder) Set(ctx Context) { h.p.Store(&box{ctx: ctx}) }

// Current returns the installed context.
func (h *Holder) Current() Context {
	b := h.p.Load()
	if b == nil || b.ctx == nil {
		panic("mvc: context used before it was installed")
	}
	return b.ctx
}
