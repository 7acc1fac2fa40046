// internal/mvc/engine.go
//
// Engine contract and the bindings a template sees.
package mvc

import "io"

// Engine evaluates one template file.  path is fully resolved and known to
// be readable when Render is called.  Implementations write to w only;
// capture and streaming are decided by the caller.
type Engine interface {
	Render(w io.Writer, path string, scope Scope) error
}

// Binding names under which a template sees its inputs.
const (
	BindTemplate = "template" // the attribute bag
	BindApp      = "mojavi"   // the application handle
)

// Scope is the set of bindings handed to an Engine.
type Scope struct {
	Template Attributes
	App      any
}

// Data returns the bindings as a map keyed by BindTemplate and BindApp,
// with collections flattened for engines that only understand plain values.
func (s Scope) Data() map[string]any {
	return map[string]any{
		BindTemplate: s.Template.Export(),
		BindApp:      s.App,
	}
}
