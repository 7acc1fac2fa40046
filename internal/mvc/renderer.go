// internal/mvc/renderer.go
//
// Template renderer.
//
// Context
// -------
// A Renderer holds template settings (template, directory, attribute bag,
// and render mode) and runs one template through an Engine.  The host
// configures it, calls Execute, and, in RenderVar mode, collects the text
// with FetchResult.
//
// Resolution (shared by Execute and TemplateExists)
// -------------------------------------------------
//  1. Absolute template → its own directory and base name.
//  2. Relative template → explicit dir, else the renderer dir, else
//     <unit dir>templates/ (plain "templates/" when the unit dir is empty).  When that file is not readable but the same
//     name is readable under the fallback directory, the fallback wins.
//
// Failure
// -------
// A missing template and an unreadable file are deployment errors.
// Execute stops at once, writes nothing, logs at ERROR, and returns
// ErrMissingTemplate or *UnreadableTemplateError.  The host aborts the
// request.
//
// Notes
// -----
// • Capture mode renders into a buffer local to the call.  The result is
//   stored only on success, and engine panics come back as *TemplateError.
// • A Renderer serves one render in one request; it is not safe for
//   concurrent use.
package mvc

import (
	"bytes"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/yanizio/xmf/internal/metrics"
)

// unitTemplates is the template folder inside a unit directory.
const unitTemplates = "templates/"

// Renderer renders template files through an Engine.
type Renderer struct {
	ContextAware

	attributes  Attributes
	dir         string
	engine      Engine
	mode        RenderMode
	result      string
	hasResult   bool
	template    string
	fallbackDir string
	log         *zap.SugaredLogger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFallbackDir sets the global fallback template root consulted when a
// relative template is missing from its computed directory.
func WithFallbackDir(dir string) Option {
	return func(r *Renderer) {
		if dir != "" {
			r.fallbackDir = withSeparator(dir)
		}
	}
}

// WithLogger replaces the global sugared logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMode sets the initial render mode.
func WithMode(m RenderMode) Option {
	return func(r *Renderer) { r.mode = m }
}

// NewRenderer returns a Renderer bound to src that evaluates templates
// with engine.
func NewRenderer(src ContextSource, engine Engine, opts ...Option) *Renderer {
	r := &Renderer{
		ContextAware: NewContextAware(src),
		attributes:   Attributes{},
		engine:       engine,
		mode:         RenderClient,
		log:          zap.S(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

//
// template location
//

// Template returns the template as set, verbatim.
func (r *Renderer) Template() string { return r.template }

// SetTemplate stores a relative or absolute template path.  Nothing is
// checked until Execute.
func (r *Renderer) SetTemplate(path string) { r.template = path }

// TemplateDir returns the directory set with SetTemplateDir, or "".
func (r *Renderer) TemplateDir() string { return r.dir }

// SetTemplateDir stores an absolute directory with a trailing separator.
func (r *Renderer) SetTemplateDir(dir string) { r.dir = withSeparator(dir) }

// TemplateExists resolves template exactly as Execute would, using dir in
// place of the renderer directory when dir is non-empty, and reports
// whether the file is readable.
func (r *Renderer) TemplateExists(template, dir string) bool {
	if template == "" {
		return false
	}
	d, name := r.resolve(template, dir)
	return readable(d + name)
}

// IsPathAbsolute is the method form of the package function.
func (r *Renderer) IsPathAbsolute(path string) bool { return IsPathAbsolute(path) }

func (r *Renderer) resolve(template, dir string) (string, string) {
	if IsPathAbsolute(template) {
		return splitTemplate(template)
	}
	if dir != "" {
		dir = withSeparator(dir)
	} else if r.dir != "" {
		dir = r.dir
	} else {
		dir = withSeparator(r.Controller().UnitDir()) + unitTemplates
	}
	if r.fallbackDir != "" && !readable(dir+template) && readable(r.fallbackDir+template) {
		dir = r.fallbackDir
	}
	return dir, template
}

//
// attributes
//

// Attributes returns the live attribute bag.  Writes through it are seen
// by the next Execute.
func (r *Renderer) Attributes() Attributes { return r.attributes }

// Attribute returns the named attribute or nil.
func (r *Renderer) Attribute(name string) any { return r.attributes.Get(name) }

// SetAttribute stores value under name.
func (r *Renderer) SetAttribute(name string, value any) { r.attributes.Set(name, value) }

// SetAttributeRef binds name to a pointer so later writes by the caller
// are visible to the template.  Both engines dereference pointers when
// printing.
func (r *Renderer) SetAttributeRef(name string, ref any) { r.attributes.Set(name, ref) }

// RemoveAttribute deletes name; a missing name is ignored.
func (r *Renderer) RemoveAttribute(name string) { r.attributes.Remove(name) }

// SetArray merges m into the bag.  Keys in m overwrite existing ones.
func (r *Renderer) SetArray(m map[string]any) { r.attributes.Merge(m) }

// SetAttributeArrayItem builds an array-valued attribute one item at a
// time.  With an empty name value is appended; otherwise it is stored
// under name.  A stem holding anything but a collection (or a plain slice
// or map, which are adopted) is replaced by a new collection.
func (r *Renderer) SetAttributeArrayItem(stem, name string, value any) {
	c, ok := CollectionOf(r.attributes[stem])
	if !ok {
		c = NewCollection()
	}
	r.attributes[stem] = c
	if name == "" {
		c.Append(value)
		return
	}
	c.Set(name, value)
}

//
// mode and result
//

// Mode returns the renderer's own render mode.
func (r *Renderer) Mode() RenderMode { return r.mode }

// SetMode sets the renderer's own render mode.
func (r *Renderer) SetMode(m RenderMode) { r.mode = m }

// Engine returns the engine templates are evaluated with.
func (r *Renderer) Engine() Engine { return r.engine }

// ClearResult forgets any captured output.
func (r *Renderer) ClearResult() {
	r.result = ""
	r.hasResult = false
}

// FetchResult returns the captured output.  In RenderVar mode it executes
// first when nothing has been captured yet.  In RenderClient mode it
// returns "" and nil.
func (r *Renderer) FetchResult() (string, error) {
	if !r.capturing() {
		return "", nil
	}
	if !r.hasResult {
		if err := r.Execute(); err != nil {
			return "", err
		}
	}
	return r.result, nil
}

func (r *Renderer) capturing() bool {
	return r.mode == RenderVar || r.Controller().RenderMode() == RenderVar
}

//
// execution
//

// Execute resolves the template and renders it.  See the file header for
// the resolution and failure rules.
func (r *Renderer) Execute() error {
	if r.template == "" {
		metrics.RenderErrorsTotal.WithLabelValues("missing_template").Inc()
		r.log.Errorw("render aborted", "err", ErrMissingTemplate)
		return ErrMissingTemplate
	}

	dir, name := r.resolve(r.template, "")
	path := dir + name
	if !readable(path) {
		err := &UnreadableTemplateError{Path: path}
		metrics.RenderErrorsTotal.WithLabelValues("unreadable_template").Inc()
		r.log.Errorw("render aborted", "template", r.template, "path", path, "err", err)
		return err
	}

	if r.engine == nil {
		err := fmt.Errorf("mvc: no template engine configured")
		metrics.RenderErrorsTotal.WithLabelValues("no_engine").Inc()
		r.log.Errorw("render aborted", "path", path, "err", err)
		return &TemplateError{Path: path, Err: err}
	}

	ctrl := r.Controller()
	scope := Scope{Template: r.attributes, App: ctrl.App()}
	capture := r.capturing()
	mode := RenderClient
	if capture {
		mode = RenderVar
	}
	r.log.Debugw("render", "path", path, "mode", mode.String())

	start := time.Now()
	defer func() {
		metrics.RenderDuration.Observe(time.Since(start).Seconds())
	}()
	metrics.RenderTotal.WithLabelValues(mode.String()).Inc()

	if !capture {
		if err := r.run(func(s Scope) error { return r.engine.Render(ctrl.Output(), path, s) }, scope); err != nil {
			return r.fail(path, err)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := r.run(func(s Scope) error { return r.engine.Render(&buf, path, s) }, scope); err != nil {
		return r.fail(path, err)
	}
	r.result = buf.String()
	r.hasResult = true
	return nil
}

// run calls fn and turns a panic into an error so the caller's buffer is
// released on every path.
func (r *Renderer) run(fn func(Scope) error, scope Scope) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return fn(scope)
}

func (r *Renderer) fail(path string, err error) error {
	metrics.RenderErrorsTotal.WithLabelValues("template").Inc()
	r.log.Errorw("template evaluation failed", "path", path, "err", err)
	return &TemplateError{Path: path, Err: err}
}
