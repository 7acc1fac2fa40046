// internal/view/registry.go
//
// Engine registry.
//
// Context
// -------
// The renderer talks to exactly one mvc.Engine.  Registry is that engine
// for a host that mixes template syntaxes: it picks the concrete engine by
// file extension and falls back to the default engine for anything it does
// not know.
//
// Default wiring (New)
// --------------------
//   .html, .tmpl   → HTMLEngine   (html/template)
//   .tpl, .django  → PongoEngine  (pongo2, Django syntax)
//   anything else  → HTMLEngine
package view

import (
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/yanizio/xmf/internal/mvc"
)

// compile-time assertions
var (
	_ mvc.Engine = (*Registry)(nil)
	_ mvc.Engine = (*HTMLEngine)(nil)
	_ mvc.Engine = (*PongoEngine)(nil)
)

// Registry dispatches Render calls by file extension.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]mvc.Engine
	def     mvc.Engine
}

// NewRegistry returns a Registry that uses def for unknown extensions.
func NewRegistry(def mvc.Engine) *Registry {
	return &Registry{engines: map[string]mvc.Engine{}, def: def}
}

// Register binds ext (with or without the leading dot) to e.  A later call
// for the same extension wins.
func (r *Registry) Register(ext string, e mvc.Engine) {
	r.mu.Lock()
	r.engines[normExt(ext)] = e
	r.mu.Unlock()
}

// Lookup returns the engine for ext, or the default engine.
func (r *Registry) Lookup(ext string) mvc.Engine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.engines[normExt(ext)]; ok {
		return e
	}
	return r.def
}

// Render hands path to the engine registered for its extension.
func (r *Registry) Render(w io.Writer, path string, scope mvc.Scope) error {
	return r.Lookup(filepath.Ext(path)).Render(w, path, scope)
}

// Options tunes the default registry.
type Options struct {
	CacheSize int  // parsed templates kept in memory per engine; 0 means 256
	Debug     bool // reparse pongo2 templates on every render
}

// New builds the default registry described in the file header.
func New(opts Options) (*Registry, error) {
	html := NewHTMLEngine(opts.CacheSize)
	pongo, err := NewPongoEngine(opts.CacheSize, opts.Debug)
	if err != nil {
		return nil, err
	}

	r := NewRegistry(html)
	r.Register(".html", html)
	r.Register(".tmpl", html)
	r.Register(".tpl", pongo)
	r.Register(".django", pongo)
	return r, nil
}

func normExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
