// internal/view/pongo.go
//
// pongo2 engine for Django-syntax templates (.tpl).
//
// Templates see the same two bindings as HTML templates:
//
//	{{ template.title }}  {{ mojavi.Name }}
//
// The set loads absolute paths straight from disk.  Compiled templates are
// cached the same way as HTML sets: an LRU keyed by path, reused only while
// the file's modification time is unchanged, first loads collapsed through
// singleflight.  Debug skips the cache and recompiles on every render.
// Filters "sanitize" and "trim" are registered once per process; pongo2
// keeps filters in a global table.
package view

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/flosch/pongo2/v6"
	"golang.org/x/sync/singleflight"

	"github.com/yanizio/xmf/internal/cache"
	"github.com/yanizio/xmf/internal/metrics"
	"github.com/yanizio/xmf/internal/mvc"
)

// PongoEngine renders pongo2 templates.
type PongoEngine struct {
	set   *pongo2.TemplateSet
	debug bool
	tpls  *cache.LRU
	sfg   singleflight.Group
}

type cachedPongo struct {
	tpl     *pongo2.Template
	modTime time.Time
}

var registerFilters sync.Once

// NewPongoEngine returns an engine backed by a fresh template set that
// keeps up to cacheSize compiled templates.
func NewPongoEngine(cacheSize int, debug bool) (*PongoEngine, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	loader, err := pongo2.NewLocalFileSystemLoader("")
	if err != nil {
		return nil, fmt.Errorf("pongo: create loader: %w", err)
	}
	set := pongo2.NewSet("xmf", loader)
	set.Debug = debug

	registerFilters.Do(func() {
		if !pongo2.FilterExists("sanitize") {
			_ = pongo2.RegisterFilter("sanitize", filterSanitize)
		}
		if !pongo2.FilterExists("trim") {
			_ = pongo2.RegisterFilter("trim", filterTrim)
		}
	})
	return &PongoEngine{set: set, debug: debug, tpls: cache.New(cacheSize)}, nil
}

// Render executes path with the scope bindings as the pongo2 context.
func (e *PongoEngine) Render(w io.Writer, path string, scope mvc.Scope) error {
	tpl, err := e.load(path)
	if err != nil {
		return fmt.Errorf("pongo: load %s: %w", path, err)
	}
	if err := tpl.ExecuteWriter(pongo2.Context(scope.Data()), w); err != nil {
		return fmt.Errorf("pongo: execute %s: %w", path, err)
	}
	return nil
}

// load returns the compiled template for path, from cache when still fresh.
func (e *PongoEngine) load(path string) (*pongo2.Template, error) {
	if e.debug {
		return e.set.FromFile(path)
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if v, ok := e.tpls.Get(path); ok {
		if cp := v.(cachedPongo); cp.modTime.Equal(fi.ModTime()) {
			metrics.TemplateCacheHits.Inc()
			return cp.tpl, nil
		}
	}

	v, err, _ := e.sfg.Do(path, func() (any, error) {
		metrics.TemplateCacheMisses.Inc()
		tpl, err := e.set.FromFile(path)
		if err != nil {
			return nil, err
		}
		e.tpls.Add(path, cachedPongo{tpl: tpl, modTime: fi.ModTime()})
		return tpl, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*pongo2.Template), nil
}

func filterSanitize(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(ugc.Sanitize(in.String())), nil
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}
