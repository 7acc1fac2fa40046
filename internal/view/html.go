// internal/view/html.go
//
// html/template engine with a cache of parsed template sets.
//
// Lookup and parsing
// ------------------
// A template file is parsed together with every sibling that shares its
// extension, so sub-templates ({{ template "row.html" . }}) work without
// extra wiring.  The main file is parsed last and owns its names; broken
// siblings are skipped.  execName then chooses what to run:
//
//   - If the main file defines "<stem>" (the file name without extension)
//     via {{ define }}, that root template runs.
//   - Otherwise the file itself runs.
//
// Caching
// -------
// Parsed sets are kept in an LRU keyed by path.  An entry is reused only
// while the file's modification time is unchanged.  Concurrent first loads
// of the same path share one parse through singleflight.
//
// Notes
// -----
// • Edits to siblings alone do not invalidate the entry; touch the main
//   file or restart.
package view

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/yanizio/xmf/internal/cache"
	"github.com/yanizio/xmf/internal/metrics"
	"github.com/yanizio/xmf/internal/mvc"
)

const defaultCacheSize = 256

// HTMLEngine renders html/template files.
type HTMLEngine struct {
	sets  *cache.LRU
	sfg   singleflight.Group
	funcs template.FuncMap
}

type cachedSet struct {
	tpl     *template.Template
	name    string // template to execute
	modTime time.Time
}

// NewHTMLEngine returns an engine that keeps up to cacheSize parsed sets.
func NewHTMLEngine(cacheSize int) *HTMLEngine {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	return &HTMLEngine{
		sets:  cache.New(cacheSize),
		funcs: buildFuncMap(),
	}
}

// Funcs adds helpers to every set parsed from now on.  Call it before the
// first Render.
func (e *HTMLEngine) Funcs(fm template.FuncMap) {
	for k, v := range fm {
		e.funcs[k] = v
	}
}

// Render executes path with the scope bindings as dot.
func (e *HTMLEngine) Render(w io.Writer, path string, scope mvc.Scope) error {
	cs, err := e.load(path)
	if err != nil {
		return err
	}
	return cs.tpl.ExecuteTemplate(w, cs.name, scope.Data())
}

// load returns the parsed set for path, from cache when still fresh.
func (e *HTMLEngine) load(path string) (cachedSet, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return cachedSet{}, err
	}

	if v, ok := e.sets.Get(path); ok {
		if cs := v.(cachedSet); cs.modTime.Equal(fi.ModTime()) {
			metrics.TemplateCacheHits.Inc()
			return cs, nil
		}
	}

	v, err, _ := e.sfg.Do(path, func() (any, error) {
		metrics.TemplateCacheMisses.Inc()
		cs, err := e.parse(path)
		if err != nil {
			return nil, err
		}
		cs.modTime = fi.ModTime()
		e.sets.Add(path, cs)
		return cs, nil
	})
	if err != nil {
		return cachedSet{}, err
	}
	return v.(cachedSet), nil
}

// parse builds the set for path.
//
// Order matters: siblings go in first and the main file last, so the main
// file always owns its own name and every name it defines.  A sibling that
// does not parse on its own is left out and logged; only errors in the
// main file fail the render.
func (e *HTMLEngine) parse(path string) (cachedSet, error) {
	base := filepath.Base(path)
	body, err := os.ReadFile(path)
	if err != nil {
		return cachedSet{}, err
	}
	own, err := template.New(base).Funcs(e.funcs).Parse(string(body))
	if err != nil {
		return cachedSet{}, fmt.Errorf("parse %s: %w", path, err)
	}

	t := template.New(base).Funcs(e.funcs)
	if ext := filepath.Ext(path); ext != "" {
		siblings, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*"+ext))
		if err != nil {
			return cachedSet{}, err
		}
		for _, s := range siblings {
			if s != path && isFile(s) {
				e.addSibling(t, s)
			}
		}
	}

	if _, err := t.New(base).Parse(string(body)); err != nil {
		return cachedSet{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cachedSet{tpl: t, name: execName(own, path)}, nil
}

// addSibling parses s into t when it parses cleanly on its own.
func (e *HTMLEngine) addSibling(t *template.Template, s string) {
	name := filepath.Base(s)
	b, err := os.ReadFile(s)
	if err == nil {
		_, err = template.New(name).Funcs(e.funcs).Parse(string(b))
	}
	if err != nil {
		zap.S().Debugw("sibling template skipped", "path", s, "err", err)
		return
	}
	// Validated above, so this only fails on html/template redefinition
	// rules, which do not apply before the first execution.
	_, _ = t.New(name).Parse(string(b))
}

//
// helpers
//

// execName picks the template name to execute.  own holds only the main
// file's templates, so a sibling cannot redirect execution.
//
// Priority:
//  1. A root template defined as "<stem>" in the main file.
//  2. The file itself.
func execName(own *template.Template, path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem != base && own.Lookup(stem) != nil {
		return stem
	}
	return base
}

func isFile(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.Mode().IsRegular()
}
