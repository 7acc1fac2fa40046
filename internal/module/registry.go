// internal/module/registry.go
//
// Unit registry.
//
// A unit is a directory that owns a `templates/` folder.  Renderers that
// are given a template name without a directory look in
// `<unit dir>/templates/`, so the host needs a map from unit name to unit
// directory.  Units are either registered explicitly (Register) or found
// on disk (Discover).
//
// Directories are stored with a trailing separator, matching what
// mvc.Controller.UnitDir returns.
//
// The package-level functions act on Default; tests and embedding hosts
// can keep their own Registry.
package module

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownUnit is returned by Dir for names that are not registered.
var ErrUnknownUnit = errors.New("module: unknown unit")

// Registry maps unit names to unit directories.
type Registry struct {
	mu    sync.RWMutex
	units map[string]string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{units: map[string]string{}}
}

// Default is the process-wide registry used by the package functions.
var Default = NewRegistry()

// Register binds name to dir.  A later call for the same name wins.
func (r *Registry) Register(name, dir string) {
	r.mu.Lock()
	r.units[name] = withSeparator(dir)
	r.mu.Unlock()
}

// Lookup returns the directory for name.
func (r *Registry) Lookup(name string) (dir string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dir, ok = r.units[name]
	return dir, ok
}

// Dir is Lookup with an error for unknown names.
func (r *Registry) Dir(name string) (string, error) {
	if dir, ok := r.Lookup(name); ok {
		return dir, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

// Names returns the registered unit names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.units))
	for n := range r.units {
		out = append(out, n)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Discover registers every direct sub-directory of modulesDir that
// contains a templates/ directory and returns how many it found.
func (r *Registry) Discover(modulesDir string) (int, error) {
	entries, err := os.ReadDir(modulesDir)
	if err != nil {
		return 0, fmt.Errorf("module: scan %s: %w", modulesDir, err)
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(modulesDir, e.Name())
		if fi, err := os.Stat(filepath.Join(dir, "templates")); err != nil || !fi.IsDir() {
			continue
		}
		r.Register(e.Name(), dir)
		n++
	}
	return n, nil
}

// Register binds name to dir in Default.
func Register(name, dir string) { Default.Register(name, dir) }

// Lookup returns the directory for name from Default.
func Lookup(name string) (string, bool) { return Default.Lookup(name) }

// Names lists the units in Default.
func Names() []string { return Default.Names() }

// Discover scans modulesDir into Default.
func Discover(modulesDir string) (int, error) { return Default.Discover(modulesDir) }

func withSeparator(dir string) string {
	if dir == "" || strings.HasSuffix(dir, "/") || strings.HasSuffix(dir, `\`) {
		return dir
	}
	return dir + string(filepath.Separator)
}
