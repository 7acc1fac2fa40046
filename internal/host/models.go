// internal/host/models.go
//
// In-memory model manager.
//
// Units register a factory per model name.  Model(name) runs the factory
// on first use and hands out the same instance afterwards; concurrent
// first calls share one factory run through singleflight.  A failed
// factory is not memoised, so the next call retries.
package host

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrUnknownModel is returned for names without a registered factory.
var ErrUnknownModel = errors.New("host: unknown model")

// Factory builds one model instance.
type Factory func() (any, error)

// Models implements mvc.ModelManager.
type Models struct {
	mu        sync.RWMutex
	factories map[string]Factory
	instances map[string]any
	sfg       singleflight.Group
}

// NewModels returns an empty manager.
func NewModels() *Models {
	return &Models{
		factories: map[string]Factory{},
		instances: map[string]any{},
	}
}

// Register binds name to f and drops any instance built by an earlier
// factory for the same name.
func (m *Models) Register(name string, f Factory) {
	m.mu.Lock()
	m.factories[name] = f
	delete(m.instances, name)
	m.mu.Unlock()
}

// Model returns the instance for name, building it on first use.
func (m *Models) Model(name string) (any, error) {
	m.mu.RLock()
	inst, ok := m.instances[name]
	f, known := m.factories[name]
	m.mu.RUnlock()
	if ok {
		return inst, nil
	}
	if !known {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}

	v, err, _ := m.sfg.Do(name, func() (any, error) {
		m.mu.RLock()
		inst, ok := m.instances[name]
		m.mu.RUnlock()
		if ok {
			return inst, nil
		}
		inst, err := f()
		if err != nil {
			return nil, fmt.Errorf("host: build model %q: %w", name, err)
		}
		m.mu.Lock()
		m.instances[name] = inst
		m.mu.Unlock()
		return inst, nil
	})
	return v, err
}

// Names returns the registered model names, sorted.
func (m *Models) Names() []string {
	m.mu.RLock()
	out := make([]string, 0, len(m.factories))
	for n := range m.factories {
		out = append(out, n)
	}
	m.mu.RUnlock()
	sort.Strings(out)
	return out
}
