// internal/mvc/attributes.go
//
// Attribute bag and array-valued attributes.
//
// Context
// -------
// Attributes is the flat key-value store a Renderer exposes to its
// template under the binding name "template".  Values are stored as given;
// callers may share values with the bag (pointers, maps, slices) and later
// writes through those handles are visible to the template.
//
// Collection is the ordered keyed list behind SetAttributeArrayItem.  It
// mixes auto-indexed and named items like an ordered associative array:
// Append assigns the next integer key, Set with a numeric key moves that
// counter forward.
//
// Notes
// -----
// • Export flattens Collections into plain []any or map[string]any so every
//   engine can range over them without knowing this package.
package mvc

import (
	"sort"
	"strconv"
)

// Attributes maps attribute names to values.
type Attributes map[string]any

// Get returns the value for name, or nil when it is not set.
func (a Attributes) Get(name string) any {
	return a[name]
}

// Set stores value under name.
func (a Attributes) Set(name string, value any) {
	a[name] = value
}

// Remove deletes name.  Removing a missing name is a no-op.
func (a Attributes) Remove(name string) {
	delete(a, name)
}

// Merge copies every entry of m into a; keys in m win.
func (a Attributes) Merge(m map[string]any) {
	for k, v := range m {
		a[k] = v
	}
}

// Export returns a shallow copy of a with every Collection flattened.
func (a Attributes) Export() map[string]any {
	out := make(map[string]any, len(a))
	for k, v := range a {
		out[k] = exportValue(v)
	}
	return out
}

// Collection is an ordered, keyed list of values.
type Collection struct {
	keys []string
	vals map[string]any
	next int
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{vals: make(map[string]any)}
}

// CollectionOf adopts a plain slice or map as a Collection.  Map keys are
// added in sorted order.  ok is false for any other type.
func CollectionOf(v any) (c *Collection, ok bool) {
	switch t := v.(type) {
	case *Collection:
		return t, true
	case []any:
		c = NewCollection()
		for _, item := range t {
			c.Append(item)
		}
		return c, true
	case []string:
		c = NewCollection()
		for _, item := range t {
			c.Append(item)
		}
		return c, true
	case map[string]any:
		c = NewCollection()
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			c.Set(k, t[k])
		}
		return c, true
	}
	return nil, false
}

// Append adds value under the next integer key.
func (c *Collection) Append(value any) {
	c.Set(strconv.Itoa(c.next), value)
}

// Set stores value under key, keeping the key's original position when it
// already exists.
func (c *Collection) Set(key string, value any) {
	if _, hit := c.vals[key]; !hit {
		c.keys = append(c.keys, key)
	}
	c.vals[key] = value
	if n, err := strconv.Atoi(key); err == nil && n >= c.next {
		c.next = n + 1
	}
}

// Get returns the value under key or nil.
func (c *Collection) Get(key string) any { return c.vals[key] }

// Len reports the number of items.
func (c *Collection) Len() int { return len(c.keys) }

// Keys returns the keys in insertion order.
func (c *Collection) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Values returns the values in insertion order.
func (c *Collection) Values() []any {
	out := make([]any, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.vals[k])
	}
	return out
}

// Map returns the items as a plain map.
func (c *Collection) Map() map[string]any {
	out := make(map[string]any, len(c.keys))
	for _, k := range c.keys {
		out[k] = c.vals[k]
	}
	return out
}

// Export returns []any when the keys are exactly 0..n-1 in order, and a
// map otherwise.  Nested collections are exported as well.
func (c *Collection) Export() any {
	if c.isList() {
		out := make([]any, 0, len(c.keys))
		for _, k := range c.keys {
			out = append(out, exportValue(c.vals[k]))
		}
		return out
	}
	out := make(map[string]any, len(c.keys))
	for _, k := range c.keys {
		out[k] = exportValue(c.vals[k])
	}
	return out
}

func (c *Collection) isList() bool {
	for i, k := range c.keys {
		if k != strconv.Itoa(i) {
			return false
		}
	}
	return true
}

func exportValue(v any) any {
	if c, ok := v.(*Collection); ok {
		return c.Export()
	}
	return v
}
