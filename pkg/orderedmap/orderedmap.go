// Package orderedmap provides a generic insertion-order-preserving map.
//
// It is the same shape as the teacher's pkg/ident.Map (a normalized key ->
// value store that remembers insertion order for deterministic iteration),
// generalized for a case-sensitive language: ECMAScript property keys,
// binding names, and Map/Set entries are compared by exact string or
// symbol identity, never folded, so this type drops the
// normalize-on-lookup step and keeps only the ordering guarantee.
package orderedmap

// Map is a string-keyed map that iterates in insertion order. A Set on an
// existing key overwrites the value without changing its position.
type Map[V any] struct {
	index map[string]int
	keys  []string
	vals  []V
}

// New creates an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{index: make(map[string]int)}
}

// NewWithCapacity creates an empty Map pre-sized for n entries.
func NewWithCapacity[V any](n int) *Map[V] {
	return &Map[V]{
		index: make(map[string]int, n),
		keys:  make([]string, 0, n),
		vals:  make([]V, 0, n),
	}
}

// Get returns the value for key and whether it was present.
func (m *Map[V]) Get(key string) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}
	i, ok := m.index[key]
	if !ok {
		return zero, false
	}
	return m.vals[i], true
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

// Set inserts or overwrites key. New keys are appended to the end of the
// iteration order; existing keys keep their original position.
func (m *Map[V]) Set(key string, val V) {
	if i, ok := m.index[key]; ok {
		m.vals[i] = val
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, val)
}

// Delete removes key, shifting later entries down by one to preserve order.
// Returns true if the key was present.
func (m *Map[V]) Delete(key string) bool {
	i, ok := m.index[key]
	if !ok {
		return false
	}
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)
	delete(m.index, key)
	for k, idx := range m.index {
		if idx > i {
			m.index[k] = idx - 1
		}
	}
	return true
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order. The caller must not mutate it.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Range calls f for every entry in insertion order, stopping early if f
// returns false.
func (m *Map[V]) Range(f func(key string, val V) bool) {
	if m == nil {
		return
	}
	for i, k := range m.keys {
		if !f(k, m.vals[i]) {
			return
		}
	}
}
