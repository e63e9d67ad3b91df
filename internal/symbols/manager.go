// Package symbols provides the symbol, section and equ tables of an assembler run.
package symbols

// Manager keeps named items in definition order.
// T is the type of item being managed (e.g., *Symbol or Constant).
type Manager[T any] struct {
	items []T
	index map[string]int
}

// New creates a new item manager.
func New[T any]() *Manager[T] {
	return &Manager[T]{
		index: make(map[string]int),
	}
}

// Add appends the item under the given name. It returns false without
// adding the item if the name is already in use.
func (m *Manager[T]) Add(name string, item T) bool {
	if _, ok := m.index[name]; ok {
		return false
	}
	m.index[name] = len(m.items)
	m.items = append(m.items, item)
	return true
}

// Get returns the item with the given name.
func (m *Manager[T]) Get(name string) (T, bool) {
	i, ok := m.index[name]
	if !ok {
		var zero T
		return zero, false
	}
	return m.items[i], true
}

// Has returns whether an item with the given name exists.
func (m *Manager[T]) Has(name string) bool {
	_, ok := m.index[name]
	return ok
}

// Items returns all items in definition order.
// The returned slice must not be modified.
func (m *Manager[T]) Items() []T {
	return m.items
}

// Len returns the number of items in the manager.
func (m *Manager[T]) Len() int {
	return len(m.items)
}
