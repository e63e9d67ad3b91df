package symbols

// Constant is a named value defined by an equ directive.
type Constant struct {
	Label string
	Value int32
}

// EquTable contains all equ constants.
type EquTable struct {
	constants *Manager[Constant]
}

// NewEquTable returns a new empty equ table.
func NewEquTable() *EquTable {
	return &EquTable{
		constants: New[Constant](),
	}
}

// Add defines a constant, a redefinition keeps the first value.
func (t *EquTable) Add(label string, value int32) bool {
	return t.constants.Add(label, Constant{Label: label, Value: value})
}

// Lookup returns the value of the constant with the given label.
func (t *EquTable) Lookup(label string) (int32, bool) {
	c, ok := t.constants.Get(label)
	return c.Value, ok
}

// All returns all constants in definition order.
func (t *EquTable) All() []Constant {
	return t.constants.Items()
}
