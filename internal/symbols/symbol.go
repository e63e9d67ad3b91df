package symbols

import (
	"errors"
	"fmt"
)

// Undefined is the section index of symbols that are not defined in any
// section of the object, like extern symbols.
const Undefined = -1

var (
	ErrSymbolExists     = errors.New("symbol already defined")
	ErrSymbolNotDefined = errors.New("symbol not defined")
)

// Symbol is a named location in a section.
type Symbol struct {
	Label   string
	Section int
	Offset  int
	Global  bool
}

// Defined returns whether the symbol belongs to a section of the object.
func (s *Symbol) Defined() bool {
	return s.Section != Undefined
}

// SymbolTable contains all symbols in definition order.
type SymbolTable struct {
	symbols *Manager[*Symbol]
}

// NewSymbolTable returns a new empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: New[*Symbol](),
	}
}

// Add defines a new symbol.
func (t *SymbolTable) Add(label string, section, offset int, global bool) error {
	sym := &Symbol{
		Label:   label,
		Section: section,
		Offset:  offset,
		Global:  global,
	}
	if !t.symbols.Add(label, sym) {
		return fmt.Errorf("%w: '%s'", ErrSymbolExists, label)
	}
	return nil
}

// Find returns the symbol with the given label.
func (t *SymbolTable) Find(label string) (*Symbol, bool) {
	return t.symbols.Get(label)
}

// SetGlobal marks an existing symbol as global.
func (t *SymbolTable) SetGlobal(label string) error {
	sym, ok := t.symbols.Get(label)
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrSymbolNotDefined, label)
	}
	sym.Global = true
	return nil
}

// All returns all symbols in definition order.
func (t *SymbolTable) All() []*Symbol {
	return t.symbols.Items()
}

// Len returns the number of symbols.
func (t *SymbolTable) Len() int {
	return t.symbols.Len()
}
