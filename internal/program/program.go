// Package program represents the assembled object: the symbol and section
// tables and the machine code of every section with its relocations.
package program

import (
	"github.com/retroenv/twopass/internal/arch"
	"github.com/retroenv/twopass/internal/symbols"
)

// Relocation instructs a linker to patch the field at the offset with the
// eventual address of the symbol.
type Relocation struct {
	Offset  int
	Kind    arch.RelocationKind
	Section int // section of the symbol, symbols.Undefined for extern symbols
	Symbol  string
}

// Object is the result of an assembler run.
type Object struct {
	Symbols  *symbols.SymbolTable
	Sections *symbols.SectionTable
	Blocks   []*SectionInfo // section contents in the order they were emitted
}

// New creates a new object for the given tables.
func New(symbolTable *symbols.SymbolTable, sectionTable *symbols.SectionTable) *Object {
	return &Object{
		Symbols:  symbolTable,
		Sections: sectionTable,
	}
}

// Size returns the number of emitted bytes over all sections.
func (o *Object) Size() int {
	size := 0
	for _, block := range o.Blocks {
		size += block.Offset
	}
	return size
}

// RelocationCount returns the number of relocations over all sections.
func (o *Object) RelocationCount() int {
	count := 0
	for _, block := range o.Blocks {
		count += len(block.Relocations)
	}
	return count
}
