// Package assembler implements the two pass assembler: the first pass builds
// the symbol, section and equ tables, the second pass emits the machine code
// and relocations of every section.
package assembler

import (
	"context"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/twopass/internal/options"
	"github.com/retroenv/twopass/internal/program"
	"github.com/retroenv/twopass/internal/symbols"
)

// Assembler holds the tables of an assembler session.
type Assembler struct {
	logger  *log.Logger
	options options.Assembler

	symbols  *symbols.SymbolTable
	sections *symbols.SectionTable
	equ      *symbols.EquTable
}

// New returns a new assembler.
func New(logger *log.Logger, options options.Assembler) *Assembler {
	a := &Assembler{
		logger:  logger,
		options: options,
	}
	a.reset()
	return a
}

// Assemble runs both passes over the source lines and returns the assembled object.
func (a *Assembler) Assemble(ctx context.Context, lines []string) (*program.Object, error) {
	statements, err := a.FirstPass(ctx, lines)
	if err != nil {
		return nil, err
	}
	return a.SecondPass(ctx, statements)
}

// LookupConstant returns the value of the equ constant with the given name.
func (a *Assembler) LookupConstant(name string) (int32, bool) {
	return a.equ.Lookup(name)
}

// LookupSymbol returns the section of the symbol with the given name.
func (a *Assembler) LookupSymbol(name string) (int, bool) {
	sym, ok := a.symbols.Find(name)
	if !ok {
		return 0, false
	}
	return sym.Section, true
}

func (a *Assembler) reset() {
	a.symbols = symbols.NewSymbolTable()
	a.sections = symbols.NewSectionTable()
	a.equ = symbols.NewEquTable()
}
