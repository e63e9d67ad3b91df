package assembler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/twopass/internal/instruction"
	"github.com/retroenv/twopass/internal/number"
	"github.com/retroenv/twopass/internal/parser"
	"github.com/retroenv/twopass/internal/program"
)

var (
	ErrPassesDiverged  = errors.New("location differs between passes")
	ErrSectionMismatch = errors.New("section differs between passes")
)

// SecondPass replays the statements of the first pass and emits the machine
// code and relocations of every section.
func (a *Assembler) SecondPass(ctx context.Context, statements []*Statement) (*program.Object, error) {
	object := program.New(a.symbols, a.sections)
	var current *program.SectionInfo

	for _, stmt := range statements {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("second pass: %w", err)
		}

		next, err := a.secondPassStatement(stmt, current)
		if err != nil {
			return nil, &SyntaxError{Line: stmt.Text, Number: stmt.Number, Err: err}
		}
		if next != current {
			object.Blocks = append(object.Blocks, next)
			current = next
		}
	}

	a.logger.Debug("Second pass finished",
		log.Int("bytes", object.Size()),
		log.Int("relocations", object.RelocationCount()))
	return object, nil
}

// secondPassStatement processes a statement and returns the section info
// that following statements emit into.
func (a *Assembler) secondPassStatement(stmt *Statement, current *program.SectionInfo) (*program.SectionInfo, error) {
	loc := program.NewLocation()
	if current != nil {
		loc = current.Location
	}
	if loc != stmt.Location {
		return nil, fmt.Errorf("%w: expected section %d offset %d, got section %d offset %d",
			ErrPassesDiverged, stmt.Section, stmt.Offset, loc.Section, loc.Offset)
	}

	switch stmt.Line.Kind {
	case parser.Section:
		return a.openSection(stmt.Line.SectionName, loc.Section+1)

	case parser.Directive:
		return current, a.secondPassDirective(stmt.Line, current)

	case parser.Instruction:
		return current, a.emitInstruction(stmt.Instruction, current)

	default:
		return current, nil
	}
}

func (a *Assembler) openSection(name string, index int) (*program.SectionInfo, error) {
	sec, ok := a.sections.Get(index)
	if !ok || sec.Name != name {
		return nil, fmt.Errorf("%w: '%s'", ErrSectionMismatch, name)
	}
	return program.NewSectionInfo(name, index), nil
}

func (a *Assembler) secondPassDirective(line *parser.Line, current *program.SectionInfo) error {
	switch line.Directive {
	case parser.Byte, parser.Word:
		return a.emitData(line, current)

	case parser.Skip:
		current.Append(strings.Repeat("00", int(line.Value)), int(line.Value))

	case parser.Align:
		padding := current.PaddingTo(int(line.Value))
		current.Append(strings.Repeat("00", padding), padding)

	case parser.Global:
		if err := a.symbols.SetGlobal(line.Symbol); err != nil {
			return err
		}
		a.logger.Debug("Symbol exported", log.String("label", line.Symbol))

	case parser.Extern, parser.Equ:
		// registered in the first pass
	}
	return nil
}

func (a *Assembler) emitData(line *parser.Line, current *program.SectionInfo) error {
	values, err := parser.ResolveData(line.Operands, a.equ, a.options.StrictData)
	if err != nil {
		return err
	}

	size := 1
	if line.Directive == parser.Word {
		size = 2
	}

	for _, value := range values {
		hex, err := number.ToHex(int64(value), size)
		if err != nil {
			return fmt.Errorf("formatting data value: %w", err)
		}
		if size == 2 {
			hex = number.SwapBytes(hex)
		}
		current.Append(hex, size)
	}
	return nil
}

func (a *Assembler) emitInstruction(ins *instruction.Instruction, current *program.SectionInfo) error {
	code, relocations, err := instruction.Encode(ins, a)
	if err != nil {
		return err
	}

	hex, err := number.ToHex(int64(code), ins.Size)
	if err != nil {
		return fmt.Errorf("formatting instruction code: %w", err)
	}
	current.Append(hex, ins.Size)
	current.AddRelocations(relocations...)

	for _, reloc := range relocations {
		a.logger.Debug("Relocation added",
			log.String("section", current.Name),
			log.String("symbol", reloc.Symbol),
			log.Stringer("kind", reloc.Kind),
			log.Hex("offset", reloc.Offset))
	}
	return nil
}
