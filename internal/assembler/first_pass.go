package assembler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/twopass/internal/instruction"
	"github.com/retroenv/twopass/internal/parser"
	"github.com/retroenv/twopass/internal/program"
)

// endDirective ends the source, lines following it are ignored.
const endDirective = ".end"

var (
	ErrNotInSection = errors.New("not in a section")
	ErrLabelTooLong = fmt.Errorf("label too long, max characters: %d", parser.MaxNameLength)
	ErrNegativeSkip = errors.New("skip size can't be negative")
	ErrBadAlignment = errors.New("alignment has to be positive")
)

// FirstPass classifies all source lines up to the end directive, fills the
// symbol, section and equ tables and returns the statements for the second pass.
func (a *Assembler) FirstPass(ctx context.Context, lines []string) ([]*Statement, error) {
	a.reset()
	loc := program.NewLocation()
	var statements []*Statement

	for i, text := range lines {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("first pass: %w", err)
		}

		text = strings.TrimSuffix(text, "\r")
		if strings.Contains(text, endDirective) {
			break
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		stmt := &Statement{
			Location: loc,
			Number:   i + 1,
			Text:     text,
		}
		if err := a.firstPassStatement(stmt, &loc); err != nil {
			return nil, &SyntaxError{Line: text, Number: stmt.Number, Err: err}
		}
		statements = append(statements, stmt)
	}

	a.logger.Debug("First pass finished",
		log.Int("statements", len(statements)),
		log.Int("symbols", a.symbols.Len()),
		log.Int("sections", a.sections.Len()))
	return statements, nil
}

func (a *Assembler) firstPassStatement(stmt *Statement, loc *program.Location) error {
	line, err := parser.Classify(stmt.Text)
	if err != nil {
		return err
	}
	stmt.Line = line

	if err := a.addLabel(line.Label, *loc); err != nil {
		return err
	}

	switch line.Kind {
	case parser.Section:
		loc.NextSection()
		a.sections.Add(line.SectionName, loc.Section, line.SectionFlags)
		a.logger.Debug("Section opened",
			log.String("name", line.SectionName),
			log.Int("id", loc.Section),
			log.String("flags", line.SectionFlags))
		return nil

	case parser.Directive:
		return a.firstPassDirective(line, loc)

	case parser.Instruction:
		if !loc.InSection() {
			return ErrNotInSection
		}
		ins, err := instruction.Parse(line.Instruction, loc.Offset)
		if err != nil {
			return err
		}
		stmt.Instruction = ins
		loc.Advance(ins.Size)
		return nil

	default:
		return nil
	}
}

func (a *Assembler) addLabel(label string, loc program.Location) error {
	if label == "" {
		return nil
	}
	if !loc.InSection() {
		return ErrNotInSection
	}
	if len(label) > parser.MaxNameLength {
		return ErrLabelTooLong
	}
	return a.addSymbol(label, loc, false)
}

func (a *Assembler) addSymbol(label string, loc program.Location, global bool) error {
	if err := a.symbols.Add(label, loc.Section, loc.Offset, global); err != nil {
		return err
	}
	a.logger.Debug("Symbol added",
		log.String("label", label),
		log.Int("section", loc.Section),
		log.Hex("offset", loc.Offset))
	return nil
}

func (a *Assembler) firstPassDirective(line *parser.Line, loc *program.Location) error {
	switch line.Directive {
	case parser.Byte, parser.Word, parser.Skip, parser.Align:
		size, err := dataSize(line, *loc)
		if err != nil {
			return err
		}
		loc.Advance(size)

	case parser.Equ:
		if err := a.addSymbol(line.Symbol, *loc, false); err != nil {
			return err
		}
		// the symbol table rejects duplicates, so the constant is always new
		a.equ.Add(line.Symbol, line.Value)

	case parser.Extern:
		return a.addSymbol(line.Symbol, program.NewLocation(), true)

	case parser.Global:
		// applied in the second pass once all symbols are known
	}
	return nil
}

// dataSize returns the number of bytes a data directive emits at the location.
func dataSize(line *parser.Line, loc program.Location) (int, error) {
	if !loc.InSection() {
		return 0, ErrNotInSection
	}

	switch line.Directive {
	case parser.Byte:
		return len(line.Operands), nil
	case parser.Word:
		return 2 * len(line.Operands), nil
	case parser.Skip:
		if line.Value < 0 {
			return 0, fmt.Errorf("%w: %d", ErrNegativeSkip, line.Value)
		}
		return int(line.Value), nil
	case parser.Align:
		if line.Value <= 0 {
			return 0, fmt.Errorf("%w: %d", ErrBadAlignment, line.Value)
		}
		return loc.PaddingTo(int(line.Value)), nil
	default:
		return 0, nil
	}
}
