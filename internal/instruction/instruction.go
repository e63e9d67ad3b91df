// Package instruction parses instructions with their operands and encodes
// them into machine code.
package instruction

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/retroenv/retrogolib/set"
	"github.com/retroenv/twopass/internal/arch"
	"github.com/retroenv/twopass/internal/parser"
)

var (
	ErrUnknownInstruction   = errors.New("unknown instruction")
	ErrMissingOperand       = errors.New("missing instruction parameter")
	ErrUnexpectedOperand    = errors.New("unexpected instruction parameter")
	ErrImmediateDestination = errors.New("destination addressing type can't be immediate")
	ErrUnknownRegister      = errors.New("unknown register")
	ErrRegisterSpecifier    = errors.New("expected 'h' or 'l' register specifier")
	ErrOpenBracket          = errors.New("'[' expected")
	ErrCloseBracket         = errors.New("']' expected")
	ErrBadParameter         = errors.New("bad parameter")
	ErrSymbolNotDefined     = errors.New("symbol not defined")
)

// immediateDestinations are the instructions whose first operand may be immediate.
var immediateDestinations = func() set.Set[arch.Mnemonic] {
	s := set.New[arch.Mnemonic]()
	s.Add(arch.Push)
	s.Add(arch.Int)
	return s
}()

// Instruction is a parsed instruction.
type Instruction struct {
	Mnemonic arch.Mnemonic
	Size     int  // encoded size in bytes
	Short    bool // 8 bit operand variant
	Operands []Operand
}

// Parse parses the instruction text located at the given section offset and
// calculates its encoded size.
func Parse(text string, offset int) (*Instruction, error) {
	name, rest := splitMnemonic(strings.TrimSpace(text))
	name, short := cutSizeSuffix(name)

	mnemonic, ok := arch.LookupMnemonic(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInstruction, name)
	}

	ins := &Instruction{
		Mnemonic: mnemonic,
		Size:     1,
		Short:    short,
	}
	if err := ins.parseOperands(rest, offset); err != nil {
		return nil, err
	}
	return ins, nil
}

func (ins *Instruction) parseOperands(text string, offset int) error {
	count := ins.Mnemonic.Operands()
	if count == 0 {
		if text != "" {
			return ErrUnexpectedOperand
		}
		return nil
	}
	if text == "" {
		return ErrMissingOperand
	}

	operands, err := parser.SplitOperands(text)
	if err != nil {
		return err
	}
	if operands.Len() > count {
		return ErrUnexpectedOperand
	}

	for i := range count {
		token := operands.Get(i)
		if token == "" {
			return ErrMissingOperand
		}

		op, err := ParseOperand(token, offset+ins.Size, ins.Short)
		if err != nil {
			return err
		}
		if i == 0 && op.Mode == arch.Immediate && !immediateDestinations.Contains(ins.Mnemonic) {
			return ErrImmediateDestination
		}

		ins.Operands = append(ins.Operands, op)
		ins.Size += op.Mode.Size(ins.Short)
	}
	return nil
}

// splitMnemonic splits the instruction name from the operand text.
func splitMnemonic(text string) (string, string) {
	pos := strings.IndexFunc(text, unicode.IsSpace)
	if pos < 0 {
		return text, ""
	}
	return text[:pos], strings.TrimSpace(text[pos:])
}

// cutSizeSuffix removes a size suffix from the instruction name and returns
// whether the short variant is selected. The b of sub is not a suffix.
func cutSizeSuffix(name string) (string, bool) {
	if name == "" {
		return name, false
	}

	switch name[len(name)-1] {
	case arch.WordSuffix:
		return name[:len(name)-1], false
	case arch.ShortSuffix:
		if name == arch.Sub.String() {
			return name, false
		}
		return name[:len(name)-1], true
	default:
		return name, false
	}
}
