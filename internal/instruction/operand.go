package instruction

import (
	"fmt"
	"strings"

	"github.com/retroenv/twopass/internal/arch"
	"github.com/retroenv/twopass/internal/number"
)

// Operand is a parsed instruction operand.
type Operand struct {
	Mode     arch.AddressingMode
	Register arch.Register
	High     bool // high half of the register for short instructions

	Value  int32
	Symbol string // symbol to resolve for the value field, empty for literals

	ValueOffset int // section offset of the value field
	PCRelative  bool
}

// ParseOperand parses an operand token. The offset is the section offset of
// the addressing mode byte of the operand and short selects the 8 bit
// variant of the value field.
func ParseOperand(token string, offset int, short bool) (Operand, error) {
	op := Operand{ValueOffset: offset + 1}
	if token == "" {
		return op, ErrMissingOperand
	}

	var err error
	first := token[0]

	switch {
	case first == '&':
		op.Mode = arch.Immediate
		op.Symbol, err = symbolName(token[1:])
		return op, err

	case isDigit(first) || first == '-':
		op.Mode = arch.Immediate
		op.Value, err = parseValue(token)
		return op, err

	case first == '$':
		op.Mode = displacementMode(short)
		op.PCRelative = true
		op.Symbol, err = symbolName(token[1:])
		return op, err

	case first == '*':
		op.Mode = arch.Memory
		op.Value, err = parseValue(token[1:])
		return op, err
	}

	if name, rest, ok := splitRegister(token, short); ok {
		err = parseRegister(&op, name, rest, short)
		return op, err
	}

	op.Mode = arch.Memory
	op.Symbol, err = symbolName(token)
	return op, err
}

// splitRegister splits a register name from the rest of the token if the
// token starts with a register.
func splitRegister(token string, short bool) (string, string, bool) {
	if len(token) > 1 && token[0] == 'r' && isDigit(token[1]) {
		end := 2
		for end < len(token) && isDigit(token[end]) {
			end++
		}
		return token[:end], token[end:], true
	}

	for _, reg := range arch.NamedRegisters {
		if !strings.HasPrefix(token, reg.Name) {
			continue
		}
		rest := token[len(reg.Name):]
		if rest == "" || rest[0] == '[' || (short && (rest == "l" || rest == "h")) {
			return reg.Name, rest, true
		}
	}
	return "", "", false
}

func parseRegister(op *Operand, name, rest string, short bool) error {
	reg, ok := arch.LookupRegister(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRegister, name)
	}
	op.Register = reg

	switch {
	case rest == "":
		op.Mode = arch.RegisterDirect
		return nil

	case rest[0] == '[':
		return parseIndirect(op, rest, short)

	case short && len(rest) == 1:
		op.Mode = arch.RegisterDirect
		switch rest[0] {
		case 'l':
		case 'h':
			op.High = true
		default:
			return ErrRegisterSpecifier
		}
		return nil

	default:
		return ErrOpenBracket
	}
}

func parseIndirect(op *Operand, rest string, short bool) error {
	if !strings.HasSuffix(rest, "]") {
		return ErrCloseBracket
	}

	inner := strings.TrimSpace(rest[1 : len(rest)-1])
	if inner == "" {
		op.Mode = arch.RegisterIndirect
		return nil
	}

	op.Mode = displacementMode(short)

	var err error
	if isDigit(inner[0]) || inner[0] == '-' {
		op.Value, err = parseValue(inner)
	} else {
		op.Symbol, err = symbolName(inner)
	}
	return err
}

func displacementMode(short bool) arch.AddressingMode {
	if short {
		return arch.RegisterIndirectShort
	}
	return arch.RegisterIndirectWord
}

func parseValue(token string) (int32, error) {
	value, err := number.Parse(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadParameter, err)
	}
	return value, nil
}

func symbolName(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, " \t[]&$*,") {
		return "", fmt.Errorf("%w: '%s'", ErrBadParameter, name)
	}
	return name, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
