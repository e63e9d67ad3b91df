package instruction

import (
	"fmt"

	"github.com/retroenv/twopass/internal/arch"
	"github.com/retroenv/twopass/internal/program"
)

// Resolver resolves symbol names used in operands.
type Resolver interface {
	// LookupConstant returns the value of an equ constant.
	LookupConstant(name string) (int32, bool)
	// LookupSymbol returns the section index of a symbol.
	LookupSymbol(name string) (int, bool)
}

// Encode encodes the instruction into its machine code, most significant
// byte first, and returns the relocations for all operand values that are
// not known at assembly time.
func Encode(ins *Instruction, resolver Resolver) (uint64, []program.Relocation, error) {
	code := ins.Mnemonic.Opcode() << 1
	if !ins.Short {
		code |= 1
	}
	code <<= 2

	var relocations []program.Relocation

	for _, op := range ins.Operands {
		code = code<<3 | uint64(op.Mode)

		switch op.Mode {
		case arch.RegisterDirect, arch.RegisterIndirect:
			code = code<<4 | uint64(op.Register)
			code <<= 1
			if op.High {
				code |= 1
			}
			continue

		case arch.RegisterIndirectShort, arch.RegisterIndirectWord:
			code = code<<4 | uint64(op.Register)
			code <<= 1

		default:
			code <<= 5
		}

		value, relocation, err := resolve(op, ins.Short, resolver)
		if err != nil {
			return 0, nil, err
		}
		if relocation != nil {
			relocations = append(relocations, *relocation)
		}
		code = appendValue(code, value, relocation != nil, ins.Short)
	}

	return code, relocations, nil
}

// resolve returns the value of the operand. Equ constants take precedence
// over symbols, which result in a relocation entry. A memory operand that
// names a symbol is always relocated, even when the name is a constant.
func resolve(op Operand, short bool, resolver Resolver) (int32, *program.Relocation, error) {
	if op.Symbol == "" {
		return op.Value, nil, nil
	}

	if op.Mode != arch.Memory {
		if value, ok := resolver.LookupConstant(op.Symbol); ok {
			return value, nil, nil
		}
	}

	section, ok := resolver.LookupSymbol(op.Symbol)
	if !ok {
		return 0, nil, fmt.Errorf("%w: '%s'", ErrSymbolNotDefined, op.Symbol)
	}

	relocation := &program.Relocation{
		Offset:  op.ValueOffset,
		Kind:    arch.RelocationFor(op.PCRelative, short),
		Section: section,
		Symbol:  op.Symbol,
	}
	return op.Value, relocation, nil
}

// appendValue appends the 8 or 16 bit value field. 16 bit values are stored
// low byte first and left empty when the field is relocated.
func appendValue(code uint64, value int32, relocated, short bool) uint64 {
	if short {
		return code<<8 | uint64(uint8(value))
	}

	code <<= 16
	if !relocated {
		v := uint16(value)
		code |= uint64(v&0xff)<<8 | uint64(v>>8)
	}
	return code
}
