package arch

import "fmt"

// AddressingMode is the 3 bit addressing mode code of an operand.
type AddressingMode uint8

// Addressing modes.
const (
	Immediate             AddressingMode = 0x0
	RegisterDirect        AddressingMode = 0x1
	RegisterIndirect      AddressingMode = 0x2
	RegisterIndirectShort AddressingMode = 0x3 // 8 bit displacement
	RegisterIndirectWord  AddressingMode = 0x4 // 16 bit displacement
	Memory                AddressingMode = 0x5
)

// HasValueField returns whether the operand encoding carries an 8 or 16 bit
// value after the addressing mode byte.
func (a AddressingMode) HasValueField() bool {
	switch a {
	case RegisterDirect, RegisterIndirect:
		return false
	default:
		return true
	}
}

// UsesRegister returns whether the operand encoding carries a register code.
func (a AddressingMode) UsesRegister() bool {
	switch a {
	case RegisterDirect, RegisterIndirect, RegisterIndirectShort, RegisterIndirectWord:
		return true
	default:
		return false
	}
}

// Size returns the number of bytes the operand occupies in an instruction.
func (a AddressingMode) Size(short bool) int {
	switch {
	case !a.HasValueField():
		return 1
	case short:
		return 2
	default:
		return 3
	}
}

func (a AddressingMode) String() string {
	switch a {
	case Immediate:
		return "imm"
	case RegisterDirect:
		return "reg"
	case RegisterIndirect:
		return "regind"
	case RegisterIndirectShort:
		return "regind8"
	case RegisterIndirectWord:
		return "regind16"
	case Memory:
		return "mem"
	default:
		return fmt.Sprintf("addressing(%d)", uint8(a))
	}
}
