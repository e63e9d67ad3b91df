// Package arch contains the instruction set definitions of the target machine:
// mnemonics with their opcodes, addressing modes, registers and relocation kinds.
package arch

// Size suffixes that can be appended to a mnemonic.
const (
	WordSuffix  = 'w'
	ShortSuffix = 'b'
)

// MaxOperands is the highest number of operands an instruction can take.
const MaxOperands = 2
