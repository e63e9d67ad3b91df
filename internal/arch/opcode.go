package arch

import "fmt"

// Mnemonic identifies an instruction. Its value is the 5 bit opcode.
type Mnemonic uint8

// Instructions of the target machine.
const (
	Halt Mnemonic = iota + 0x01
	Xchg
	Int
	Mov
	Add
	Sub
	Mul
	Div
	Cmp
	Not
	And
	Or
	Xor
	Test
	Shl
	Shr
	Push
	Pop
	Jmp
	Jeq
	Jne
	Jgt
	Call
	Ret
	Iret
)

var mnemonicNames = [...]string{
	Halt: "halt",
	Xchg: "xchg",
	Int:  "int",
	Mov:  "mov",
	Add:  "add",
	Sub:  "sub",
	Mul:  "mul",
	Div:  "div",
	Cmp:  "cmp",
	Not:  "not",
	And:  "and",
	Or:   "or",
	Xor:  "xor",
	Test: "test",
	Shl:  "shl",
	Shr:  "shr",
	Push: "push",
	Pop:  "pop",
	Jmp:  "jmp",
	Jeq:  "jeq",
	Jne:  "jne",
	Jgt:  "jgt",
	Call: "call",
	Ret:  "ret",
	Iret: "iret",
}

var mnemonics = func() map[string]Mnemonic {
	m := make(map[string]Mnemonic, len(mnemonicNames))
	for i, name := range mnemonicNames {
		if name != "" {
			m[name] = Mnemonic(i)
		}
	}
	return m
}()

// LookupMnemonic returns the mnemonic for the given instruction name.
func LookupMnemonic(name string) (Mnemonic, bool) {
	m, ok := mnemonics[name]
	return m, ok
}

// Opcode returns the 5 bit opcode of the instruction.
func (m Mnemonic) Opcode() uint64 {
	return uint64(m)
}

// Operands returns the number of operands the instruction takes.
func (m Mnemonic) Operands() int {
	switch m {
	case Halt, Ret, Iret:
		return 0
	case Int, Not, Push, Pop, Jmp, Jeq, Jne, Jgt, Call:
		return 1
	default:
		return 2
	}
}

// Valid returns whether the mnemonic is a known instruction.
func (m Mnemonic) Valid() bool {
	return m >= Halt && m <= Iret
}

func (m Mnemonic) String() string {
	if !m.Valid() {
		return fmt.Sprintf("mnemonic(%d)", uint8(m))
	}
	return mnemonicNames[m]
}
