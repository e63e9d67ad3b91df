package arch

import "fmt"

// Register is the 4 bit register code of an operand.
type Register uint8

// Registers. sp and pc are aliases of r6 and r7.
const (
	R0  Register = 0x0
	R1  Register = 0x1
	R2  Register = 0x2
	R3  Register = 0x3
	R4  Register = 0x4
	R5  Register = 0x5
	R6  Register = 0x6
	R7  Register = 0x7
	SP           = R6
	PC           = R7
	PSW Register = 0xF
)

// NamedRegisters are the registers that are written by name instead of rN.
var NamedRegisters = []struct {
	Name     string
	Register Register
}{
	{"psw", PSW},
	{"sp", SP},
	{"pc", PC},
}

// LookupRegister returns the register for the given register name.
func LookupRegister(name string) (Register, bool) {
	for _, reg := range NamedRegisters {
		if reg.Name == name {
			return reg.Register, true
		}
	}
	if len(name) == 2 && name[0] == 'r' && name[1] >= '0' && name[1] <= '7' {
		return Register(name[1] - '0'), true
	}
	return 0, false
}

func (r Register) String() string {
	switch {
	case r == PSW:
		return "psw"
	case r <= R7:
		return fmt.Sprintf("r%d", uint8(r))
	default:
		return fmt.Sprintf("register(%d)", uint8(r))
	}
}
