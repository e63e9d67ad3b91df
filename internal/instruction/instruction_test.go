package instruction

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/twopass/internal/arch"
	"github.com/retroenv/twopass/internal/parser"
)

func TestParseSizeSuffix(t *testing.T) {
	tests := []struct {
		text     string
		mnemonic arch.Mnemonic
		short    bool
	}{
		{"halt", arch.Halt, false},
		{"pushw r3", arch.Push, false},
		{"pushb r3l", arch.Push, true},
		{"movb r1, r2", arch.Mov, true},
		{"mov r1, r2", arch.Mov, false},
		{"sub r1, r2", arch.Sub, false},
		{"subw r1, r2", arch.Sub, false},
		{"subb r1, r2", arch.Sub, true},
		{"xchgb r1l, r2h", arch.Xchg, true},
		{"iret", arch.Iret, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			ins, err := Parse(tt.text, 0)
			assert.NoError(t, err)
			assert.Equal(t, tt.mnemonic, ins.Mnemonic)
			assert.Equal(t, tt.short, ins.Short)
		})
	}
}

func TestParseShortSuffixForAllMnemonics(t *testing.T) {
	for m := arch.Halt; m <= arch.Iret; m++ {
		name := m.String() + "b"
		ins, err := Parse(name+operandsFor(m, "r1l"), 0)
		assert.NoError(t, err)
		assert.Equal(t, m, ins.Mnemonic)
		assert.True(t, ins.Short)
	}
}

func operandsFor(m arch.Mnemonic, op string) string {
	switch m.Operands() {
	case 0:
		return ""
	case 1:
		return " " + op
	default:
		return " " + op + ", " + op
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		text string
		size int
	}{
		{"halt", 1},
		{"mov r1, r2", 3},
		{"mov r1[], r2", 3},
		{"push 5", 4},
		{"pushb 5", 3},
		{"mov *3, -8", 7},
		{"movb r1[3], sp[label]", 5},
		{"jmp $target", 4},
		{"int 3", 4},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			ins, err := Parse(tt.text, 0)
			assert.NoError(t, err)
			assert.Equal(t, tt.size, ins.Size)
		})
	}
}

func TestParseOperandOffsets(t *testing.T) {
	ins, err := Parse("mov r1[4], *0x1234", 10)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(ins.Operands))
	assert.Equal(t, 12, ins.Operands[0].ValueOffset)
	assert.Equal(t, 15, ins.Operands[1].ValueOffset)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		text string
		err  error
	}{
		{"foo r1", ErrUnknownInstruction},
		{"", ErrUnknownInstruction},
		{"mov r1", ErrMissingOperand},
		{"push", ErrMissingOperand},
		{"halt r1", ErrUnexpectedOperand},
		{"push r1, r2", ErrUnexpectedOperand},
		{"mov 5, r1", ErrImmediateDestination},
		{"pop &value", ErrImmediateDestination},
		{"mov r1,", parser.ErrMissingParameter},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := Parse(tt.text, 0)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.err))
		})
	}
}
