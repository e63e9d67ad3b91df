package arch

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLookupMnemonic(t *testing.T) {
	for m := Halt; m <= Iret; m++ {
		got, ok := LookupMnemonic(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}

	_, ok := LookupMnemonic("nop")
	assert.False(t, ok)
	_, ok = LookupMnemonic("")
	assert.False(t, ok)
}

func TestMnemonicOperands(t *testing.T) {
	tests := []struct {
		mnemonic Mnemonic
		operands int
	}{
		{Halt, 0},
		{Ret, 0},
		{Iret, 0},
		{Int, 1},
		{Not, 1},
		{Push, 1},
		{Pop, 1},
		{Jmp, 1},
		{Jeq, 1},
		{Jne, 1},
		{Jgt, 1},
		{Call, 1},
		{Xchg, 2},
		{Mov, 2},
		{Shr, 2},
	}

	for _, tt := range tests {
		t.Run(tt.mnemonic.String(), func(t *testing.T) {
			assert.Equal(t, tt.operands, tt.mnemonic.Operands())
		})
	}
}

func TestMnemonicOpcode(t *testing.T) {
	assert.Equal(t, uint64(0x01), Halt.Opcode())
	assert.Equal(t, uint64(0x04), Mov.Opcode())
	assert.Equal(t, uint64(0x19), Iret.Opcode())
	assert.False(t, Mnemonic(0).Valid())
	assert.Equal(t, "mnemonic(26)", Mnemonic(26).String())
}

func TestLookupRegister(t *testing.T) {
	tests := []struct {
		name     string
		register Register
		ok       bool
	}{
		{"r0", R0, true},
		{"r7", R7, true},
		{"sp", R6, true},
		{"pc", R7, true},
		{"psw", PSW, true},
		{"r8", 0, false},
		{"r10", 0, false},
		{"rx", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			register, ok := LookupRegister(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.register, register)
		})
	}
}

func TestAddressingModeSize(t *testing.T) {
	assert.Equal(t, 1, RegisterDirect.Size(true))
	assert.Equal(t, 1, RegisterIndirect.Size(false))
	assert.Equal(t, 2, Immediate.Size(true))
	assert.Equal(t, 3, Immediate.Size(false))
	assert.Equal(t, 3, RegisterIndirectWord.Size(false))
	assert.Equal(t, 2, Memory.Size(true))
	assert.False(t, Memory.UsesRegister())
	assert.True(t, RegisterIndirectShort.UsesRegister())
}

func TestRelocationFor(t *testing.T) {
	assert.Equal(t, Relocation16, RelocationFor(false, false))
	assert.Equal(t, Relocation8, RelocationFor(false, true))
	assert.Equal(t, RelocationPC16, RelocationFor(true, false))
	assert.Equal(t, RelocationPC8, RelocationFor(true, true))

	assert.Equal(t, "R_16", Relocation16.String())
	assert.Equal(t, "R_PC8", RelocationPC8.String())
}
