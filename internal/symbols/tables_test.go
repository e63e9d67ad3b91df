package symbols

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSymbolTable(t *testing.T) {
	t.Run("add and find", func(t *testing.T) {
		table := NewSymbolTable()
		assert.NoError(t, table.Add("start", 0, 4, false))

		sym, ok := table.Find("start")
		assert.True(t, ok)
		assert.Equal(t, Symbol{Label: "start", Section: 0, Offset: 4}, *sym)
		assert.True(t, sym.Defined())
	})

	t.Run("duplicate symbol", func(t *testing.T) {
		table := NewSymbolTable()
		assert.NoError(t, table.Add("start", 0, 0, false))

		err := table.Add("start", 1, 2, false)
		assert.True(t, errors.Is(err, ErrSymbolExists))
		assert.Equal(t, 1, table.Len())
	})

	t.Run("set global", func(t *testing.T) {
		table := NewSymbolTable()
		assert.NoError(t, table.Add("start", 0, 0, false))
		assert.NoError(t, table.SetGlobal("start"))

		sym, _ := table.Find("start")
		assert.True(t, sym.Global)
	})

	t.Run("set global on undefined symbol", func(t *testing.T) {
		table := NewSymbolTable()
		err := table.SetGlobal("missing")
		assert.True(t, errors.Is(err, ErrSymbolNotDefined))
	})

	t.Run("extern symbol is undefined", func(t *testing.T) {
		table := NewSymbolTable()
		assert.NoError(t, table.Add("ext", Undefined, 0, true))

		sym, _ := table.Find("ext")
		assert.False(t, sym.Defined())
	})
}

func TestSectionTable(t *testing.T) {
	table := NewSectionTable()
	table.Add("text", 0, "rx")
	table.Add("data", 1, "rw")

	assert.Equal(t, 2, table.Len())

	sec, ok := table.Get(1)
	assert.True(t, ok)
	assert.Equal(t, Section{Name: "data", ID: 1, Flags: "rw"}, sec)

	_, ok = table.Get(2)
	assert.False(t, ok)
	_, ok = table.Get(-1)
	assert.False(t, ok)
}

func TestEquTable(t *testing.T) {
	table := NewEquTable()
	assert.True(t, table.Add("size", 16))
	assert.False(t, table.Add("size", 32))

	value, ok := table.Lookup("size")
	assert.True(t, ok)
	assert.Equal(t, int32(16), value)

	_, ok = table.Lookup("other")
	assert.False(t, ok)
	assert.Equal(t, 1, len(table.All()))
}
