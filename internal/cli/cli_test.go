package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/twopass/internal/options"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "output and input",
			args: []string{"prog", "-o", "out.txt", "in.s"},
			want: options.Program{Input: "in.s", Output: "out.txt"},
		},
		{
			name: "debug flag",
			args: []string{"prog", "-debug", "-o", "out.txt", "in.s"},
			want: options.Program{Input: "in.s", Output: "out.txt", Debug: true},
		},
		{
			name: "quiet flag",
			args: []string{"prog", "-q", "-o", "out.txt", "in.s"},
			want: options.Program{Input: "in.s", Output: "out.txt", Quiet: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, asmOpts, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, asmOpts.StrictData)
		})
	}
}

func TestParseFlagsUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"no arguments", []string{"prog"}, "missing input file name"},
		{"missing output", []string{"prog", "in.s"}, "missing output file name"},
		{"missing input", []string{"prog", "-o", "out.txt"}, "missing input file name"},
		{"two inputs", []string{"prog", "-o", "out.txt", "a.s", "b.s"}, "only a single input file"},
		{"flag after input", []string{"prog", "-o", "out.txt", "in.s", "-q"}, "found after input file"},
		{"unknown flag", []string{"prog", "-x", "-o", "out.txt", "in.s"}, "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, _, err := ParseFlags()
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}
