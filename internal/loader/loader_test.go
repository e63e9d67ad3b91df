package loader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load source file", func(t *testing.T) {
		tmpFile := createTempFile(t, ".text\nmov r1, r2\n.end\n")

		lines, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, []string{".text", "mov r1, r2", ".end"}, lines)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load("/nonexistent/file.s")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})
}

func TestLoadFromReader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "windows line endings",
			input: ".data\r\nval: .word 5\r\n",
			want:  []string{".data", "val: .word 5"},
		},
		{
			name:  "stops after end directive",
			input: ".text\nhalt\n  .end\nignored\n",
			want:  []string{".text", "halt", "  .end"},
		},
		{
			name:  "keeps blank lines",
			input: ".text\n\nhalt",
			want:  []string{".text", "", "halt"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := New().LoadFromReader(strings.NewReader(tt.input))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, lines)
		})
	}
}

func TestLoadFromReaderLineTooLong(t *testing.T) {
	input := strings.Repeat("a", maxLineLength+1)
	_, err := New().LoadFromReader(strings.NewReader(input))
	assert.Error(t, err)
}

func createTempFile(t *testing.T, data string) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.s")
	if err := os.WriteFile(tmpFile, []byte(data), 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
