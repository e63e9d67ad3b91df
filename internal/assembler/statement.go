package assembler

import (
	"fmt"

	"github.com/retroenv/twopass/internal/instruction"
	"github.com/retroenv/twopass/internal/parser"
	"github.com/retroenv/twopass/internal/program"
)

// Statement is a classified source line that the first pass retains for
// the second pass.
type Statement struct {
	program.Location // location at the start of the statement

	Number int    // source line number, starting at 1
	Text   string // source line without carriage return
	Line   *parser.Line

	Instruction *instruction.Instruction // parsed instruction, nil for other kinds
}

// SyntaxError describes an error in a source line.
type SyntaxError struct {
	Line   string
	Number int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Number, e.Err, e.Line)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
