// Package options contains the program options.
package options

// Program options of the assembler command.
type Program struct {
	Input  string
	Output string

	Debug bool
	Quiet bool
}

// Assembler defines options to control the assembler.
type Assembler struct {
	// StrictData rejects byte and word operands that are neither a literal
	// nor an equ constant, otherwise they are assembled as zero.
	StrictData bool
}

// NewAssembler returns a new options instance with default options.
func NewAssembler() Assembler {
	return Assembler{
		StrictData: true,
	}
}
