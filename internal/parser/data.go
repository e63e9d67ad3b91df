package parser

import (
	"errors"
	"fmt"

	"github.com/retroenv/twopass/internal/number"
)

// ErrUnknownData is returned for a data operand that is neither a literal
// nor the name of an equ constant.
var ErrUnknownData = errors.New("unknown data value")

// ConstantLookup resolves the name of an equ constant.
type ConstantLookup interface {
	Lookup(name string) (int32, bool)
}

// ResolveData resolves the operands of a byte or word directive. Every operand
// is parsed as a literal first and looked up as constant if that fails.
// Unresolvable operands are an error in strict mode and zero otherwise.
func ResolveData(operands []string, constants ConstantLookup, strict bool) ([]int32, error) {
	values := make([]int32, 0, len(operands))

	for _, operand := range operands {
		value, err := number.Parse(operand)
		if err == nil {
			values = append(values, value)
			continue
		}

		value, ok := constants.Lookup(operand)
		if !ok && strict {
			return nil, fmt.Errorf("%w: '%s'", ErrUnknownData, operand)
		}
		values = append(values, value)
	}

	return values, nil
}
