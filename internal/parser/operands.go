package parser

import (
	"errors"
	"strings"
)

// ErrMissingParameter is returned for an empty operand list or an empty operand.
var ErrMissingParameter = errors.New("missing parameter")

// Operands is a comma separated operand list.
type Operands struct {
	items []string
}

// SplitOperands splits the text on commas and trims every operand.
// Empty input or an empty operand results in ErrMissingParameter.
func SplitOperands(text string) (Operands, error) {
	parts := strings.Split(text, ",")
	items := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return Operands{}, ErrMissingParameter
		}
		items = append(items, part)
	}

	return Operands{items: items}, nil
}

// Get returns the operand at the given index or an empty string if the
// index is out of range.
func (o Operands) Get(index int) string {
	if index < 0 || index >= len(o.items) {
		return ""
	}
	return o.items[index]
}

// Len returns the number of operands.
func (o Operands) Len() int {
	return len(o.items)
}

// All returns a copy of all operands.
func (o Operands) All() []string {
	items := make([]string, len(o.items))
	copy(items, o.items)
	return items
}
