// Package number implements literal parsing and hex formatting of values.
package number

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// bytesPerLine is the number of byte pairs after which a formatted dump wraps.
const bytesPerLine = 35

var (
	// ErrMalformed is returned for tokens that are not a valid literal.
	ErrMalformed = errors.New("malformed number")
	// ErrNegativeSize is returned when a negative byte size is passed to ToHex.
	ErrNegativeSize = errors.New("negative byte size")
)

// Parse parses a literal token into a signed 32 bit value.
// A 0x prefix selects hexadecimal, 0b binary and a leading 0 octal notation,
// everything else is parsed as a decimal with an optional minus sign.
func Parse(token string) (int32, error) {
	base := 10
	digits := token

	switch {
	case len(token) > 2 && strings.HasPrefix(token, "0x"):
		base = 16
		digits = token[2:]
	case len(token) > 2 && strings.HasPrefix(token, "0b"):
		base = 2
		digits = token[2:]
	case len(token) > 1 && token[0] == '0':
		base = 8
		digits = token[1:]
	}

	value, err := strconv.ParseInt(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s'", ErrMalformed, token)
	}
	return int32(value), nil
}

// ToHex formats the value as lowercase hex digits, most significant byte first,
// truncated and zero padded to byteSize bytes.
func ToHex(value int64, byteSize int) (string, error) {
	if byteSize < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeSize, byteSize)
	}
	if byteSize == 0 {
		return "", nil
	}

	v := uint64(value)
	if byteSize < 8 {
		v &= 1<<(8*uint(byteSize)) - 1
	}
	return fmt.Sprintf("%0*x", 2*byteSize, v), nil
}

// SwapBytes swaps the two bytes of a 4 character hex string, any other
// input is returned unchanged.
func SwapBytes(s string) string {
	if len(s) != 4 {
		return s
	}
	return s[2:] + s[:2]
}

// Format splits a hex digit stream into space separated byte pairs and
// breaks the line after every bytesPerLine pairs.
func Format(hex string) string {
	buf := &strings.Builder{}
	pairs := 0

	for i := 0; i < len(hex); i++ {
		buf.WriteByte(hex[i])
		if i%2 == 0 {
			continue
		}

		pairs++
		if pairs == bytesPerLine {
			buf.WriteByte('\n')
			pairs = 0
		} else {
			buf.WriteByte(' ')
		}
	}

	return buf.String()
}
