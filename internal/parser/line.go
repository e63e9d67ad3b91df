// Package parser classifies source lines into sections, directives and
// instructions and splits their operands.
package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/retroenv/twopass/internal/number"
)

// MaxNameLength is the maximum length of labels, section and symbol names.
const MaxNameLength = 23

// Kind is the classification of a source line.
type Kind uint8

// Line kinds.
const (
	Empty Kind = iota
	Section
	Directive
	Instruction
)

func (k Kind) String() string {
	switch k {
	case Section:
		return "section"
	case Directive:
		return "directive"
	case Instruction:
		return "instruction"
	default:
		return "empty"
	}
}

// DirectiveType identifies an assembler directive.
type DirectiveType uint8

// Directives in matching priority.
const (
	Byte DirectiveType = iota
	Word
	Align
	Skip
	Extern
	Global
	Equ
)

var directiveKeywords = []struct {
	name      string
	directive DirectiveType
}{
	{"byte", Byte},
	{"word", Word},
	{"align", Align},
	{"skip", Skip},
	{"extern", Extern},
	{"global", Global},
	{"equ", Equ},
}

func (d DirectiveType) String() string {
	for _, kw := range directiveKeywords {
		if kw.directive == d {
			return kw.name
		}
	}
	return fmt.Sprintf("directive(%d)", uint8(d))
}

// sectionKeywords in matching priority, an empty flags entry marks the
// generic section keyword that reads name and flags from its operands.
var sectionKeywords = []struct {
	name  string
	flags string
}{
	{"text", "rx"},
	{"data", "rw"},
	{"bss", "r"},
	{"section", ""},
}

var (
	ErrUnexpectedColon = errors.New("unexpected character ':'")
	ErrBadLabel        = errors.New("bad label name")
	ErrUnexpectedDot   = errors.New("unexpected '.' character")
	ErrUnknownKeyword  = errors.New("unknown section or directive")
	ErrOperandCount    = errors.New("wrong number of parameters")
	ErrNameTooLong     = fmt.Errorf("symbol name too long, max characters: %d", MaxNameLength)
)

// Line is a classified source line.
type Line struct {
	Label string
	Kind  Kind

	SectionName  string
	SectionFlags string

	Directive DirectiveType
	Operands  []string // raw operands of byte and word directives
	Value     int32    // literal operand of skip, align and equ directives
	Symbol    string   // symbol name of equ, extern and global directives

	Instruction string // instruction text without label and comment
}

// Classify strips comment and label from a source line and determines
// whether the remaining text opens a section, is a directive or an instruction.
func Classify(text string) (*Line, error) {
	line := &Line{}

	text = stripComment(text)
	text, err := parseLabel(text, line)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return line, nil
	}

	pos := strings.LastIndexByte(text, '.')
	if pos < 0 {
		line.Kind = Instruction
		line.Instruction = text
		return line, nil
	}
	if pos != 0 {
		return nil, ErrUnexpectedDot
	}
	text = text[1:]

	for _, parse := range []func(string, *Line) (bool, error){parseSection, parseDirective} {
		ok, err := parse(text, line)
		if err != nil {
			return nil, err
		}
		if ok {
			return line, nil
		}
	}

	return nil, fmt.Errorf("%w: '.%s'", ErrUnknownKeyword, keyword(text))
}

func stripComment(text string) string {
	if pos := strings.IndexByte(text, ';'); pos >= 0 {
		return text[:pos]
	}
	return text
}

func parseLabel(text string, line *Line) (string, error) {
	pos := strings.IndexByte(text, ':')
	if pos < 0 {
		return strings.TrimSpace(text), nil
	}
	if strings.Count(text, ":") > 1 {
		return "", ErrUnexpectedColon
	}

	label := strings.TrimSpace(text[:pos])
	if label == "" || strings.Contains(label, ".") || strings.ContainsFunc(label, unicode.IsSpace) {
		return "", fmt.Errorf("%w: '%s'", ErrBadLabel, label)
	}
	line.Label = label

	return strings.TrimSpace(text[pos+1:]), nil
}

func parseSection(text string, line *Line) (bool, error) {
	for _, kw := range sectionKeywords {
		if !strings.HasPrefix(text, kw.name) {
			continue
		}

		line.Kind = Section
		line.SectionName = kw.name
		line.SectionFlags = kw.flags
		if kw.flags != "" {
			return true, nil
		}

		operands, err := SplitOperands(text[len(kw.name):])
		if err != nil {
			return true, err
		}
		if operands.Len() != 2 {
			return true, fmt.Errorf("%w, expected: 2", ErrOperandCount)
		}
		line.SectionName = operands.Get(0)
		if len(line.SectionName) > MaxNameLength {
			return true, ErrNameTooLong
		}
		line.SectionFlags = operands.Get(1)
		return true, nil
	}
	return false, nil
}

func parseDirective(text string, line *Line) (bool, error) {
	for _, kw := range directiveKeywords {
		if !strings.HasPrefix(text, kw.name) {
			continue
		}

		line.Kind = Directive
		line.Directive = kw.directive

		operands, err := SplitOperands(text[len(kw.name):])
		if err != nil {
			return true, err
		}
		return true, parseDirectiveOperands(operands, line)
	}
	return false, nil
}

func parseDirectiveOperands(operands Operands, line *Line) error {
	var err error

	switch line.Directive {
	case Byte, Word:
		line.Operands = operands.All()

	case Skip, Align:
		line.Value, err = parseLiteral(operands.Get(0))

	case Equ:
		if operands.Get(1) == "" {
			return ErrMissingParameter
		}
		line.Symbol = operands.Get(0)
		if line.Value, err = parseLiteral(operands.Get(1)); err != nil {
			return err
		}
		if len(line.Symbol) > MaxNameLength {
			return ErrNameTooLong
		}

	case Extern, Global:
		if operands.Len() != 1 {
			return fmt.Errorf("%w, expected: 1", ErrOperandCount)
		}
		line.Symbol = operands.Get(0)
		if len(line.Symbol) > MaxNameLength {
			return ErrNameTooLong
		}
	}

	return err
}

func parseLiteral(token string) (int32, error) {
	value, err := number.Parse(token)
	if err != nil {
		return 0, fmt.Errorf("invalid value: %w", err)
	}
	return value, nil
}

// keyword returns the leading word of the text for error messages.
func keyword(text string) string {
	if pos := strings.IndexFunc(text, unicode.IsSpace); pos >= 0 {
		return text[:pos]
	}
	return text
}
