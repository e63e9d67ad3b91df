// Package writer implements the textual object dump of an assembled program.
package writer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/retroenv/twopass/internal/number"
	"github.com/retroenv/twopass/internal/parser"
	"github.com/retroenv/twopass/internal/program"
	"github.com/retroenv/twopass/internal/symbols"
)

const (
	lineWidth    = 105
	offsetDigits = 5
	columnTabs   = "\t\t\t"
	relocTabs    = "\t\t"
	undefined    = "und"
)

const (
	symbolTableBanner  = "==============================================SYMBOL TABLE==============================================="
	symbolTableHeader  = "      Name            Section                     Offset                         G/L"
	sectionTableBanner = "==============================================SECTION TABLE=============================================="
	sectionTableHeader = "   Name              Section                   Flags"
	relocationHeader   = "      Offset            Type          Section         Symbol"
)

var (
	rule   = strings.Repeat("=", lineWidth)
	dashes = strings.Repeat("-", lineWidth)
)

// Writer writes the object dump of an assembled program.
type Writer struct {
	object *program.Object
	writer io.Writer
}

// New creates a new writer.
func New(object *program.Object, writer io.Writer) *Writer {
	return &Writer{
		object: object,
		writer: writer,
	}
}

// Write outputs the symbol table, the section table and the contents of
// every section followed by its relocation table.
func (w Writer) Write() error {
	buf := &strings.Builder{}

	w.writeSymbolTable(buf)
	w.writeSectionTable(buf)
	for _, block := range w.object.Blocks {
		w.writeBlock(buf, block)
	}
	buf.WriteString("\n\n\n")

	if _, err := io.WriteString(w.writer, buf.String()); err != nil {
		return fmt.Errorf("writing object dump: %w", err)
	}
	return nil
}

func (w Writer) writeSymbolTable(buf *strings.Builder) {
	buf.WriteString(symbolTableBanner + "\n")
	buf.WriteString(symbolTableHeader + "\n")
	buf.WriteString(dashes + "\n")

	for _, sym := range w.object.Symbols.All() {
		scope := "local"
		if sym.Global {
			scope = "global"
		}
		fmt.Fprintf(buf, "%s%s%s%s%0*x%s%s\n",
			sym.Label, nameTabs(sym.Label), sectionID(sym.Section), columnTabs, offsetDigits, sym.Offset, columnTabs, scope)
	}

	buf.WriteString(rule + "\n")
}

func (w Writer) writeSectionTable(buf *strings.Builder) {
	buf.WriteString(sectionTableBanner + "\n")
	buf.WriteString(sectionTableHeader + "\n")
	buf.WriteString(dashes + "\n")

	for _, sec := range w.object.Sections.All() {
		fmt.Fprintf(buf, "%s%s%d%s%s\n", sec.Name, nameTabs(sec.Name), sec.ID, columnTabs, sec.Flags)
	}

	buf.WriteString(rule)
}

func (w Writer) writeBlock(buf *strings.Builder, block *program.SectionInfo) {
	buf.WriteString("\n" + banner("======"+block.Name) + "\n")
	buf.WriteString(number.Format(block.Hex()))

	if len(block.Relocations) == 0 {
		return
	}

	buf.WriteString("\n" + banner("======.rel "+block.Name) + "\n")
	buf.WriteString(relocationHeader + "\n")
	buf.WriteString(dashes + "\n")

	for _, reloc := range block.Relocations {
		fmt.Fprintf(buf, "    %0*x%s%s%s%s%s%s\n",
			offsetDigits, reloc.Offset, relocTabs, reloc.Kind, relocTabs, sectionID(reloc.Section), relocTabs, reloc.Symbol)
	}

	buf.WriteString(rule)
}

// banner pads the title with '=' to the full line width.
func banner(title string) string {
	return (title + rule)[:lineWidth]
}

// nameTabs returns the tabs that align the column following a name of up
// to parser.MaxNameLength characters.
func nameTabs(name string) string {
	if len(name) > parser.MaxNameLength {
		return ""
	}
	return strings.Repeat("\t", (parser.MaxNameLength-len(name))/8+1)
}

func sectionID(section int) string {
	if section == symbols.Undefined {
		return undefined
	}
	return strconv.Itoa(section)
}
