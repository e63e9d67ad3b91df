package program

import (
	"strings"
)

// SectionInfo collects the machine code and relocations of a section
// while it is being emitted.
type SectionInfo struct {
	Location

	Name        string
	Relocations []Relocation

	hex strings.Builder
}

// NewSectionInfo returns the section info for the section with the given
// name and index.
func NewSectionInfo(name string, index int) *SectionInfo {
	return &SectionInfo{
		Location: Location{Section: index},
		Name:     name,
	}
}

// Append adds the hex digits of size bytes to the section contents.
func (s *SectionInfo) Append(hex string, size int) {
	s.hex.WriteString(hex)
	s.Advance(size)
}

// AddRelocations adds relocation entries to the section.
func (s *SectionInfo) AddRelocations(relocations ...Relocation) {
	s.Relocations = append(s.Relocations, relocations...)
}

// Hex returns the emitted contents as hex digit stream.
func (s *SectionInfo) Hex() string {
	return s.hex.String()
}
