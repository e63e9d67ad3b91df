package program

import "github.com/retroenv/twopass/internal/symbols"

// Location is a position inside a section.
type Location struct {
	Section int // index of the section, symbols.Undefined if no section is open
	Offset  int
}

// NewLocation returns a location that is not in a section.
func NewLocation() Location {
	return Location{Section: symbols.Undefined}
}

// InSection returns whether a section is open.
func (l *Location) InSection() bool {
	return l.Section >= 0
}

// NextSection opens the next section and resets the offset.
func (l *Location) NextSection() {
	l.Section++
	l.Offset = 0
}

// Advance moves the offset forward by the given number of bytes.
func (l *Location) Advance(size int) {
	l.Offset += size
}

// PaddingTo returns the number of bytes needed to align the offset to
// the given alignment.
func (l *Location) PaddingTo(alignment int) int {
	if rest := l.Offset % alignment; rest != 0 {
		return alignment - rest
	}
	return 0
}
