package symbols

// Section is a named output region.
type Section struct {
	Name  string
	ID    int
	Flags string
}

// SectionTable contains all sections in declaration order.
type SectionTable struct {
	sections []Section
}

// NewSectionTable returns a new empty section table.
func NewSectionTable() *SectionTable {
	return &SectionTable{}
}

// Add appends a section.
func (t *SectionTable) Add(name string, id int, flags string) {
	t.sections = append(t.sections, Section{
		Name:  name,
		ID:    id,
		Flags: flags,
	})
}

// Get returns the section at the given index.
func (t *SectionTable) Get(index int) (Section, bool) {
	if index < 0 || index >= len(t.sections) {
		return Section{}, false
	}
	return t.sections[index], true
}

// All returns all sections in declaration order.
func (t *SectionTable) All() []Section {
	return t.sections
}

// Len returns the number of sections.
func (t *SectionTable) Len() int {
	return len(t.sections)
}
