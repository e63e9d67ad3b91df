package arch

// RelocationKind describes how a linker has to patch a relocated field.
type RelocationKind uint8

// Relocation kinds.
const (
	Relocation16 RelocationKind = iota
	Relocation8
	RelocationPC16
	RelocationPC8
)

// RelocationFor returns the relocation kind for a field of the given width.
func RelocationFor(pcRelative, short bool) RelocationKind {
	switch {
	case pcRelative && short:
		return RelocationPC8
	case pcRelative:
		return RelocationPC16
	case short:
		return Relocation8
	default:
		return Relocation16
	}
}

func (k RelocationKind) String() string {
	switch k {
	case Relocation8:
		return "R_8"
	case RelocationPC16:
		return "R_PC16"
	case RelocationPC8:
		return "R_PC8"
	default:
		return "R_16"
	}
}
