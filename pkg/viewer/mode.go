package viewer

// ViewMode selects which projection and wall representation is active
type ViewMode int

const (
	// ModePlan is the top-down orthographic view with flat walls
	ModePlan ViewMode = iota
	// ModePerspective is the orbiting 3D view with extruded walls
	ModePerspective
)

// ModeFor maps the embedding application's is2D flag to a view mode
func ModeFor(is2D bool) ViewMode {
	if is2D {
		return ModePlan
	}
	return ModePerspective
}

// Is2D reports whether the mode is the planar projection
func (m ViewMode) Is2D() bool {
	return m == ModePlan
}

func (m ViewMode) String() string {
	switch m {
	case ModePlan:
		return "plan"
	case ModePerspective:
		return "perspective"
	default:
		return "unknown"
	}
}
