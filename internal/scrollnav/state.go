package scrollnav

import (
	"math"

	"astrox_site/internal/models"
)

// OpaqueThreshold is the scroll offset past which the navbar turns opaque
const OpaqueThreshold = 50

// NavbarStyle is the derived look of the navigation bar
type NavbarStyle int

const (
	NavbarTransparent NavbarStyle = iota
	NavbarOpaque
)

func (s NavbarStyle) String() string {
	switch s {
	case NavbarOpaque:
		return "opaque"
	default:
		return "transparent"
	}
}

// NavbarStyleFor derives the navbar style from a scroll offset. The
// comparison is strict: an offset of exactly OpaqueThreshold is transparent.
func NavbarStyleFor(offset int) NavbarStyle {
	if offset > OpaqueThreshold {
		return NavbarOpaque
	}
	return NavbarTransparent
}

// OffsetFromPixels converts a fractional scroll position, as reported on
// zoomed or high-density displays, to an offset. It rounds up so that any
// position past OpaqueThreshold counts as past it.
func OffsetFromPixels(px float64) int {
	return int(math.Ceil(px))
}

// State is the ephemeral UI state of a page view
type State struct {
	ScrollOffset  int
	ActiveSection models.SectionID
	MenuOpen      bool
}

// InitialState is the state of a freshly mounted view
func InitialState() State {
	return State{
		ScrollOffset:  0,
		ActiveSection: models.SectionHome,
		MenuOpen:      false,
	}
}

// Navbar derives the navbar style for this state
func (s State) Navbar() NavbarStyle {
	return NavbarStyleFor(s.ScrollOffset)
}

// IsActive reports whether id is the selected navigation target
func (s State) IsActive(id models.SectionID) bool {
	return s.ActiveSection == id
}
