package models

// SectionID identifies a navigable block of the page. The value doubles as
// the HTML id attribute of the block, so it must stay stable and unique.
type SectionID string

const (
	SectionHome       SectionID = "home"
	SectionMission    SectionID = "mission"
	SectionTechnology SectionID = "technology"
	SectionTimeline   SectionID = "timeline"
	SectionResources  SectionID = "resources"
)

// SectionContact is rendered with an anchor but is not a navigation target.
const SectionContact SectionID = "contact"

// NavigableSections returns the navigation targets in page order
func NavigableSections() []SectionID {
	return []SectionID{
		SectionHome,
		SectionMission,
		SectionTechnology,
		SectionTimeline,
		SectionResources,
	}
}

// IsNavigable reports whether id is one of the navigation targets
func (id SectionID) IsNavigable() bool {
	for _, s := range NavigableSections() {
		if s == id {
			return true
		}
	}
	return false
}

// String returns the anchor id
func (id SectionID) String() string {
	return string(id)
}
