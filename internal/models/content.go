package models

// NavItem is a single entry of the navigation bar
type NavItem struct {
	ID    SectionID
	Label string
}

// MissionPoint is a highlighted paragraph of the mission section
type MissionPoint struct {
	Icon  string
	Title string
	Body  string
}

// Technology is a card of the technology showcase
type Technology struct {
	Icon        string
	Title       string
	Description string
}

// Milestone is an entry of the mission timeline
type Milestone struct {
	Year        string
	Title       string
	Description string
}

// Resource is a target mineral shown in the resources section.
// Concentration is a percentage in the range 0..100.
type Resource struct {
	Name          string
	Concentration int
	MarketValue   string
	Description   string
}

// ContactChannel is one of the ways to get in touch listed next to the form
type ContactChannel struct {
	Icon  string
	Title string
	Body  string
}

// FooterLink is a link rendered in the page footer
type FooterLink struct {
	Label string
	Href  string
}
