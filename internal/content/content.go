// Package content holds the static copy of the ASTRO_X page. Every accessor
// returns a fresh slice so callers can never mutate the shared records.
package content

import "astrox_site/internal/models"

// Brand is the wordmark shown in the navbar and footer
const Brand = "ASTRO_X"

// NavItems returns the navigation entries in page order
func NavItems() []models.NavItem {
	return []models.NavItem{
		{ID: models.SectionHome, Label: "HOME"},
		{ID: models.SectionMission, Label: "MISSION"},
		{ID: models.SectionTechnology, Label: "TECH"},
		{ID: models.SectionTimeline, Label: "TIMELINE"},
		{ID: models.SectionResources, Label: "RESOURCES"},
	}
}

// Hero copy
const (
	HeroTitle    = "BEYOND"
	HeroSubtitle = "REALITY"
	HeroLead     = "Push the boundaries of what's possible. Join us in revolutionizing space mining technology and shaping humanity's future among the stars."
	HeroCTA      = "EXPLORE OUR MISSION"
)

// Mission copy
const (
	MissionTitle = "OUR MISSION"
	MissionLead  = "We mine asteroids to extract valuable minerals in space at a lower cost and smaller carbon footprint than current terrestrial mining methods."
)

func MissionPoints() []models.MissionPoint {
	return []models.MissionPoint{
		{
			Icon:  "lucide:shield",
			Title: "Valuable Minerals (PGMs)",
			Body:  "Platinum group metals (PGMs) are integral to a variety of critical technologies, including catalytic converters, clean energy solutions, and medical instruments.",
		},
		{
			Icon:  "lucide:leaf",
			Title: "Carbon Footprint",
			Body:  "Traditional mining destroys over 50,000 acres of pristine land annually. Our space mining technology offers a zero-impact alternative.",
		},
	}
}

const TechnologyTitle = "Advanced Technology"

func Technologies() []models.Technology {
	return []models.Technology{
		{Icon: "lucide:cpu", Title: "AI Navigation", Description: "Advanced neural networks for autonomous asteroid approach and docking procedures."},
		{Icon: "lucide:container", Title: "Extraction Modules", Description: "Specialized equipment for zero-gravity mineral extraction and processing."},
		{Icon: "lucide:microscope", Title: "Analysis Labs", Description: "On-board facilities for real-time mineral composition analysis."},
		{Icon: "lucide:refresh-cw", Title: "Resource Recycling", Description: "Closed-loop systems for water and air recycling during long-term operations."},
		{Icon: "lucide:atom", Title: "Plasma Drilling", Description: "Revolutionary plasma-based drilling technology for efficient mineral extraction."},
		{Icon: "lucide:database", Title: "Quantum Computing", Description: "Real-time trajectory calculations and resource optimization."},
	}
}

const TimelineTitle = "Mission Timeline"

func Timeline() []models.Milestone {
	return []models.Milestone{
		{Year: "2024", Title: "Technology Development", Description: "Completion of core mining technology and AI navigation systems. Initial prototype testing in simulated environments."},
		{Year: "2025", Title: "First Test Mission", Description: "Launch of initial prototype for near-Earth asteroid approach testing and preliminary scanning operations."},
		{Year: "2026", Title: "Resource Extraction", Description: "Beginning of automated mineral extraction operations on selected asteroids. Implementation of real-time analysis systems."},
		{Year: "2027", Title: "Full Scale Operations", Description: "Deployment of multiple mining units across selected asteroids. Establishment of regular material return missions."},
	}
}

const ResourcesTitle = "Target Resources"

func Resources() []models.Resource {
	return []models.Resource{
		{Name: "Platinum", Concentration: 78, MarketValue: "High", Description: "Essential for hydrogen fuel cells and catalytic converters"},
		{Name: "Palladium", Concentration: 65, MarketValue: "Very High", Description: "Critical for electronic components and green technology"},
		{Name: "Iridium", Concentration: 45, MarketValue: "Critical", Description: "Used in spark plugs and crucial medical equipment"},
		{Name: "Rhodium", Concentration: 52, MarketValue: "Essential", Description: "Key component in solar panels and clean energy tech"},
	}
}

// Contact copy
const (
	ContactTitle = "Join Our Mission"
	ContactLead  = "Whether you're an investor, potential partner, or space enthusiast, we'd love to hear from you."
)

func ContactChannels() []models.ContactChannel {
	return []models.ContactChannel{
		{Icon: "lucide:users", Title: "Careers", Body: "Join our growing team of innovators"},
		{Icon: "lucide:target", Title: "Partnerships", Body: "Collaborate on future missions"},
	}
}

func FooterLinks() []models.FooterLink {
	return []models.FooterLink{
		{Label: "Privacy", Href: "#"},
		{Label: "Terms", Href: "#"},
		{Label: "Contact", Href: "#" + models.SectionContact.String()},
	}
}
