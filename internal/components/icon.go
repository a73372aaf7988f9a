package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// IconStyle is the look of a single icon instance. It is fixed when the icon
// is built; icons are never restyled after the fact.
type IconStyle struct {
	Color string
	Size  string
}

func (s IconStyle) classes() string {
	parts := []string{"iconify", "inline-block"}
	if s.Size != "" {
		parts = append(parts, s.Size)
	}
	if s.Color != "" {
		parts = append(parts, s.Color)
	}
	return strings.Join(parts, " ")
}

// Icon renders an iconify glyph such as "lucide:rocket"
func Icon(name string, style IconStyle) g.Node {
	return Span(
		Class(style.classes()),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

// Icon styles used across the page
var (
	brandIcon   = IconStyle{Color: "text-orange-500", Size: "h-8 w-8"}
	footerIcon  = IconStyle{Color: "text-orange-400", Size: "h-5 w-5"}
	menuIcon    = IconStyle{Size: "h-6 w-6"}
	missionIcon = IconStyle{Color: "text-orange-500", Size: "w-6 h-6"}
	techIcon    = IconStyle{Color: "text-orange-400", Size: "h-8 w-8"}
	contactIcon = IconStyle{Color: "text-orange-400", Size: "h-6 w-6"}
	ctaIcon     = IconStyle{Size: "h-5 w-5 group-hover:translate-x-1 transition-transform"}
)
