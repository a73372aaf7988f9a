package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"astrox_site/internal/content"
	"astrox_site/internal/models"
)

func Timeline() g.Node {
	return Section(
		ID(models.SectionTimeline.String()),
		Class("relative py-32 z-10"),
		Div(
			Class("max-w-3xl mx-auto px-6"),
			H2(Class("text-4xl font-bold mb-16 text-center"), g.Text(content.TimelineTitle)),
			Div(
				Class("space-y-0"),
				g.Group(g.Map(content.Timeline(), TimelineItem)),
			),
		),
	)
}

func TimelineItem(m models.Milestone) g.Node {
	return Div(
		Class("relative pl-8 pb-12 group"),
		Div(Class("absolute left-0 top-0 w-0.5 h-full bg-orange-500/20 group-hover:bg-orange-500/40 transition-colors")),
		Div(Class("absolute left-0 top-0 w-2 h-2 rounded-full bg-orange-500 -translate-x-[3px]")),
		Div(Class("text-sm text-orange-400 mb-2"), g.Text(m.Year)),
		H4(Class("text-lg font-semibold mb-2"), g.Text(m.Title)),
		P(Class("text-gray-400"), g.Text(m.Description)),
	)
}
