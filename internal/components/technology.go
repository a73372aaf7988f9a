package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"astrox_site/internal/content"
	"astrox_site/internal/models"
)

func TechnologyGrid() g.Node {
	return Section(
		ID(models.SectionTechnology.String()),
		Class("relative py-32 z-10 bg-zinc-900/50"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			H2(
				Class("text-4xl font-bold mb-16 text-center"),
				Span(
					Class("bg-clip-text text-transparent bg-gradient-to-r from-orange-400 to-pink-400"),
					g.Text(content.TechnologyTitle),
				),
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Group(g.Map(content.Technologies(), TechnologyCard)),
			),
		),
	)
}

func TechnologyCard(t models.Technology) g.Node {
	return Div(
		Class("relative group bg-zinc-900/50 p-6 rounded-lg border border-orange-500/10 hover:border-orange-500/30 transition-all duration-300"),
		Div(
			Class("flex items-center space-x-4 mb-4"),
			Icon(t.Icon, techIcon),
			H3(Class("text-xl font-semibold"), g.Text(t.Title)),
		),
		P(Class("text-gray-400"), g.Text(t.Description)),
		Div(Class("absolute bottom-0 left-0 w-full h-0.5 bg-gradient-to-r from-orange-500 to-pink-500 transform scale-x-0 group-hover:scale-x-100 transition-transform origin-left")),
	)
}
