package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"astrox_site/internal/content"
	"astrox_site/internal/models"
)

func Resources() g.Node {
	return Section(
		ID(models.SectionResources.String()),
		Class("relative py-24 z-10 bg-zinc-900/50"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			H2(Class("text-4xl font-bold mb-12 text-center"), g.Text(content.ResourcesTitle)),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-8"),
				g.Group(g.Map(content.Resources(), ResourceCard)),
			),
		),
	)
}

func ResourceCard(r models.Resource) g.Node {
	percentage := fmt.Sprintf("%d%%", r.Concentration)

	return Div(
		Class("bg-zinc-800/50 p-6 rounded-lg border border-orange-500/10 hover:border-orange-500/30 transition-all duration-300"),
		H3(Class("text-xl font-bold mb-4"), g.Text(r.Name)),
		Div(
			Class("space-y-4"),
			Div(
				Class("w-full bg-zinc-700/50 rounded-full h-2"),
				Div(
					Class("bg-gradient-to-r from-orange-500 to-pink-500 h-2 rounded-full transition-all duration-500 ease-out"),
					g.Attr("style", "width: "+percentage),
				),
			),
			statRow("Concentration", percentage),
			statRow("Market Value", r.MarketValue),
			P(Class("text-sm text-gray-400 mt-2"), g.Text(r.Description)),
		),
	)
}

func statRow(label, value string) g.Node {
	return Div(
		Class("flex justify-between text-sm"),
		Span(Class("text-gray-400"), g.Text(label)),
		Span(Class("text-orange-400"), g.Text(value)),
	)
}
