package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"astrox_site/internal/content"
	"astrox_site/internal/models"
)

func PageFooter() g.Node {
	return Footer(
		Class("relative z-10 border-t border-white/10 bg-black/30 backdrop-blur-sm"),
		Div(
			Class("max-w-7xl mx-auto px-6 py-8"),
			Div(
				Class("flex flex-col md:flex-row justify-between items-center space-y-4 md:space-y-0"),
				Brand(footerIcon, ""),
				Div(
					Class("flex space-x-6"),
					g.Group(g.Map(content.FooterLinks(), func(link models.FooterLink) g.Node {
						return A(
							Href(link.Href),
							Class("text-sm text-gray-400 hover:text-orange-400 transition-colors"),
							g.Text(link.Label),
						)
					})),
				),
			),
		),
	)
}
