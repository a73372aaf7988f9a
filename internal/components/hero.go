package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"astrox_site/internal/content"
	"astrox_site/internal/models"
)

func Hero() g.Node {
	return Section(
		ID(models.SectionHome.String()),
		Class("relative min-h-screen flex items-center justify-center z-10"),
		Div(
			Class("text-center max-w-4xl mx-auto px-6"),
			H1(
				Class("text-7xl md:text-8xl font-bold mb-8"),
				Span(
					Class("inline-block transform hover:scale-105 transition-transform cursor-default"),
					g.Text(content.HeroTitle),
				),
				Span(
					Class("block text-transparent bg-clip-text bg-gradient-to-r from-orange-400 to-pink-400 transform hover:scale-105 transition-transform cursor-default"),
					g.Text(content.HeroSubtitle),
				),
			),

			P(
				Class("text-xl text-gray-400 mb-12 max-w-2xl mx-auto leading-relaxed"),
				g.Text(content.HeroLead),
			),

			A(
				Href("#"+models.SectionMission.String()),
				g.Attr(AttrNav, models.SectionMission.String()),
				g.Attr(AttrVariant, VariantCTA),
				Class("group relative inline-block px-8 py-4 overflow-hidden"),
				Div(Class("absolute inset-0 w-full h-full transition-all duration-300 ease-out transform translate-x-0 -skew-x-12 bg-gradient-to-r from-orange-500 to-pink-500")),
				Div(Class("absolute inset-0 w-full h-full transition-all duration-300 ease-out transform skew-x-12 bg-gradient-to-r from-orange-700 to-pink-700 opacity-0 group-hover:opacity-100")),
				Div(
					Class("relative flex items-center justify-center space-x-2"),
					Span(g.Text(content.HeroCTA)),
					Icon("lucide:arrow-right", ctaIcon),
				),
			),
		),
	)
}
