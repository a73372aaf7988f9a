package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"astrox_site/internal/content"
	"astrox_site/internal/models"
)

func Mission(videoSrc string) g.Node {
	return Section(
		ID(models.SectionMission.String()),
		Class("relative min-h-screen bg-zinc-950 overflow-hidden z-10"),
		Div(
			Class("max-w-7xl mx-auto px-6 py-24"),
			Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-16 items-center"),
				Div(
					Class("space-y-16"),
					Div(
						Class("space-y-2"),
						H2(
							Class("inline-block text-5xl font-bold bg-gradient-to-r from-orange-500 to-orange-400 bg-clip-text text-transparent"),
							g.Text(content.MissionTitle),
						),
						P(Class("text-xl text-zinc-300"), g.Text(content.MissionLead)),
					),
					g.Group(g.Map(content.MissionPoints(), missionPoint)),
				),

				Div(
					Class("relative aspect-square w-full"),
					Div(
						Class("absolute inset-0 rounded-2xl overflow-hidden"),
						LoopVideo(videoSrc),
					),
				),
			),
		),
	)
}

func missionPoint(p models.MissionPoint) g.Node {
	return Div(
		Class("space-y-6"),
		Div(
			Class("inline-flex items-center space-x-2"),
			Icon(p.Icon, missionIcon),
			H3(Class("text-2xl font-semibold text-zinc-100"), g.Text(p.Title)),
		),
		P(Class("text-zinc-400 leading-relaxed"), g.Text(p.Body)),
	)
}
