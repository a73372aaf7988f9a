package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"astrox_site/internal/scrollnav"
)

// LandingProps are the deployment-specific inputs of the landing page
type LandingProps struct {
	Page            PageConfig
	BackgroundVideo string
	MissionVideo    string
}

// LandingPage renders the whole site. The navbar is rendered from the
// controller's initial state so the first paint matches a fresh mount.
func LandingPage(props LandingProps) g.Node {
	return Layout(
		props.Page,
		Div(
			Class("min-h-screen bg-black text-white overflow-hidden"),
			BackgroundVideo(props.BackgroundVideo),
			Navbar(scrollnav.InitialState()),
			Main(
				Hero(),
				Mission(props.MissionVideo),
				TechnologyGrid(),
				Timeline(),
				Resources(),
				Contact(),
			),
			PageFooter(),
		),
	)
}

// ErrorPage renders a minimal page for HTTP errors
func ErrorPage(title, message string) g.Node {
	return Layout(
		PageConfig{Title: title + " - ASTRO_X"},
		Div(
			Class("min-h-screen bg-black text-white flex flex-col items-center justify-center px-6 text-center space-y-6"),
			Brand(brandIcon, "text-2xl font-bold"),
			H1(Class("text-5xl font-bold"), g.Text(title)),
			P(Class("text-gray-400 text-lg max-w-xl"), g.Text(message)),
			A(
				Href("/"),
				Class("px-6 py-2 bg-gradient-to-r from-orange-500 to-pink-500 rounded-lg hover:opacity-90 transition-opacity"),
				g.Text("Back to home"),
			),
		),
	)
}
