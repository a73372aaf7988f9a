package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"astrox_site/internal/content"
	"astrox_site/internal/models"
)

const fieldClass = "w-full bg-zinc-800/50 border border-orange-500/20 rounded-lg px-4 py-2 focus:outline-none focus:border-orange-500/50"

func Contact() g.Node {
	return Section(
		ID(models.SectionContact.String()),
		Class("relative py-24 z-10"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-16"),
				Div(
					Class("space-y-8"),
					H2(
						Class("text-4xl font-bold"),
						Span(
							Class("bg-clip-text text-transparent bg-gradient-to-r from-orange-400 to-pink-400"),
							g.Text(content.ContactTitle),
						),
					),
					P(Class("text-gray-400 text-lg"), g.Text(content.ContactLead)),
					Div(
						Class("space-y-4"),
						g.Group(g.Map(content.ContactChannels(), contactChannel)),
					),
				),
				Div(
					Class("bg-zinc-900/50 p-8 rounded-lg border border-orange-500/10"),
					ContactForm(),
				),
			),
		),
	)
}

func contactChannel(c models.ContactChannel) g.Node {
	return Div(
		Class("flex items-center space-x-4"),
		Div(
			Class("w-12 h-12 rounded-lg bg-orange-500/20 flex items-center justify-center"),
			Icon(c.Icon, contactIcon),
		),
		Div(
			H3(Class("font-semibold"), g.Text(c.Title)),
			P(Class("text-gray-400"), g.Text(c.Body)),
		),
	)
}

// ContactForm collects a name, an email and a message. It is not wired to
// any endpoint, so the button does not submit.
func ContactForm() g.Node {
	return g.El("form",
		Class("space-y-6"),
		formField("contact-name", "Name", Input(ID("contact-name"), Name("name"), Type("text"), Class(fieldClass))),
		formField("contact-email", "Email", Input(ID("contact-email"), Name("email"), Type("email"), Class(fieldClass))),
		formField("contact-message", "Message", Textarea(ID("contact-message"), Name("message"), g.Attr("rows", "4"), Class(fieldClass))),
		Button(
			Type("button"),
			Class("w-full bg-gradient-to-r from-orange-500 to-pink-500 text-white py-3 rounded-lg hover:opacity-90 transition-opacity"),
			g.Text("Send Message"),
		),
	)
}

func formField(id, label string, control g.Node) g.Node {
	return Div(
		Class("space-y-2"),
		Label(g.Attr("for", id), Class("text-sm text-gray-400"), g.Text(label)),
		control,
	)
}
