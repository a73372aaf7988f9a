package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	// WasmPath is the URL prefix of the client bundle. Empty disables it.
	WasmPath string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "ASTRO_X - Space Mining"
	}

	if config.Description == "" {
		config.Description = "We mine asteroids to extract valuable minerals in space at a lower cost and smaller carbon footprint."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Script(Src("https://cdn.tailwindcss.com")),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				g.Group(content),

				g.If(config.WasmPath != "",
					g.Group([]g.Node{
						Script(Src(config.WasmPath+"/wasm_exec.js")),
						Script(Src("/static/js/boot.js"), g.Attr("data-wasm", config.WasmPath+"/astrox.wasm")),
					}),
				),
			),
		),
	})
}
