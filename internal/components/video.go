package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LoopVideo is a muted, autoplaying, looping video. The source is an opaque
// reference and is never inspected.
func LoopVideo(src string) g.Node {
	return Video(
		Class("w-full h-full object-cover"),
		g.Attr("autoplay"),
		g.Attr("muted"),
		g.Attr("loop"),
		g.Attr("playsinline"),
		Src(src),
	)
}

// BackgroundVideo fills the viewport behind every section
func BackgroundVideo(src string) g.Node {
	return Div(
		Class("fixed inset-0 z-0"),
		Div(Class("absolute inset-0 bg-black/50 z-10")),
		LoopVideo(src),
	)
}
