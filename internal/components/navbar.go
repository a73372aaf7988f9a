package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"astrox_site/internal/content"
	"astrox_site/internal/models"
	"astrox_site/internal/scrollnav"
	"astrox_site/internal/theme"
)

// DOM hooks shared with the browser binder
const (
	NavbarID      = "navbar"
	MobileMenuID  = "mobile-menu"
	MenuToggleID  = "menu-toggle"
	AttrNav       = "data-nav"
	AttrVariant   = "data-nav-variant"
	AttrMenuIcon  = "data-menu-icon"
	VariantDesk   = theme.VariantDesktop
	VariantMobile = theme.VariantMobile
	VariantCTA    = theme.VariantCTA
)

// Navbar renders the fixed navigation bar for the given state
func Navbar(state scrollnav.State) g.Node {
	items := content.NavItems()

	return Nav(
		ID(NavbarID),
		Class(theme.NavbarClasses(state.Navbar())),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			Div(
				Class("flex items-center justify-between h-20"),
				Brand(brandIcon, "text-2xl font-bold"),

				Div(
					Class("hidden md:flex items-center space-x-1"),
					g.Group(g.Map(items, func(item models.NavItem) g.Node {
						return NavButton(item, state.IsActive(item.ID))
					})),
				),

				menuToggle(state.MenuOpen),
			),

			Div(
				ID(MobileMenuID),
				Class(theme.MobileMenuClasses(state.MenuOpen)),
				Div(
					Class("py-4 space-y-2"),
					g.Group(g.Map(items, func(item models.NavItem) g.Node {
						return mobileNavItem(item, state.IsActive(item.ID))
					})),
				),
			),
		),
	)
}

// NavButton is a desktop navigation control with the sliding gradient hover
func NavButton(item models.NavItem, active bool) g.Node {
	return A(
		Href("#"+item.ID.String()),
		g.Attr(AttrNav, item.ID.String()),
		g.Attr(AttrVariant, VariantDesk),
		g.If(active, g.Attr("aria-current", "true")),
		Class(theme.NavButtonClasses(active)),
		Div(Class("absolute inset-0 w-0 bg-gradient-to-r from-orange-600/20 to-pink-600/20 transition-all duration-300 ease-out group-hover:w-full")),
		Div(Class("absolute top-0 left-0 w-1 h-0 bg-gradient-to-b from-orange-600 to-pink-600 transition-all duration-300 ease-out group-hover:h-full")),
		Div(Class("absolute bottom-0 right-0 w-1 h-0 bg-gradient-to-t from-orange-600 to-pink-600 transition-all duration-300 ease-out group-hover:h-full")),
		Span(Class("relative z-10 text-sm tracking-widest"), g.Text(item.Label)),
	)
}

func mobileNavItem(item models.NavItem, active bool) g.Node {
	return A(
		Href("#"+item.ID.String()),
		g.Attr(AttrNav, item.ID.String()),
		g.Attr(AttrVariant, VariantMobile),
		g.If(active, g.Attr("aria-current", "true")),
		Class(theme.MobileNavItemClasses(active)),
		g.Text(item.Label),
	)
}

// menuToggle renders both glyphs and hides the one that does not apply, so
// the client only has to flip visibility.
func menuToggle(open bool) g.Node {
	return Button(
		ID(MenuToggleID),
		Type("button"),
		Class("md:hidden p-2"),
		g.Attr("aria-controls", MobileMenuID),
		g.Attr("aria-expanded", boolAttr(open)),
		g.Attr("aria-label", "Toggle navigation"),
		menuGlyph(true, open),
		menuGlyph(false, open),
	)
}

func menuGlyph(slotOpen, open bool) g.Node {
	slot := theme.MenuSlot(slotOpen)
	return Span(
		g.Attr(AttrMenuIcon, slot),
		g.If(theme.MenuSlotHidden(slot, open), Class("hidden")),
		Icon(theme.MenuIcon(slotOpen), menuIcon),
	)
}

// Brand renders the rocket and the gradient wordmark
func Brand(icon IconStyle, textClass string) g.Node {
	return Div(
		Class("flex items-center space-x-2"),
		Icon("lucide:rocket", icon),
		Span(
			Class(textClass+" bg-clip-text text-transparent bg-gradient-to-r from-orange-500 to-pink-500"),
			g.Text(content.Brand),
		),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
