//go:build js && wasm

package dom

import (
	"syscall/js"

	"astrox_site/internal/components"
	"astrox_site/internal/models"
	"astrox_site/internal/scrollnav"
	"astrox_site/internal/theme"
)

// Binder mirrors controller state onto the server-rendered markup and routes
// clicks back into the controller.
type Binder struct {
	navbar   js.Value
	menu     js.Value
	toggle   js.Value
	navLinks []js.Value
}

func NewBinder(document js.Value) *Binder {
	b := &Binder{
		navbar: document.Call("getElementById", components.NavbarID),
		menu:   document.Call("getElementById", components.MobileMenuID),
		toggle: document.Call("getElementById", components.MenuToggleID),
	}

	links := document.Call("querySelectorAll", "["+components.AttrNav+"]")
	for i := 0; i < links.Length(); i++ {
		b.navLinks = append(b.navLinks, links.Index(i))
	}
	return b
}

// Apply renders s onto the page
func (b *Binder) Apply(s scrollnav.State) {
	setClass(b.navbar, theme.NavbarClasses(s.Navbar()))
	setClass(b.menu, theme.MobileMenuClasses(s.MenuOpen))

	if present(b.toggle) {
		b.toggle.Call("setAttribute", "aria-expanded", boolString(s.MenuOpen))
		icons := b.toggle.Call("querySelectorAll", "["+components.AttrMenuIcon+"]")
		for i := 0; i < icons.Length(); i++ {
			icon := icons.Index(i)
			slot := icon.Call("getAttribute", components.AttrMenuIcon).String()
			icon.Get("classList").Call("toggle", "hidden", theme.MenuSlotHidden(slot, s.MenuOpen))
		}
	}

	for _, link := range b.navLinks {
		id := models.SectionID(link.Call("getAttribute", components.AttrNav).String())
		active := s.IsActive(id)

		classes, ok := theme.NavItemClasses(link.Call("getAttribute", components.AttrVariant).String(), active)
		if !ok {
			continue
		}
		setClass(link, classes)

		if active {
			link.Call("setAttribute", "aria-current", "true")
		} else {
			link.Call("removeAttribute", "aria-current")
		}
	}
}

// Bind routes clicks on navigation controls and the menu button to ctrl.
// The returned function detaches every handler.
func (b *Binder) Bind(ctrl *scrollnav.Controller) func() {
	var releases []func()

	for _, link := range b.navLinks {
		id := models.SectionID(link.Call("getAttribute", components.AttrNav).String())
		releases = append(releases, listen(link, "click", func(ev js.Value) {
			ev.Call("preventDefault")
			ctrl.NavigateTo(id)
		}))
	}

	if present(b.toggle) {
		releases = append(releases, listen(b.toggle, "click", func(js.Value) {
			ctrl.ToggleMenu()
		}))
	}

	return func() {
		for _, release := range releases {
			release()
		}
	}
}

func listen(target js.Value, event string, fn func(ev js.Value)) func() {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	target.Call("addEventListener", event, cb)
	return func() {
		target.Call("removeEventListener", event, cb)
		cb.Release()
	}
}

func setClass(el js.Value, classes string) {
	if present(el) {
		el.Call("setAttribute", "class", classes)
	}
}

func present(v js.Value) bool {
	return !v.IsNull() && !v.IsUndefined()
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
