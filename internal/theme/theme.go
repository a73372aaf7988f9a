// Package theme holds the utility classes that change with navigation state.
// The server render and the browser binder both read them from here so the
// first paint and every later update agree.
package theme

import "astrox_site/internal/scrollnav"

const (
	navbarBase        = "fixed w-full z-50 transition-all duration-300"
	navbarOpaque      = "bg-black/90 backdrop-blur-sm"
	navbarTransparent = "bg-transparent"

	mobileMenuBase   = "md:hidden transition-all duration-300 overflow-hidden"
	mobileMenuOpen   = "max-h-96"
	mobileMenuClosed = "max-h-0"

	navButtonBase   = "relative overflow-hidden group px-6 py-2 bg-transparent"
	navButtonActive = "text-orange-400"

	mobileNavItemBase   = "block w-full text-left px-4 py-2 hover:text-orange-500 transition-colors"
	mobileNavItemIdle   = "text-gray-300"
	mobileNavItemActive = "text-orange-500"
)

// Icons of the mobile menu button
const (
	MenuIconOpen   = "lucide:x"
	MenuIconClosed = "lucide:menu"
)

// Glyph slots of the mobile menu button. Both are rendered and the one that
// does not match the menu state is hidden.
const (
	MenuSlotOpen   = "open"
	MenuSlotClosed = "closed"
)

// Variants of a navigation control
const (
	VariantDesktop = "desktop"
	VariantMobile  = "mobile"
	VariantCTA     = "cta"
)

// NavbarClasses returns the classes of the navigation bar
func NavbarClasses(style scrollnav.NavbarStyle) string {
	if style == scrollnav.NavbarOpaque {
		return navbarBase + " " + navbarOpaque
	}
	return navbarBase + " " + navbarTransparent
}

// MobileMenuClasses returns the classes of the collapsible mobile drawer
func MobileMenuClasses(open bool) string {
	if open {
		return mobileMenuBase + " " + mobileMenuOpen
	}
	return mobileMenuBase + " " + mobileMenuClosed
}

// MenuIcon returns the icon shown on the mobile menu button
func MenuIcon(open bool) string {
	if open {
		return MenuIconOpen
	}
	return MenuIconClosed
}

// MenuSlot names the glyph slot that is visible for the menu state
func MenuSlot(open bool) string {
	if open {
		return MenuSlotOpen
	}
	return MenuSlotClosed
}

// MenuSlotHidden reports whether the glyph in slot is hidden while the menu
// is open (or closed). Unknown slots are always hidden.
func MenuSlotHidden(slot string, open bool) bool {
	return slot != MenuSlot(open)
}

// NavButtonClasses returns the classes of a desktop navigation button
func NavButtonClasses(active bool) string {
	if active {
		return navButtonBase + " " + navButtonActive
	}
	return navButtonBase
}

// MobileNavItemClasses returns the classes of a mobile drawer entry
func MobileNavItemClasses(active bool) string {
	if active {
		return mobileNavItemBase + " " + mobileNavItemActive
	}
	return mobileNavItemBase + " " + mobileNavItemIdle
}

// NavItemClasses returns the classes of a navigation control of the given
// variant. ok is false for variants that do not track the active section,
// such as the hero call-to-action.
func NavItemClasses(variant string, active bool) (classes string, ok bool) {
	switch variant {
	case VariantDesktop:
		return NavButtonClasses(active), true
	case VariantMobile:
		return MobileNavItemClasses(active), true
	default:
		return "", false
	}
}
