package scrollnav

import (
	"errors"
	"testing"

	"astrox_site/internal/models"
)

type fakeHost struct {
	offset    int
	anchors   map[models.SectionID]bool
	scrolled  []models.SectionID
	listeners int
	attached  int
	released  int
	listener  func()
}

func newFakeHost() *fakeHost {
	anchors := make(map[models.SectionID]bool)
	for _, id := range models.NavigableSections() {
		anchors[id] = true
	}
	return &fakeHost{anchors: anchors}
}

func (h *fakeHost) ScrollOffset() int { return h.offset }

func (h *fakeHost) ScrollIntoView(id models.SectionID) bool {
	if !h.anchors[id] {
		return false
	}
	h.scrolled = append(h.scrolled, id)
	return true
}

func (h *fakeHost) ListenScroll(fn func()) func() {
	h.attached++
	h.listeners++
	h.listener = fn
	return func() {
		h.released++
		h.listeners--
		h.listener = nil
	}
}

func (h *fakeHost) scrollTo(offset int) {
	h.offset = offset
	if h.listener != nil {
		h.listener()
	}
}

func TestInitialState(t *testing.T) {
	c := New(newFakeHost())
	s := c.State()
	if s.ScrollOffset != 0 || s.ActiveSection != models.SectionHome || s.MenuOpen {
		t.Fatalf("unexpected initial state %+v", s)
	}
	if s.Navbar() != NavbarTransparent {
		t.Fatalf("initial navbar = %s; want transparent", s.Navbar())
	}
}

func TestNavigateToEverySection(t *testing.T) {
	for _, id := range models.NavigableSections() {
		for _, menuOpen := range []bool{false, true} {
			host := newFakeHost()
			c := New(host)
			if menuOpen {
				c.ToggleMenu()
			}

			c.NavigateTo(id)

			s := c.State()
			if s.ActiveSection != id {
				t.Errorf("NavigateTo(%q): active = %q", id, s.ActiveSection)
			}
			if s.MenuOpen {
				t.Errorf("NavigateTo(%q) with menu open=%v left the menu open", id, menuOpen)
			}
			if len(host.scrolled) != 1 || host.scrolled[0] != id {
				t.Errorf("NavigateTo(%q) scrolled %v", id, host.scrolled)
			}
		}
	}
}

func TestNavigateToMissingAnchor(t *testing.T) {
	host := newFakeHost()
	delete(host.anchors, models.SectionTimeline)
	c := New(host)
	c.ToggleMenu()

	c.NavigateTo(models.SectionTimeline)

	if len(host.scrolled) != 0 {
		t.Fatalf("expected no scroll, got %v", host.scrolled)
	}
	s := c.State()
	if s.ActiveSection != models.SectionTimeline {
		t.Errorf("active = %q; want timeline", s.ActiveSection)
	}
	if s.MenuOpen {
		t.Errorf("menu should be closed")
	}
}

func TestNavbarThreshold(t *testing.T) {
	tests := []struct {
		offset int
		want   NavbarStyle
	}{
		{offset: 0, want: NavbarTransparent},
		{offset: 1, want: NavbarTransparent},
		{offset: 50, want: NavbarTransparent},
		{offset: 51, want: NavbarOpaque},
		{offset: 120, want: NavbarOpaque},
		{offset: 10000, want: NavbarOpaque},
	}

	for _, tt := range tests {
		host := newFakeHost()
		c := New(host)
		host.offset = tt.offset
		c.OnScroll()
		if got := c.State().Navbar(); got != tt.want {
			t.Errorf("offset %d: navbar = %s; want %s", tt.offset, got, tt.want)
		}
		if got := NavbarStyleFor(tt.offset); got != tt.want {
			t.Errorf("NavbarStyleFor(%d) = %s; want %s", tt.offset, got, tt.want)
		}
	}
}

func TestFractionalScrollPosition(t *testing.T) {
	tests := []struct {
		px         float64
		wantOffset int
		wantStyle  NavbarStyle
	}{
		{px: 0, wantOffset: 0, wantStyle: NavbarTransparent},
		{px: 49.5, wantOffset: 50, wantStyle: NavbarTransparent},
		{px: 50, wantOffset: 50, wantStyle: NavbarTransparent},
		{px: 50.4, wantOffset: 51, wantStyle: NavbarOpaque},
		{px: 50.6, wantOffset: 51, wantStyle: NavbarOpaque},
		{px: 51, wantOffset: 51, wantStyle: NavbarOpaque},
	}

	for _, tt := range tests {
		got := OffsetFromPixels(tt.px)
		if got != tt.wantOffset {
			t.Errorf("OffsetFromPixels(%v) = %d; want %d", tt.px, got, tt.wantOffset)
		}
		if style := NavbarStyleFor(got); style != tt.wantStyle {
			t.Errorf("scrollY %v: navbar = %s; want %s", tt.px, style, tt.wantStyle)
		}
	}
}

func TestOnScrollClampsNegativeOffset(t *testing.T) {
	host := newFakeHost()
	c := New(host)
	host.offset = -30
	c.OnScroll()
	if got := c.State().ScrollOffset; got != 0 {
		t.Fatalf("ScrollOffset = %d; want 0", got)
	}
}

func TestToggleMenuIsInvolution(t *testing.T) {
	for _, start := range []bool{false, true} {
		c := New(newFakeHost())
		if start {
			c.ToggleMenu()
		}
		c.ToggleMenu()
		if c.State().MenuOpen == start {
			t.Errorf("single toggle from %v did not flip", start)
		}
		c.ToggleMenu()
		if c.State().MenuOpen != start {
			t.Errorf("double toggle from %v ended at %v", start, c.State().MenuOpen)
		}
	}
}

func TestScrollScenarioKeepsActiveSection(t *testing.T) {
	host := newFakeHost()
	c := New(host)
	if err := c.Mount(); err != nil {
		t.Fatalf("Mount: %v", err)
	}

	host.scrollTo(120)

	s := c.State()
	if s.Navbar() != NavbarOpaque {
		t.Errorf("navbar = %s; want opaque", s.Navbar())
	}
	if s.ActiveSection != models.SectionHome {
		t.Errorf("active = %q; want home", s.ActiveSection)
	}
}

func TestMountAttachesOnceAndDisposeReleasesOnce(t *testing.T) {
	host := newFakeHost()
	c := New(host)

	if err := c.Mount(); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if err := c.Mount(); !errors.Is(err, ErrAlreadyMounted) {
		t.Fatalf("second Mount err = %v; want ErrAlreadyMounted", err)
	}
	if host.attached != 1 {
		t.Fatalf("attached %d listeners; want 1", host.attached)
	}
	if !c.Mounted() {
		t.Fatalf("expected controller to report mounted")
	}

	c.Dispose()
	c.Dispose()

	if host.released != 1 {
		t.Fatalf("released %d times; want 1", host.released)
	}
	if host.listeners != 0 {
		t.Fatalf("%d listeners still attached", host.listeners)
	}
	if c.Mounted() {
		t.Fatalf("expected controller to report unmounted")
	}
	if err := c.Mount(); !errors.Is(err, ErrDisposed) {
		t.Fatalf("Mount after Dispose err = %v; want ErrDisposed", err)
	}
}

func TestDisposeWithoutMount(t *testing.T) {
	host := newFakeHost()
	c := New(host)
	c.Dispose()
	if host.released != 0 {
		t.Fatalf("released a listener that was never attached")
	}
}

func TestOnChangeObserver(t *testing.T) {
	host := newFakeHost()
	var seen []State
	c := New(host, WithOnChange(func(s State) {
		seen = append(seen, s)
	}))

	c.ToggleMenu()
	host.offset = 80
	c.OnScroll()
	c.NavigateTo(models.SectionResources)

	if len(seen) != 3 {
		t.Fatalf("observer called %d times; want 3", len(seen))
	}
	if !seen[0].MenuOpen {
		t.Errorf("first notification should carry the open menu")
	}
	if seen[1].ScrollOffset != 80 {
		t.Errorf("second notification offset = %d; want 80", seen[1].ScrollOffset)
	}
	last := seen[2]
	if last.ActiveSection != models.SectionResources || last.MenuOpen || last.ScrollOffset != 80 {
		t.Errorf("unexpected final notification %+v", last)
	}
}

func TestNavbarStyleString(t *testing.T) {
	if NavbarOpaque.String() != "opaque" || NavbarTransparent.String() != "transparent" {
		t.Fatalf("unexpected style names %q %q", NavbarOpaque, NavbarTransparent)
	}
}
