package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"astrox_site/internal/models"
	"astrox_site/internal/scrollnav"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sized(t *testing.T) *Model {
	t.Helper()
	m := New("/asteroid-video.mp4")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if !m.ctrl.Mounted() {
		t.Fatalf("controller should be mounted after the first resize")
	}
	return m
}

func TestLayoutAnchors(t *testing.T) {
	doc := layout(80, "/asteroid-video.mp4")

	prev := -1
	for _, id := range models.NavigableSections() {
		line, ok := doc.anchors[id]
		if !ok {
			t.Fatalf("no anchor for %q", id)
		}
		if line <= prev {
			t.Errorf("anchor %q at line %d is not after the previous section", id, line)
		}
		prev = line
	}
	if doc.anchors[models.SectionHome] != 0 {
		t.Errorf("home should start at the top")
	}
}

func TestNavigateKeyScrollsToAnchorAndClosesMenu(t *testing.T) {
	m := sized(t)
	m.Update(key("m"))
	if !m.State().MenuOpen {
		t.Fatalf("menu should be open")
	}

	m.Update(key("3"))

	state := m.State()
	if state.ActiveSection != models.SectionTechnology {
		t.Errorf("active = %q; want technology", state.ActiveSection)
	}
	if state.MenuOpen {
		t.Errorf("menu should close on navigation")
	}
	if m.vp.YOffset != m.host.anchors[models.SectionTechnology] {
		t.Errorf("viewport at line %d; want %d", m.vp.YOffset, m.host.anchors[models.SectionTechnology])
	}
	if state.ScrollOffset != m.vp.YOffset {
		t.Errorf("controller offset %d does not follow viewport %d", state.ScrollOffset, m.vp.YOffset)
	}
}

func TestManualScrollKeepsActiveSection(t *testing.T) {
	m := sized(t)

	for i := 0; i < 5; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	}

	state := m.State()
	if state.ScrollOffset == 0 {
		t.Fatalf("page down should move the viewport")
	}
	if state.ScrollOffset != m.vp.YOffset {
		t.Errorf("offset %d; want %d", state.ScrollOffset, m.vp.YOffset)
	}
	if state.ActiveSection != models.SectionHome {
		t.Errorf("manual scrolling must not change the active section, got %q", state.ActiveSection)
	}
	if state.Navbar() != scrollnav.NavbarStyleFor(m.vp.YOffset) {
		t.Errorf("navbar style does not follow the offset")
	}
}

func TestMenuToggleTwice(t *testing.T) {
	m := sized(t)
	m.Update(key("m"))
	m.Update(key("m"))
	if m.State().MenuOpen {
		t.Fatalf("menu should be closed after two toggles")
	}
}

func TestQuitDisposesController(t *testing.T) {
	m := sized(t)

	_, cmd := m.Update(key("q"))

	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if m.ctrl.Mounted() {
		t.Fatalf("controller should be disposed on quit")
	}
	if len(m.host.listeners) != 0 {
		t.Fatalf("%d scroll listeners leaked", len(m.host.listeners))
	}
}

func TestView(t *testing.T) {
	m := New("/asteroid-video.mp4")
	if m.View() != "loading…" {
		t.Fatalf("unexpected view before sizing")
	}

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.View()
	for _, want := range []string{"ASTRO_X", "HOME", "RESOURCES", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}
}

func TestOverlay(t *testing.T) {
	got := overlay("a\nb", "1\n2\n3")
	if got != "a\nb\n3" {
		t.Fatalf("overlay = %q", got)
	}
}
