package components

import (
	"strings"
	"testing"

	g "maragu.dev/gomponents"

	"astrox_site/internal/models"
	"astrox_site/internal/scrollnav"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func landing(t *testing.T) string {
	return render(t, LandingPage(LandingProps{
		Page:            PageConfig{WasmPath: "/wasm"},
		BackgroundVideo: "/video.mp4",
		MissionVideo:    "/asteroid-video.mp4",
	}))
}

func TestLandingPageExposesEveryAnchorOnce(t *testing.T) {
	html := landing(t)

	ids := append(models.NavigableSections(), models.SectionContact)
	for _, id := range ids {
		attr := `id="` + id.String() + `"`
		if n := strings.Count(html, attr); n != 1 {
			t.Errorf("%s appears %d times; want 1", attr, n)
		}
	}
}

func TestLandingPageReferencesMedia(t *testing.T) {
	html := landing(t)

	for _, want := range []string{
		`src="/video.mp4"`,
		`src="/asteroid-video.mp4"`,
		`src="/wasm/wasm_exec.js"`,
		`data-wasm="/wasm/astrox.wasm"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page is missing %s", want)
		}
	}
}

func TestLandingPageWithoutWasm(t *testing.T) {
	html := render(t, LandingPage(LandingProps{BackgroundVideo: "/video.mp4", MissionVideo: "/asteroid-video.mp4"}))
	if strings.Contains(html, "wasm_exec.js") {
		t.Fatalf("client bundle should not be referenced when WasmPath is empty")
	}
	if !strings.Contains(html, `href="#mission"`) {
		t.Fatalf("anchors must work without the client bundle")
	}
}

func TestNavbarInitialState(t *testing.T) {
	html := render(t, Navbar(scrollnav.InitialState()))

	if !strings.Contains(html, `class="fixed w-full z-50 transition-all duration-300 bg-transparent"`) {
		t.Errorf("initial navbar should be transparent")
	}
	if strings.Contains(html, "backdrop-blur-sm") {
		t.Errorf("initial navbar should not be blurred")
	}
	if !strings.Contains(html, "max-h-0") {
		t.Errorf("initial mobile menu should be collapsed")
	}
	if !strings.Contains(html, `aria-expanded="false"`) {
		t.Errorf("menu toggle should report collapsed")
	}
	// one desktop and one mobile entry for home
	if n := strings.Count(html, `aria-current="true"`); n != 2 {
		t.Errorf("aria-current appears %d times; want 2", n)
	}
}

func TestNavbarScrolledWithOpenMenu(t *testing.T) {
	state := scrollnav.State{
		ScrollOffset:  120,
		ActiveSection: models.SectionTimeline,
		MenuOpen:      true,
	}
	html := render(t, Navbar(state))

	if !strings.Contains(html, "bg-black/90 backdrop-blur-sm") {
		t.Errorf("scrolled navbar should be opaque")
	}
	if !strings.Contains(html, "max-h-96") {
		t.Errorf("open menu should be expanded")
	}
	if !strings.Contains(html, `aria-expanded="true"`) {
		t.Errorf("menu toggle should report expanded")
	}
	if !strings.Contains(html, `aria-current="true" class="relative overflow-hidden group px-6 py-2 bg-transparent text-orange-400"`) {
		t.Errorf("timeline desktop button should be marked active:\n%s", html)
	}
}

func TestResourceCardWidth(t *testing.T) {
	html := render(t, ResourceCard(models.Resource{Name: "Platinum", Concentration: 78, MarketValue: "High"}))
	if !strings.Contains(html, `style="width: 78%"`) {
		t.Fatalf("missing concentration bar width in %s", html)
	}
}

func TestContactFormDoesNotSubmit(t *testing.T) {
	html := render(t, ContactForm())

	if strings.Contains(html, "action=") {
		t.Errorf("contact form must not declare an action")
	}
	if !strings.Contains(html, `type="button"`) {
		t.Errorf("send button must not be a submit button")
	}
	for _, name := range []string{"name", "email", "message"} {
		if !strings.Contains(html, `name="`+name+`"`) {
			t.Errorf("missing %s field", name)
		}
	}
}

func TestIconStyleIsExplicit(t *testing.T) {
	tests := []struct {
		name  string
		style IconStyle
		want  string
	}{
		{name: "color and size", style: IconStyle{Color: "text-orange-400", Size: "h-8 w-8"}, want: `class="iconify inline-block h-8 w-8 text-orange-400"`},
		{name: "size only", style: IconStyle{Size: "h-6 w-6"}, want: `class="iconify inline-block h-6 w-6"`},
		{name: "bare", style: IconStyle{}, want: `class="iconify inline-block"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := render(t, Icon("lucide:cpu", tt.style))
			if !strings.Contains(html, tt.want) {
				t.Errorf("Icon = %s; want %s", html, tt.want)
			}
			if !strings.Contains(html, `data-icon="lucide:cpu"`) {
				t.Errorf("Icon lost its glyph name: %s", html)
			}
		})
	}
}

func TestErrorPage(t *testing.T) {
	html := render(t, ErrorPage("Page Not Found", "The page you're looking for doesn't exist."))
	if !strings.Contains(html, "Page Not Found") {
		t.Fatalf("error page is missing its title")
	}
}

func TestMenuToggleGlyphs(t *testing.T) {
	tests := []struct {
		name    string
		open    bool
		visible string
		hidden  string
	}{
		{
			name:    "closed shows the menu glyph",
			open:    false,
			visible: `<span data-menu-icon="closed"><span class="iconify inline-block h-6 w-6" data-icon="lucide:menu"`,
			hidden:  `<span data-menu-icon="open" class="hidden"><span class="iconify inline-block h-6 w-6" data-icon="lucide:x"`,
		},
		{
			name:    "open shows the close glyph",
			open:    true,
			visible: `<span data-menu-icon="open"><span class="iconify inline-block h-6 w-6" data-icon="lucide:x"`,
			hidden:  `<span data-menu-icon="closed" class="hidden"><span class="iconify inline-block h-6 w-6" data-icon="lucide:menu"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := render(t, menuToggle(tt.open))
			if !strings.Contains(html, tt.visible) {
				t.Errorf("missing visible glyph %q in %s", tt.visible, html)
			}
			if !strings.Contains(html, tt.hidden) {
				t.Errorf("missing hidden glyph %q in %s", tt.hidden, html)
			}
		})
	}
}
