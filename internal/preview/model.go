// Package preview renders the site in a terminal, driven by the same
// navigation controller as the browser bundle.
package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"astrox_site/internal/content"
	"astrox_site/internal/models"
	"astrox_site/internal/scrollnav"
)

const helpText = "1-5 navigate · m menu · ↑/↓ pgup/pgdn scroll · q quit"

type Model struct {
	vp    viewport.Model
	host  *viewportHost
	ctrl  *scrollnav.Controller
	items []models.NavItem

	missionVideo string
	width        int
	height       int
	ready        bool
}

// New creates the preview. The controller is mounted on the first window
// size message and disposed when the program quits.
func New(missionVideo string) *Model {
	m := &Model{
		vp:           viewport.New(0, 0),
		items:        content.NavItems(),
		missionVideo: missionVideo,
	}
	m.host = newViewportHost(&m.vp)
	m.ctrl = scrollnav.New(m.host)
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if !m.ready {
			if err := m.ctrl.Mount(); err != nil {
				return m, tea.Quit
			}
			m.ready = true
		}

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			m.ctrl.Dispose()
			return m, tea.Quit
		case "m":
			m.ctrl.ToggleMenu()
		case "1", "2", "3", "4", "5":
			i, _ := strconv.Atoi(key)
			m.ctrl.NavigateTo(m.items[i-1].ID)
		default:
			m.vp, cmd = m.vp.Update(msg)
		}

	default:
		m.vp, cmd = m.vp.Update(msg)
	}

	m.host.sync()
	return m, cmd
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	doc := layout(width-2, m.missionVideo)
	m.host.anchors = doc.anchors

	m.vp.Width = width
	m.vp.Height = max(height-lipgloss.Height(m.header())-1, 1)
	m.vp.SetContent(doc.String())
}

func (m *Model) View() string {
	if !m.ready {
		return "loading…"
	}

	body := m.vp.View()
	if m.ctrl.State().MenuOpen {
		body = overlay(m.menu(), body)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		body,
		helpStyle.Render(helpText),
	)
}

// header renders the navbar. Its background follows the same threshold
// rule as the web navbar.
func (m *Model) header() string {
	state := m.ctrl.State()

	items := make([]string, 0, len(m.items))
	for i, item := range m.items {
		label := strconv.Itoa(i+1) + " " + item.Label
		if state.IsActive(item.ID) {
			items = append(items, navActive.Render(label))
		} else {
			items = append(items, navStyle.Render(label))
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center,
		brandStyle.Render("🚀 "+content.Brand),
		"  ",
		strings.Join(items, ""),
	)

	style := navbarClear
	if state.Navbar() == scrollnav.NavbarOpaque {
		style = navbarOpaque
	}
	return style.Width(max(m.width, 1)).Render(bar)
}

func (m *Model) menu() string {
	state := m.ctrl.State()

	lines := make([]string, 0, len(m.items))
	for i, item := range m.items {
		label := strconv.Itoa(i+1) + "  " + item.Label
		if state.IsActive(item.ID) {
			lines = append(lines, navActive.Render(label))
		} else {
			lines = append(lines, navStyle.Render(label))
		}
	}
	return menuStyle.Render(strings.Join(lines, "\n"))
}

// State exposes the controller state
func (m *Model) State() scrollnav.State {
	return m.ctrl.State()
}

// overlay draws top over the first lines of bottom
func overlay(top, bottom string) string {
	topLines := strings.Split(top, "\n")
	bottomLines := strings.Split(bottom, "\n")
	for i, line := range topLines {
		if i >= len(bottomLines) {
			bottomLines = append(bottomLines, line)
			continue
		}
		bottomLines[i] = line
	}
	return strings.Join(bottomLines, "\n")
}
