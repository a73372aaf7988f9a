package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"astrox_site/internal/content"
	"astrox_site/internal/models"
)

const resourceBarWidth = 30

// document is the page laid out for a terminal of a given width
type document struct {
	lines   []string
	anchors map[models.SectionID]int
}

func (d document) String() string {
	return strings.Join(d.lines, "\n")
}

type section struct {
	id     models.SectionID
	render func(width int) []string
}

func sections(missionVideo string) []section {
	return []section{
		{id: models.SectionHome, render: renderHero},
		{id: models.SectionMission, render: func(w int) []string { return renderMission(w, missionVideo) }},
		{id: models.SectionTechnology, render: renderTechnology},
		{id: models.SectionTimeline, render: renderTimeline},
		{id: models.SectionResources, render: renderResources},
		{id: models.SectionContact, render: renderContact},
	}
}

// layout renders every section and records the line each one starts on
func layout(width int, missionVideo string) document {
	doc := document{anchors: make(map[models.SectionID]int)}
	for _, s := range sections(missionVideo) {
		doc.anchors[s.id] = len(doc.lines)
		doc.lines = append(doc.lines, s.render(width)...)
		doc.lines = append(doc.lines, "")
	}
	doc.lines = append(doc.lines, renderFooter(width)...)
	return doc
}

func wrap(style lipgloss.Style, width int, text string) []string {
	if width < 10 {
		width = 10
	}
	return strings.Split(style.Width(width).Render(text), "\n")
}

func renderHero(width int) []string {
	lines := []string{
		"",
		titleStyle.Render(content.HeroTitle),
		accentStyle.Bold(true).Render(content.HeroSubtitle),
		"",
	}
	lines = append(lines, wrap(bodyStyle, width, content.HeroLead)...)
	lines = append(lines, "", accentStyle.Render("[2] "+content.HeroCTA+" →"), "")
	return lines
}

func renderMission(width int, video string) []string {
	lines := []string{titleStyle.Render(content.MissionTitle)}
	lines = append(lines, wrap(bodyStyle, width, content.MissionLead)...)
	for _, p := range content.MissionPoints() {
		lines = append(lines, "", headingStyle.Render("◆ "+p.Title))
		lines = append(lines, wrap(bodyStyle, width, p.Body)...)
	}
	lines = append(lines, "", helpStyle.Render("▶ "+video))
	return lines
}

func renderTechnology(width int) []string {
	lines := []string{titleStyle.Render(content.TechnologyTitle)}
	for _, t := range content.Technologies() {
		lines = append(lines, "", headingStyle.Render("■ "+t.Title))
		lines = append(lines, wrap(bodyStyle, width, t.Description)...)
	}
	return lines
}

func renderTimeline(width int) []string {
	lines := []string{titleStyle.Render(content.TimelineTitle)}
	for _, m := range content.Timeline() {
		lines = append(lines, "", yearStyle.Render(m.Year)+"  "+headingStyle.Render(m.Title))
		lines = append(lines, wrap(bodyStyle, width, m.Description)...)
	}
	return lines
}

func renderResources(width int) []string {
	lines := []string{titleStyle.Render(content.ResourcesTitle)}
	for _, r := range content.Resources() {
		lines = append(lines,
			"",
			headingStyle.Render(r.Name),
			concentrationBar(r.Concentration)+fmt.Sprintf(" %d%%", r.Concentration),
			bodyStyle.Render("Market Value ")+yearStyle.Render(r.MarketValue),
		)
		lines = append(lines, wrap(bodyStyle, width, r.Description)...)
	}
	return lines
}

func concentrationBar(percent int) string {
	filled := percent * resourceBarWidth / 100
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", resourceBarWidth-filled))
}

func renderContact(width int) []string {
	lines := []string{titleStyle.Render(content.ContactTitle)}
	lines = append(lines, wrap(bodyStyle, width, content.ContactLead)...)
	for _, c := range content.ContactChannels() {
		lines = append(lines, "", headingStyle.Render(c.Title)+"  "+bodyStyle.Render(c.Body))
	}
	lines = append(lines, "", helpStyle.Render("Name · Email · Message"))
	return lines
}

func renderFooter(int) []string {
	links := make([]string, 0, len(content.FooterLinks()))
	for _, l := range content.FooterLinks() {
		links = append(links, l.Label)
	}
	return []string{
		helpStyle.Render(strings.Repeat("─", 20)),
		brandStyle.Render(content.Brand) + "  " + helpStyle.Render(strings.Join(links, " · ")),
	}
}
