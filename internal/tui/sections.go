package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Zachkp/portfolio/internal/content"
)

// renderSections lays out the scrollable part of the page at the given
// width.
func renderSections(width int) string {
	width = max(width, 20)
	body := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	section := func(title string) {
		b.WriteString(headingStyle.Render(title))
		b.WriteString("\n")
	}

	section("About Me")
	b.WriteString(body.Render(flatten(content.AboutMe)))
	b.WriteString("\n")

	section("Work Experience")
	writeEntries(&b, body, content.Work)

	section("Education")
	writeEntries(&b, body, content.Education)

	section("Projects")
	for _, p := range content.Projects {
		title := p.Title
		if p.Link != "" {
			title = ansi.SetHyperlink(p.Link) + title + ansi.ResetHyperlink()
		}
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n")
		b.WriteString(body.Render(flatten(p.Description)))
		b.WriteString("\n")
		if len(p.Tags) > 0 {
			b.WriteString(tagStyle.Render(strings.Join(p.Tags, " · ")))
			b.WriteString("\n")
		}
	}

	section("Certificates")
	for _, c := range content.Certificates {
		line := titleStyle.Render(c.Name) + metaStyle.Render(", "+c.Issuer+" ("+c.Date+")")
		b.WriteString(line)
		b.WriteString("\n")
	}

	section("Contact")
	b.WriteString(body.Render("Use the contact form on the website to get in touch."))
	b.WriteString("\n")

	return b.String()
}

func writeEntries(b *strings.Builder, body lipgloss.Style, entries []content.Entry) {
	for _, e := range entries {
		b.WriteString(titleStyle.Render(e.Title))
		b.WriteString("\n")
		b.WriteString(metaStyle.Render(e.Organization + " · " + e.StartDate + " to " + e.EndDate))
		b.WriteString("\n")
		for _, point := range e.BulletPoints {
			b.WriteString(body.Render("• " + point))
			b.WriteString("\n")
		}
	}
}

// flatten joins hard-wrapped catalog text into one paragraph so the
// terminal width decides where lines break.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
