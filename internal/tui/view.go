package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/viniwas/newsletter-api/internal/model"
)

func relativeTime(t time.Time) string {
	if t.IsZero() {
		return "unknown time"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func renderBadge(category string) string {
	if category == "" {
		category = "General"
	}
	return lipgloss.NewStyle().
		Foreground(categoryColor(category)).
		Bold(true).
		Render("[" + category + "]")
}

func renderCard(a model.Article, selected, current bool, width int) string {
	if width < 20 {
		width = 60
	}
	inner := width - 4

	indicator := "( )"
	if selected {
		indicator = lipgloss.NewStyle().Foreground(colorSelected).Bold(true).Render("(x)")
	}

	var b strings.Builder
	b.WriteString(indicator + " " + renderBadge(a.Category))
	b.WriteString("\n")
	b.WriteString(headlineStyle.Render(truncateStr(a.Headline, inner)))
	if a.Summary != "" {
		b.WriteString("\n" + summaryStyle.Render(truncateStr(a.Summary, inner)))
	}
	if a.KeyTakeaway != "" {
		b.WriteString("\n" + takeawayStyle.Render(truncateStr("Key takeaway: "+a.KeyTakeaway, inner)))
	}
	if a.TLDR != "" {
		b.WriteString("\n" + tldrStyle.Render(truncateStr("TL;DR: "+a.TLDR, inner)))
	}
	footer := timeStyle.Render(relativeTime(a.CreatedTime))
	if a.URL != "" {
		footer += "  " + urlStyle.Render(truncateStr(a.URL, inner-20))
	}
	b.WriteString("\n" + footer)

	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}
	card := style.Width(width - 2).Render(b.String())
	if current {
		cursor := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render(">")
		lines := strings.Split(card, "\n")
		for i := range lines {
			if i == 0 {
				lines[i] = cursor + " " + lines[i]
			} else {
				lines[i] = "  " + lines[i]
			}
		}
		return strings.Join(lines, "\n")
	}
	return "  " + strings.Join(strings.Split(card, "\n"), "\n  ")
}

func renderEmptyState(width, height int) string {
	msg := lipgloss.JoinVertical(lipgloss.Center,
		headlineStyle.Render("No Articles Yet"),
		"",
		summaryStyle.Render("Articles will appear here once your automation"),
		summaryStyle.Render("runs and processes new content."),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
