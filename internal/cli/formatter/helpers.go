package formatter

import (
	"strings"

	"github.com/alexanderramin/casetrail/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if r := []rune(id); len(r) > 8 {
		id = string(r[:8])
	}
	return StyleDim.Render(id)
}

// OrDash returns s, or a dimmed "--" when s is blank.
func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return StyleDim.Render("--")
	}
	return s
}

// GenderMark returns the genogram symbol for g: a square for male, a circle
// for female, a diamond otherwise.
func GenderMark(g domain.Gender) string {
	switch g {
	case domain.GenderMale:
		return StyleBlue.Render("■")
	case domain.GenderFemale:
		return StylePurple.Render("●")
	default:
		return StyleDim.Render("◆")
	}
}

// Truncate shortens s to at most max runes, marking the cut with "…".
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
