package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/casetrail/internal/domain"
	"github.com/alexanderramin/casetrail/internal/timeline"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryStyle returns the color used for a broad timeline category.
func CategoryStyle(c timeline.Category) lipgloss.Style {
	switch c {
	case timeline.CategoryPersonal:
		return StylePurple
	case timeline.CategoryFamilyUnit:
		return StyleGreen
	case timeline.CategoryCaseActions:
		return StyleBlue
	case timeline.CategoryDocumentation:
		return StyleYellow
	default:
		return StyleDim
	}
}

// CategoryBadge renders the category's display label in its color.
func CategoryBadge(c timeline.Category) string {
	return CategoryStyle(c).Render(c.Label())
}

// CaseStatusPill returns a colored indicator for a case status.
func CaseStatusPill(status domain.CaseStatus) string {
	switch status {
	case domain.CaseOpen, domain.CaseActive:
		return StyleGreen.Render("● " + string(status))
	case domain.CaseInProgress:
		return StyleBlue.Render("● " + string(status))
	case domain.CasePendingReview:
		return StyleYellow.Render("○ " + string(status))
	case domain.CaseClosed:
		return StyleDim.Render("✔ " + string(status))
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
