package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorSelected  = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	colorGreen     = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}
	colorYellow    = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	headerCountStyle = lipgloss.NewStyle().
				Foreground(colorSecondary)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	cardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorSelected).
				Padding(0, 1)

	headlineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	summaryStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	takeawayStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	tldrStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	timeStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	urlStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			PaddingLeft(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			PaddingLeft(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)

// categoryColors maps a category label to its badge color. Free-form labels
// outside the map fall back to the default.
var categoryColors = map[string]lipgloss.AdaptiveColor{
	"AI/ML":     {Light: "#1D4ED8", Dark: "#60A5FA"},
	"Security":  {Light: "#B91C1C", Dark: "#F87171"},
	"Quantum":   {Light: "#7E22CE", Dark: "#C084FC"},
	"CleanTech": {Light: "#15803D", Dark: "#4ADE80"},
	"Space":     {Light: "#4338CA", Dark: "#A5B4FC"},
	"Tech":      {Light: "#3D3D3D", Dark: "#D4D4D4"},
	"General":   {Light: "#C2410C", Dark: "#FB923C"},
}

var defaultCategoryColor = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#D4D4D4"}

// categoryColor returns the badge color token for a category label.
func categoryColor(category string) lipgloss.AdaptiveColor {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return defaultCategoryColor
}
