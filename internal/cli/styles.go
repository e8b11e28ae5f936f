// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (butter yellow).
	PrimaryColor = lipgloss.Color("#F7B32B")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3") // Light teal
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SubtitleStyle is used for secondary headings.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)

	// LabelStyle renders the left column of key/value listings.
	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(12)

	// ChipStyle is the base style of a flavor chip.
	ChipStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#1A1A1A"))
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	FlavorIcon  = "🍿"
	FilmIcon    = "🎬"
	ChartIcon   = "📊"
	FolderIcon  = "🗄️"
)

// familyColors tints flavor chips by catalog family.
var familyColors = map[string]lipgloss.Color{
	"Tone & Style":      "#F7B32B",
	"Themes":            "#B8B8FF",
	"Sci-Fi & Fantasy":  "#7FDBFF",
	"Action & Crime":    "#FF851B",
	"Drama & Character": "#DDA0DD",
	"Horror":            "#FF6B6B",
	"Mystery":           "#C0C0C0",
	"Setting":           "#90EE90",
	"Mood":              "#FFB6C1",
	"Animation & Anime": "#FFE66D",
	"Documentary":       "#95E1D3",
	"Western":           "#D2B48C",
	"Romance & Musical": "#FF9AA2",
	"Comedy":            "#FDFD96",
}

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle formats a title with the flavor icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(FlavorIcon + " " + title)
}

// RenderBox renders content in a styled box.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	boxContent := lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		content,
	)

	return BoxStyle.Render(boxContent)
}

// FlavorChip renders one flavor tinted by its family. An unknown family
// uses the primary color.
func FlavorChip(flavor, family string) string {
	color, ok := familyColors[family]
	if !ok {
		color = PrimaryColor
	}
	return ChipStyle.Background(color).Render(flavor)
}

// FlavorChips renders flavors in order, separated by a space. familyOf
// may be nil.
func FlavorChips(flavors []string, familyOf func(string) string) string {
	if len(flavors) == 0 {
		return SubtitleStyle.Render("(no flavors)")
	}
	chips := make([]string, len(flavors))
	for i, f := range flavors {
		family := ""
		if familyOf != nil {
			family = familyOf(f)
		}
		chips[i] = FlavorChip(f, family)
	}
	return strings.Join(chips, " ")
}

// KeyValue renders a label column followed by a value.
func KeyValue(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), value)
}
