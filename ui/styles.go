package ui

import "github.com/charmbracelet/lipgloss"

// UI chrome colors - structural elements
var (
	// Primary is the accent/focus color
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Border is the default border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// BorderFocus is the border color for focused elements
	BorderFocus = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for link descriptions
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints, headings and fading content
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// BackgroundSubtle is for the floating panel
	BackgroundSubtle = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#2a2a2a"}

	// BackgroundSelected is for the focused trigger or entry
	BackgroundSelected = lipgloss.AdaptiveColor{Light: "#dde4f0", Dark: "#3C3C4C"}

	// StatusError is for the status line when an action failed
	StatusError = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}
)

// Trigger affordances. Open and closed chevrons only appear on triggers
// that have a panel.
const (
	ChevronClosed = "▾"
	ChevronOpen   = "▴"
)

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
}{
	Primary:   lipgloss.NewStyle().Foreground(TextPrimary),
	Secondary: lipgloss.NewStyle().Foreground(TextSecondary),
	Muted:     lipgloss.NewStyle().Foreground(TextMuted),
	Error:     lipgloss.NewStyle().Foreground(StatusError),
}

// TriggerStyles are the states a trigger renders in.
var TriggerStyles = struct {
	Default lipgloss.Style
	Active  lipgloss.Style
	Focused lipgloss.Style
}{
	Default: lipgloss.NewStyle().Foreground(TextPrimary).Padding(0, 1),
	Active:  lipgloss.NewStyle().Foreground(Primary).Bold(true).Padding(0, 1),
	Focused: lipgloss.NewStyle().Foreground(Primary).Background(BackgroundSelected).Underline(true).Padding(0, 1),
}

// EntryStyles are used inside panels.
var EntryStyles = struct {
	Label       lipgloss.Style
	Focused     lipgloss.Style
	Description lipgloss.Style
}{
	Label:       lipgloss.NewStyle().Foreground(TextPrimary).Bold(true),
	Focused:     lipgloss.NewStyle().Foreground(Primary).Background(BackgroundSelected).Bold(true),
	Description: lipgloss.NewStyle().Foreground(TextSecondary),
}

// Spacing constants for consistent layout
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 4
)

// BarStyle creates the style of the trigger bar container
func BarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)
}

// PanelStyle creates the style of the floating panel box
func PanelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderFocus)
}

// HeadingStyle creates a style for menu section captions
func HeadingStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)
}
