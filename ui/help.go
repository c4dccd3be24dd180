package ui

import (
	"strings"

	"navmenu/keys"

	"github.com/charmbracelet/lipgloss"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

var separator = " • "
var verticalSeparator = " │ "

// HelpState selects which bindings the help bar offers.
type HelpState int

const (
	// HelpBar is shown while focus is on a trigger bar or nowhere.
	HelpBar HelpState = iota
	// HelpPanel is shown while focus is inside an open panel.
	HelpPanel
)

var barHelpOptions = []keys.KeyName{keys.KeyEnter, keys.KeySpace, keys.KeyTab, keys.KeyShiftTab, keys.KeyEsc, keys.KeyQuit}
var panelHelpOptions = []keys.KeyName{keys.KeyEnter, keys.KeyCopy, keys.KeyTab, keys.KeyShiftTab, keys.KeyEsc, keys.KeyQuit}

// actionCount is the size of the leading action group in both option sets.
const actionCount = 2

// Help is the key hint line at the bottom of the page.
type Help struct {
	options []keys.KeyName
	width   int
	state   HelpState

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName
}

func NewHelp() *Help {
	return &Help{
		options: barHelpOptions,
		keyDown: -1,
	}
}

func (h *Help) Keydown(name keys.KeyName) {
	h.keyDown = name
}

func (h *Help) ClearKeydown() {
	h.keyDown = -1
}

// SetState updates the offered bindings.
func (h *Help) SetState(state HelpState) {
	h.state = state
	switch state {
	case HelpPanel:
		h.options = panelHelpOptions
	default:
		h.options = barHelpOptions
	}
}

// SetWidth sets the width the line is centered in.
func (h *Help) SetWidth(width int) {
	h.width = width
}

func (h *Help) String() string {
	var s strings.Builder

	for i, k := range h.options {
		binding := keys.GlobalkeyBindings[k]

		var (
			localActionStyle = actionGroupStyle
			localKeyStyle    = keyStyle
			localDescStyle   = descStyle
		)
		if h.keyDown == k {
			localActionStyle = localActionStyle.Underline(true)
			localKeyStyle = localKeyStyle.Underline(true)
			localDescStyle = localDescStyle.Underline(true)
		}

		if i < actionCount {
			s.WriteString(localActionStyle.Render(binding.Help().Key))
			s.WriteString(" ")
			s.WriteString(localActionStyle.Render(binding.Help().Desc))
		} else {
			s.WriteString(localKeyStyle.Render(binding.Help().Key))
			s.WriteString(" ")
			s.WriteString(localDescStyle.Render(binding.Help().Desc))
		}

		if i == len(h.options)-1 {
			continue
		}
		if i == actionCount-1 {
			s.WriteString(sepStyle.Render(verticalSeparator))
		} else {
			s.WriteString(sepStyle.Render(separator))
		}
	}

	return lipgloss.PlaceHorizontal(h.width, lipgloss.Center, s.String())
}
