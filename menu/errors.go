package menu

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMenu is raised when a menu component is built without its menu.
	ErrNoMenu = errors.New("component must be used within a navigation menu")
	// ErrNoItem is raised when a trigger or content is built without its item.
	ErrNoItem = errors.New("component must be used within a navigation menu item")
)

// Require panics if m is nil. Components call it at construction so wiring
// mistakes surface immediately instead of as a silently dead widget.
func Require(m *Menu, component string) *Menu {
	if m == nil {
		panic(fmt.Errorf("%s: %w", component, ErrNoMenu))
	}
	return m
}

// RequireItem panics if s is nil or detached from a menu.
func RequireItem(s *ItemScope, component string) *ItemScope {
	if s == nil {
		panic(fmt.Errorf("%s: %w", component, ErrNoItem))
	}
	if s.menu == nil {
		panic(fmt.Errorf("%s: %w", component, ErrNoMenu))
	}
	return s
}
