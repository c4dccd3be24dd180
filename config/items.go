package config

import (
	"fmt"
	"os"

	"navmenu/menu"

	"gopkg.in/yaml.v3"
)

// itemsFile is the document layout of an items file.
type itemsFile struct {
	Items []menu.Item `yaml:"items"`
}

// DefaultItems returns the demo tabs.
func DefaultItems() []menu.Item {
	return []menu.Item{
		{
			ID:       "getting-started",
			Label:    "Getting Started",
			Columns:  1,
			MinWidth: 32,
			Children: []menu.Link{
				{ID: "installation", Label: "Installation", Description: "How to install Tailwind CSS"},
				{ID: "configuration", Label: "Configuration", Description: "How to configure Tailwind CSS"},
				{ID: "customization", Label: "Customization", Description: "How to customize Tailwind CSS"},
			},
		},
		{
			ID:      "components",
			Label:   "Components",
			Columns: 2,
			Children: []menu.Link{
				{ID: "button", Label: "Button", Description: "How to use Button component"},
				{ID: "input", Label: "Input", Description: "How to use Input component"},
				{ID: "select", Label: "Select", Description: "How to use Select component"},
				{ID: "modal", Label: "Modal", Description: "How to use Modal component"},
				{ID: "popover", Label: "Popover", Description: "How to use Popover component"},
				{ID: "dialog", Label: "Dialog", Description: "How to use Dialog component"},
			},
		},
		{
			ID:       "resources",
			Label:    "Resources",
			Columns:  1,
			MinWidth: 40,
			Children: []menu.Link{
				{ID: "resources-button", Label: "Button", Description: "How to use Button component"},
			},
		},
		{ID: "docs", Label: "Docs"},
	}
}

// LoadItems reads menu items from a YAML file.
func LoadItems(path string) ([]menu.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}
	return ParseItems(data)
}

// ParseItems decodes and validates a YAML items document.
func ParseItems(data []byte) ([]menu.Item, error) {
	var doc itemsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse items: %w", err)
	}
	if err := ValidateItems(doc.Items); err != nil {
		return nil, err
	}
	return doc.Items, nil
}

// ValidateItems checks that item ids are present and unique, and that link
// ids are unique within their item.
func ValidateItems(items []menu.Item) error {
	if len(items) == 0 {
		return fmt.Errorf("no menu items defined")
	}
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		if item.ID == "" {
			return fmt.Errorf("item %d: id cannot be empty", i)
		}
		if seen[item.ID] {
			return fmt.Errorf("item %q: duplicate id", item.ID)
		}
		seen[item.ID] = true
		if item.Label == "" {
			return fmt.Errorf("item %q: label cannot be empty", item.ID)
		}

		links := make(map[string]bool, len(item.Children))
		for j, link := range item.Children {
			if link.ID == "" {
				return fmt.Errorf("item %q: link %d: id cannot be empty", item.ID, j)
			}
			if links[link.ID] {
				return fmt.Errorf("item %q: link %q: duplicate id", item.ID, link.ID)
			}
			links[link.ID] = true
		}
	}
	return nil
}
