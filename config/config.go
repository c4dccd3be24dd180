package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"navmenu/log"
	"navmenu/menu"
	"navmenu/placement"

	"github.com/tidwall/jsonc"
)

const (
	ConfigFileName = "config.json"

	// Cell equivalents of the 12px offset and page padding.
	defaultOffset  = 1
	defaultPadding = 2
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".navmenu"), nil
}

// ViewportConfig describes one menu on the demo page.
type ViewportConfig struct {
	// Title is the caption shown above the menu.
	Title string `json:"title"`
	// Anchor is "container" or "trigger".
	Anchor string `json:"anchor"`
	// Placement is "bottom", "bottom left", "bottom right", "start" or "end".
	Placement string `json:"placement"`
}

// Config represents the application configuration
type Config struct {
	// Viewports lists the menus on the page, top to bottom.
	Viewports []ViewportConfig `json:"viewports"`
	// Offset is the gap in rows between the anchor and the panel.
	Offset int `json:"offset"`
	// Padding is the minimum distance in columns between the panel and the
	// terminal edges.
	Padding int `json:"padding"`
	// ClampVertical keeps the panel from running off the bottom edge.
	ClampVertical bool `json:"clamp_vertical"`
	// ItemsFile is an optional YAML file with the menu items.
	ItemsFile string `json:"items_file,omitempty"`
	// Animate enables panel transitions.
	Animate bool `json:"animate"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Viewports: []ViewportConfig{
			{Title: "Anchored to Container (Bottom Left)", Anchor: "container", Placement: "bottom left"},
			{Title: "Anchored to Trigger (Bottom Center)", Anchor: "trigger", Placement: "bottom"},
		},
		Offset:  defaultOffset,
		Padding: defaultPadding,
		Animate: true,
	}
}

// LoadConfig reads the config file, creating it with defaults when missing.
// A file that cannot be parsed is backed up and defaults are used.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	config, err := ParseConfig(data)
	if err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		// Backup the corrupted config before falling back to defaults
		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	return config
}

// ParseConfig decodes a config document. Comments and trailing commas are
// allowed. Fields missing from the document keep their defaults. Viewports
// from the document replace the default ones instead of being merged into them.
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	config.Viewports = nil
	if err := json.Unmarshal(jsonc.ToJSON(data), config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	config.Normalize()
	return config, nil
}

// Normalize replaces invalid values with defaults, logging a warning for each.
func (c *Config) Normalize() {
	if len(c.Viewports) == 0 {
		log.WarningLog.Printf("config defines no viewports, using defaults")
		c.Viewports = DefaultConfig().Viewports
	}
	for i := range c.Viewports {
		v := &c.Viewports[i]
		anchor, err := placement.ParseAnchor(v.Anchor)
		if err != nil {
			log.WarningLog.Printf("viewport %d: %v, using %q", i, err, anchor)
		}
		v.Anchor = string(anchor)

		p, err := placement.ParsePlacement(v.Placement)
		if err != nil {
			log.WarningLog.Printf("viewport %d: %v, using %q", i, err, p)
		}
		v.Placement = string(p)

		if v.Title == "" {
			v.Title = fmt.Sprintf("Menu %d", i+1)
		}
	}
	if c.Offset < 0 {
		log.WarningLog.Printf("offset %d is negative, using %d", c.Offset, defaultOffset)
		c.Offset = defaultOffset
	}
	if c.Padding < 0 {
		log.WarningLog.Printf("padding %d is negative, using %d", c.Padding, defaultPadding)
		c.Padding = defaultPadding
	}
}

// Items loads the configured items file, or the demo items when none is set.
func (c *Config) Items() ([]menu.Item, error) {
	if c.ItemsFile == "" {
		return DefaultItems(), nil
	}
	path := c.ItemsFile
	if !filepath.IsAbs(path) {
		if dir, err := GetConfigDir(); err == nil {
			path = filepath.Join(dir, path)
		}
	}
	items, err := LoadItems(path)
	if err != nil {
		return nil, fmt.Errorf("items file %s: %w", path, err)
	}
	return items, nil
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
