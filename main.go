package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"navmenu/app"
	"navmenu/config"
	"navmenu/log"
	"navmenu/menu"
	"navmenu/placement"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version       = "0.1.0"
	itemsFlag     string
	anchorFlag    string
	placementFlag string
	noAnimateFlag bool
	rootCmd       = &cobra.Command{
		Use:   "navmenu",
		Short: "navmenu - A navigation menu with hover panels for the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize(false)
			defer log.Close()

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("navmenu must be run in a terminal")
			}

			cfg := config.LoadConfig()
			if err := applyFlags(cfg); err != nil {
				return err
			}

			items, err := loadItems(cfg)
			if err != nil {
				return err
			}
			return app.Run(ctx, cfg, items)
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of navmenu",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("navmenu version %s\n", version)
		},
	}
)

// applyFlags overrides the loaded config. --anchor and --placement reduce the
// page to a single menu so one configuration can be tried in isolation.
func applyFlags(cfg *config.Config) error {
	if noAnimateFlag {
		cfg.Animate = false
	}
	if anchorFlag == "" && placementFlag == "" {
		return nil
	}
	if anchorFlag != "" {
		if _, err := placement.ParseAnchor(anchorFlag); err != nil {
			return err
		}
	}
	if placementFlag != "" {
		if _, err := placement.ParsePlacement(placementFlag); err != nil {
			return err
		}
	}

	vc := config.ViewportConfig{Anchor: "container", Placement: "bottom left"}
	if len(cfg.Viewports) > 0 {
		vc = cfg.Viewports[0]
	}
	if anchorFlag != "" {
		vc.Anchor = anchorFlag
	}
	if placementFlag != "" {
		vc.Placement = placementFlag
	}
	vc.Title = fmt.Sprintf("Anchored to %s (%s)", vc.Anchor, vc.Placement)
	cfg.Viewports = []config.ViewportConfig{vc}
	return nil
}

// loadItems prefers the --items file over the one named in the config.
func loadItems(cfg *config.Config) ([]menu.Item, error) {
	if itemsFlag != "" {
		items, err := config.LoadItems(itemsFlag)
		if err != nil {
			return nil, fmt.Errorf("items file %s: %w", itemsFlag, err)
		}
		return items, nil
	}
	return cfg.Items()
}

func init() {
	rootCmd.Flags().StringVarP(&itemsFlag, "items", "i", "",
		"YAML file with the menu items (overrides items_file in the config)")
	rootCmd.Flags().StringVarP(&anchorFlag, "anchor", "a", "",
		"Show a single menu anchored to 'container' or 'trigger'")
	rootCmd.Flags().StringVarP(&placementFlag, "placement", "p", "",
		"Show a single menu with the panel at 'bottom', 'bottom left', 'bottom right', 'start' or 'end'")
	rootCmd.Flags().BoolVar(&noAnimateFlag, "no-animate", false, "Disable panel transitions")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
