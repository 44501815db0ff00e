package main

import (
	"fmt"
	"os"

	"github.com/safebite/safebite/internal/ioconfig"
	"github.com/safebite/safebite/internal/iologger"
	pkgconfig "github.com/safebite/safebite/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *pkgconfig.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "safebite",
		Short: "SafeBite matches product ingredients against your avoid-list",
		Long: `SafeBite scans packaged-food products for ingredients a user wants to
avoid. It keeps a multilingual ingredient and additive taxonomy in
memory, parses free-text ingredient declarations and cross-references
them with per-user avoid-lists.

Commands:
  - build: parse the taxonomy source files and write the JSON caches
  - serve: run the HTTP detection API
  - scan:  look up one barcode and print a detection report

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (SAFEBITE_*)
  3. Config file (~/.config/safebite/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (server.port becomes
  SAFEBITE_SERVER_PORT).

  Examples:
    SAFEBITE_SERVER_PORT            HTTP listen port
    SAFEBITE_PROFILE_REDIS_ADDR     Redis address of the profile store
    SAFEBITE_PRODUCT_FOODREPO_KEY   FoodRepo API token
    SAFEBITE_LOG_LEVEL              Log level (debug/info/warn/error)

  See 'go doc github.com/safebite/safebite/pkg/config' for the full
  list.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-generate config file on first run if it doesn't exist
			if cfgFile == "" {
				exists, err := ioconfig.ConfigFileExists()
				if err != nil {
					return fmt.Errorf("failed to check config file: %w", err)
				}
				if !exists {
					generatedPath, err := ioconfig.GenerateDefaultConfig()
					if err != nil {
						// Only warn, don't fail - can use defaults
						fmt.Printf("Warning: could not generate config file: %v\n", err)
					} else {
						fmt.Printf("Generated default config at: %s\n", generatedPath)
					}
				}
			}

			result, err := ioconfig.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg = result.Config

			logDir := ""
			if home, homeErr := os.UserHomeDir(); homeErr == nil {
				logDir = pkgconfig.LogDir(home)
				if err := os.MkdirAll(logDir, 0755); err != nil {
					return fmt.Errorf("failed to create log directory: %w", err)
				}
			}
			if err := iologger.Init(logDir, cfg.Log, false); err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}

			switch result.Source {
			case "file":
				fmt.Printf("Using config from: %s\n", result.SourcePath)
			case "defaults+env":
				fmt.Println("Using built-in defaults with environment variable overrides")
			case "defaults":
				fmt.Println("Using built-in defaults (no config file)")
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ~/.config/safebite/config.yaml)")

	rootCmd.AddCommand(getBuildCmd())
	rootCmd.AddCommand(getServeCmd())
	rootCmd.AddCommand(getScanCmd())

	return rootCmd
}

// getConfig returns the loaded configuration (for use in subcommands).
func getConfig() *pkgconfig.Config {
	return cfg
}
