package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds CLI configuration.
type Config struct {
	APIKey        string `env:"NOSH_API_KEY"`
	SearchURL     string `env:"NOSH_SEARCH_URL"`
	LocateURL     string `env:"NOSH_LOCATE_URL"`
	Language      string `env:"NOSH_LANG" envDefault:"en"`
	NoLocate      bool   `env:"NOSH_NO_LOCATE"`
	LogPath       string `env:"NOSH_LOG"`
	SearchEnabled bool   `env:"-"`
	ConfigDir     string `env:"-"`
}

// ParseFlags parses environment variables and command-line flags and
// returns configuration. Flags override environment values.
func ParseFlags(version string) (*Config, error) {
	// Load .env files first so env-based defaults work with flag parsing.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	var showVersion bool
	flag.StringVar(&config.APIKey, "api-key", config.APIKey, "Search provider API key (or set NOSH_API_KEY)")
	flag.StringVar(&config.Language, "lang", config.Language, "Startup language code: en, es, fr, ar")
	flag.BoolVar(&config.NoLocate, "no-locate", config.NoLocate, "Disable automatic location lookup")
	flag.StringVar(&config.LogPath, "log", config.LogPath, "Path to diagnostic log file (default: ~/.nosh/nosh.log)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("nosh " + version)
		os.Exit(0)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	config.ConfigDir = filepath.Join(home, ".nosh")
	if err := os.MkdirAll(config.ConfigDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if config.LogPath == "" {
		config.LogPath = filepath.Join(config.ConfigDir, "nosh.log")
	}

	settings, err := loadOnboardingSettings(config.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load onboarding settings: %w", err)
	}

	if shouldRunOnboarding(settings) {
		settings, err = runOnboarding(config.ConfigDir, config.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to run onboarding: %w", err)
		}
	}

	config.SearchEnabled = settings.SearchEnabled
	if config.APIKey == "" && settings.SearchEnabled {
		secureKey, err := loadSecureAPIKey(config.ConfigDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load stored API key: %w", err)
		}
		config.APIKey = strings.TrimSpace(secureKey)
	}
	if config.APIKey != "" {
		config.SearchEnabled = true
	}

	return config, nil
}
