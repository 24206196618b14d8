package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Engine struct {
		// DefaultMatchLimit bounds similarity results when the caller
		// does not supply a limit.
		DefaultMatchLimit int `yaml:"default_match_limit" env:"ENGINE_DEFAULT_MATCH_LIMIT"`
		// MaxMatchLimit caps the caller-supplied limit.
		MaxMatchLimit int `yaml:"max_match_limit" env:"ENGINE_MAX_MATCH_LIMIT"`
		// SeedDemoData loads the built-in demo dataset at startup.
		SeedDemoData bool `yaml:"seed_demo_data" env:"ENGINE_SEED_DEMO_DATA"`
		// ReferralBaseURL is the prefix for generated referral links.
		ReferralBaseURL string `yaml:"referral_base_url" env:"ENGINE_REFERRAL_BASE_URL"`
		// ReferralBonusPoints is awarded to the referrer when a
		// referral completes.
		ReferralBonusPoints int `yaml:"referral_bonus_points" env:"ENGINE_REFERRAL_BONUS_POINTS"`
	} `yaml:"engine"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; defaults plus environment cover the rest
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Engine.DefaultMatchLimit = 5
	config.Engine.MaxMatchLimit = 50
	config.Engine.SeedDemoData = true
	config.Engine.ReferralBaseURL = "https://campusconnect.app/referral"
	config.Engine.ReferralBonusPoints = 50

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Engine.DefaultMatchLimit < 1 {
		return fmt.Errorf("default match limit must be at least 1")
	}

	if config.Engine.MaxMatchLimit < config.Engine.DefaultMatchLimit {
		return fmt.Errorf("max match limit must not be below the default match limit")
	}

	if config.Engine.ReferralBonusPoints < 0 {
		return fmt.Errorf("referral bonus points must not be negative")
	}

	return nil
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets an environment variable as an integer or returns a default value
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsBool gets an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	valueLower := strings.ToLower(valueStr)
	if valueLower == "true" || valueLower == "1" || valueLower == "yes" {
		return true
	}
	if valueLower == "false" || valueLower == "0" || valueLower == "no" {
		return false
	}

	return defaultValue
}
