package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration. The data source variant is chosen
// here once at startup and never switched mid-session.
type Config struct {
	UseSimulated bool   `yaml:"use_simulated"`
	APIBaseURL   string `yaml:"api_base_url"`
	ImageBaseURL string `yaml:"image_base_url"`
	StateDir     string `yaml:"state_dir"`
	PageSize     int    `yaml:"page_size"`
	DebugMode    bool   `yaml:"debug"`
}

// DataSourceVariant returns the registry name of the configured variant.
func (c *Config) DataSourceVariant() string {
	if c.UseSimulated {
		return "simulated"
	}
	return "remote"
}

// Load loads configuration. Precedence: environment variables, then the
// YAML config file (FOODBRIDGE_CONFIG, or config.yaml under the state dir),
// then defaults. A .env file in the working directory is folded into the
// environment first if present.
func Load() (*Config, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	cfg := &Config{
		UseSimulated: false,
		APIBaseURL:   "http://localhost:8083/api/api/v1",
		ImageBaseURL: "http://localhost:8083/api/",
		PageSize:     12,
	}

	if path := configFilePath(); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.UseSimulated = getEnvBool("FOODBRIDGE_USE_SIMULATED", cfg.UseSimulated)
	cfg.APIBaseURL = getEnv("FOODBRIDGE_API_BASE_URL", cfg.APIBaseURL)
	cfg.ImageBaseURL = getEnv("FOODBRIDGE_IMAGE_BASE_URL", cfg.ImageBaseURL)
	cfg.StateDir = getEnv("FOODBRIDGE_STATE_DIR", cfg.StateDir)
	cfg.PageSize = getEnvInt("FOODBRIDGE_PAGE_SIZE", cfg.PageSize)
	cfg.DebugMode = getEnvBool("FOODBRIDGE_DEBUG", cfg.DebugMode)

	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("FOODBRIDGE_PAGE_SIZE must be at least 1")
	}
	if !cfg.UseSimulated && cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("FOODBRIDGE_API_BASE_URL is required unless FOODBRIDGE_USE_SIMULATED is set")
	}

	return cfg, nil
}

func configFilePath() string {
	if path := os.Getenv("FOODBRIDGE_CONFIG"); path != "" {
		return path
	}
	if dir := os.Getenv("FOODBRIDGE_STATE_DIR"); dir != "" {
		if path := filepath.Join(dir, "config.yaml"); fileExists(path) {
			return path
		}
	}
	if base, err := os.UserConfigDir(); err == nil {
		if path := filepath.Join(base, "foodbridge", "config.yaml"); fileExists(path) {
			return path
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
