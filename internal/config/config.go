package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// APIKeyEnv overrides assistant.api_key so keys need not live in config files.
const APIKeyEnv = "UNIQYOU_ASSISTANT_API_KEY"

// StoreConfig selects where screening data is persisted
type StoreConfig struct {
	// Backend is one of file, sqlite or memory
	Backend string `yaml:"backend"`

	// Path is the store directory (file) or database file (sqlite).
	// Relative paths resolve against the uniqyou home directory.
	Path string `yaml:"path"`

	// Namespace prefixes every stored slot key
	Namespace string `yaml:"namespace"`
}

// NavigationConfig controls questionnaire navigation
type NavigationConfig struct {
	// LeavePolicy is "clear" (drop the answer of the question being left)
	// or "retain"
	LeavePolicy string `yaml:"leave_policy"`
}

// AssistantConfig configures the conversational assistant
type AssistantConfig struct {
	Enabled bool `yaml:"enabled"`

	// Backend is "http" (generateContent API) or "command" (local CLI)
	Backend string `yaml:"backend"`

	// Endpoint is the model API base URL
	Endpoint string `yaml:"endpoint"`

	// Model is tried first; FallbackModel is used when the endpoint reports
	// the model as not found
	Model         string `yaml:"model"`
	FallbackModel string `yaml:"fallback_model"`

	APIKey string `yaml:"api_key"`

	Timeout         time.Duration `yaml:"timeout"`
	Temperature     float64       `yaml:"temperature"`
	MaxOutputTokens int           `yaml:"max_output_tokens"`

	// Command and Args run the command backend; the prompt is sent on stdin
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// CatalogConfig points at a replacement question catalog
type CatalogConfig struct {
	// Path to a YAML catalog; empty uses the built-in one
	Path string `yaml:"path"`
}

// Config represents uniqyou configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory where the rotating log file is written
	LogDir string `yaml:"log_dir"`

	Store      StoreConfig      `yaml:"store"`
	Navigation NavigationConfig `yaml:"navigation"`
	Assistant  AssistantConfig  `yaml:"assistant"`
	Catalog    CatalogConfig    `yaml:"catalog"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		LogDir:   "logs",
		Store: StoreConfig{
			Backend:   "file",
			Path:      "",
			Namespace: "uniqyou",
		},
		Navigation: NavigationConfig{
			LeavePolicy: "clear",
		},
		Assistant: AssistantConfig{
			Enabled:         true,
			Backend:         "http",
			Endpoint:        "https://generativelanguage.googleapis.com/v1beta/models",
			Model:           "gemini-1.5-flash",
			FallbackModel:   "gemini-pro",
			Timeout:         30 * time.Second,
			Temperature:     0.7,
			MaxOutputTokens: 150,
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg.applyEnv()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Durations are strings in YAML
	type yamlAssistant struct {
		Enabled         bool     `yaml:"enabled"`
		Backend         string   `yaml:"backend"`
		Endpoint        string   `yaml:"endpoint"`
		Model           string   `yaml:"model"`
		FallbackModel   string   `yaml:"fallback_model"`
		APIKey          string   `yaml:"api_key"`
		Timeout         string   `yaml:"timeout"`
		Temperature     float64  `yaml:"temperature"`
		MaxOutputTokens int      `yaml:"max_output_tokens"`
		Command         string   `yaml:"command"`
		Args            []string `yaml:"args"`
	}
	type yamlConfig struct {
		LogLevel   string           `yaml:"log_level"`
		LogDir     string           `yaml:"log_dir"`
		Store      StoreConfig      `yaml:"store"`
		Navigation NavigationConfig `yaml:"navigation"`
		Assistant  yamlAssistant    `yaml:"assistant"`
		Catalog    CatalogConfig    `yaml:"catalog"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.LogDir != "" {
		cfg.LogDir = yamlCfg.LogDir
	}
	if yamlCfg.Store.Backend != "" {
		cfg.Store.Backend = yamlCfg.Store.Backend
	}
	if yamlCfg.Store.Path != "" {
		cfg.Store.Path = yamlCfg.Store.Path
	}
	if yamlCfg.Store.Namespace != "" {
		cfg.Store.Namespace = yamlCfg.Store.Namespace
	}
	if yamlCfg.Navigation.LeavePolicy != "" {
		cfg.Navigation.LeavePolicy = yamlCfg.Navigation.LeavePolicy
	}
	if yamlCfg.Catalog.Path != "" {
		cfg.Catalog.Path = yamlCfg.Catalog.Path
	}

	// The assistant section has booleans and zero-valid numbers, so only
	// keys actually present in the file override defaults
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if section, exists := rawMap["assistant"]; exists && section != nil {
			a := yamlCfg.Assistant
			assistantMap, _ := section.(map[string]interface{})

			if _, exists := assistantMap["enabled"]; exists {
				cfg.Assistant.Enabled = a.Enabled
			}
			if _, exists := assistantMap["backend"]; exists {
				cfg.Assistant.Backend = a.Backend
			}
			if _, exists := assistantMap["endpoint"]; exists {
				cfg.Assistant.Endpoint = a.Endpoint
			}
			if _, exists := assistantMap["model"]; exists {
				cfg.Assistant.Model = a.Model
			}
			if _, exists := assistantMap["fallback_model"]; exists {
				cfg.Assistant.FallbackModel = a.FallbackModel
			}
			if _, exists := assistantMap["api_key"]; exists {
				cfg.Assistant.APIKey = a.APIKey
			}
			if _, exists := assistantMap["timeout"]; exists && a.Timeout != "" {
				timeout, err := time.ParseDuration(a.Timeout)
				if err != nil {
					return nil, fmt.Errorf("invalid assistant.timeout format %q: %w", a.Timeout, err)
				}
				cfg.Assistant.Timeout = timeout
			}
			if _, exists := assistantMap["temperature"]; exists {
				cfg.Assistant.Temperature = a.Temperature
			}
			if _, exists := assistantMap["max_output_tokens"]; exists {
				cfg.Assistant.MaxOutputTokens = a.MaxOutputTokens
			}
			if _, exists := assistantMap["command"]; exists {
				cfg.Assistant.Command = a.Command
			}
			if _, exists := assistantMap["args"]; exists {
				cfg.Assistant.Args = a.Args
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// LoadConfigFromDir loads configuration from config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, "config.yaml"))
}

func (c *Config) applyEnv() {
	if key := os.Getenv(APIKeyEnv); key != "" {
		c.Assistant.APIKey = key
	}
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel *string, logDir *string, storeBackend *string, leavePolicy *string) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if storeBackend != nil {
		c.Store.Backend = *storeBackend
	}
	if leavePolicy != nil {
		c.Navigation.LeavePolicy = *leavePolicy
	}
}

// ResolvePaths makes LogDir, Store.Path and Catalog.Path absolute relative
// to home, filling in the default store location for the chosen backend.
func (c *Config) ResolvePaths(home string) {
	c.LogDir = resolve(home, c.LogDir)
	if c.Store.Path == "" {
		switch strings.ToLower(c.Store.Backend) {
		case "sqlite":
			c.Store.Path = "uniqyou.db"
		default:
			c.Store.Path = "store"
		}
	}
	c.Store.Path = resolve(home, c.Store.Path)
	if c.Catalog.Path != "" {
		c.Catalog.Path = resolve(home, c.Catalog.Path)
	}
}

func resolve(home, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(home, p)
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	switch strings.ToLower(c.Store.Backend) {
	case "file", "sqlite", "memory":
	default:
		return fmt.Errorf("invalid store.backend %q, must be one of: file, sqlite, memory", c.Store.Backend)
	}
	if strings.ContainsAny(c.Store.Namespace, `/\`) {
		return fmt.Errorf("store.namespace %q must not contain path separators", c.Store.Namespace)
	}

	switch strings.ToLower(c.Navigation.LeavePolicy) {
	case "", "clear", "retain":
	default:
		return fmt.Errorf("invalid navigation.leave_policy %q, must be one of: clear, retain", c.Navigation.LeavePolicy)
	}

	if c.Assistant.Enabled {
		switch c.Assistant.Backend {
		case "http":
			if c.Assistant.Endpoint == "" {
				return fmt.Errorf("assistant.endpoint cannot be empty for the http backend")
			}
			if c.Assistant.Model == "" {
				return fmt.Errorf("assistant.model cannot be empty for the http backend")
			}
		case "command":
			if c.Assistant.Command == "" {
				return fmt.Errorf("assistant.command cannot be empty for the command backend")
			}
		default:
			return fmt.Errorf("invalid assistant.backend %q, must be one of: http, command", c.Assistant.Backend)
		}
		if c.Assistant.Timeout < 0 {
			return fmt.Errorf("assistant.timeout must be >= 0, got %v", c.Assistant.Timeout)
		}
		if c.Assistant.Temperature < 0 || c.Assistant.Temperature > 2 {
			return fmt.Errorf("assistant.temperature must be between 0 and 2, got %v", c.Assistant.Temperature)
		}
		if c.Assistant.MaxOutputTokens <= 0 {
			return fmt.Errorf("assistant.max_output_tokens must be > 0, got %d", c.Assistant.MaxOutputTokens)
		}
	}

	return nil
}
