package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/billie-coop/confirm/dialog/content"
	"github.com/billie-coop/confirm/dialog/sizing"
	"gopkg.in/yaml.v3"
)

// Config represents the confirm configuration
type Config struct {
	// UI preferences
	Theme       string `json:"theme" yaml:"theme"`
	ContentMode string `json:"content_mode" yaml:"content_mode"`

	// Logging
	LogLevel string `json:"log_level" yaml:"log_level"`
	LogFile  string `json:"log_file" yaml:"log_file"`
	Debug    bool   `json:"debug" yaml:"debug"`

	// Dialog sizing heuristic
	Sizing sizing.Config `json:"sizing" yaml:"sizing"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Theme:       "confirm",
		ContentMode: content.Default.String(),
		LogLevel:    "info",
		LogFile:     "confirm.log",
		Debug:       false,
		Sizing:      sizing.DefaultConfig(),
	}
}

// Validate checks values that cannot be fixed up later
func (c *Config) Validate() error {
	if _, ok := content.ParseMode(c.ContentMode); !ok {
		return fmt.Errorf("unknown content mode: %s", c.ContentMode)
	}
	if err := c.Sizing.Validate(); err != nil {
		return err
	}
	return nil
}

// Mode returns the configured default content mode
func (c *Config) Mode() content.Mode {
	mode, _ := content.ParseMode(c.ContentMode)
	return mode
}

// Manager handles configuration loading and saving
type Manager struct {
	projectPath string
	configPath  string

	// raw is the config as written on disk; config has $VAR references
	// expanded.
	raw    *Config
	config *Config
}

// NewManager creates a new configuration manager. An existing config.yaml
// takes precedence over config.json.
func NewManager(projectPath string) *Manager {
	dir := filepath.Join(projectPath, ".confirm")
	configPath := filepath.Join(dir, "config.json")
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err == nil {
		configPath = filepath.Join(dir, "config.yaml")
	}
	return &Manager{
		projectPath: projectPath,
		configPath:  configPath,
		raw:         DefaultConfig(),
		config:      DefaultConfig(),
	}
}

// Path returns the file the manager reads and writes
func (m *Manager) Path() string {
	return m.configPath
}

// Dir returns the .confirm directory
func (m *Manager) Dir() string {
	return filepath.Dir(m.configPath)
}

// Load reads the configuration from disk, creating defaults if needed
func (m *Manager) Load() error {
	// Ensure .confirm directory exists
	if err := os.MkdirAll(m.Dir(), 0o755); err != nil {
		return fmt.Errorf("failed to create .confirm directory: %w", err)
	}

	if err := m.ensureGitignore(); err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	if _, err := os.Stat(m.configPath); errors.Is(err, os.ErrNotExist) {
		return m.Save()
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Missing keys keep their defaults
	config := DefaultConfig()
	if m.isYAML() {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(config); err != nil {
			return fmt.Errorf("failed to parse config YAML: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	expanded := expandEnvVars(config)
	if err := expanded.Validate(); err != nil {
		return fmt.Errorf("invalid config in %s: %w", m.configPath, err)
	}

	m.raw, m.config = config, expanded
	return nil
}

// Save writes the configuration to disk with $VAR references kept as written
func (m *Manager) Save() error {
	var (
		data []byte
		err  error
	)
	if m.isYAML() {
		data, err = yaml.Marshal(m.raw)
	} else {
		data, err = json.MarshalIndent(m.raw, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the current configuration with environment variables expanded
func (m *Manager) Get() *Config {
	return m.config
}

// Set updates a configuration value and saves
func (m *Manager) Set(key, value string) error {
	next := *m.raw

	switch key {
	case "theme":
		next.Theme = value
	case "content_mode":
		next.ContentMode = value
	case "log_level":
		next.LogLevel = value
	case "log_file":
		next.LogFile = value
	case "debug":
		next.Debug = value == "true"
	default:
		if !strings.HasPrefix(key, "sizing.") {
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := setSizing(&next.Sizing, strings.TrimPrefix(key, "sizing."), value); err != nil {
			return err
		}
	}

	expanded := expandEnvVars(&next)
	if err := expanded.Validate(); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	m.raw, m.config = &next, expanded
	return m.Save()
}

func setSizing(s *sizing.Config, key, value string) error {
	if key == "long_message_threshold" {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for sizing.%s: %w", key, err)
		}
		s.LongMessageThreshold = n
		return nil
	}

	fields := map[string]*float64{
		"min_width":          &s.MinWidth,
		"max_width_short":    &s.MaxWidthShort,
		"max_width_long":     &s.MaxWidthLong,
		"min_height":         &s.MinHeight,
		"max_height":         &s.MaxHeight,
		"char_width":         &s.CharWidth,
		"char_height":        &s.CharHeight,
		"overflow_slack":     &s.OverflowSlack,
		"title_extra_rows":   &s.TitleExtraRows,
		"button_area_height": &s.ButtonAreaHeight,
		"vertical_margin":    &s.VerticalMargin,
		"horizontal_margin":  &s.HorizontalMargin,
	}
	field, ok := fields[key]
	if !ok {
		return fmt.Errorf("unknown config key: sizing.%s", key)
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid value for sizing.%s: %w", key, err)
	}
	*field = f
	return nil
}

func (m *Manager) isYAML() bool {
	ext := filepath.Ext(m.configPath)
	return ext == ".yaml" || ext == ".yml"
}

// ensureGitignore creates a .gitignore in .confirm/ with smart defaults
func (m *Manager) ensureGitignore() error {
	gitignorePath := filepath.Join(m.Dir(), ".gitignore")

	if _, err := os.Stat(gitignorePath); !errors.Is(err, os.ErrNotExist) {
		return nil // Already exists
	}

	gitignoreContent := `# confirm data directory .gitignore
#
# Config is committed, logs are not

*.log
*.tmp

!config.json
!config.yaml
!.gitignore
`

	return os.WriteFile(gitignorePath, []byte(gitignoreContent), 0o644)
}

var envVar = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// expandEnvVars returns a copy of config with environment variables
// expanded in its string values
func expandEnvVars(config *Config) *Config {
	out := *config
	out.Theme = expandString(out.Theme)
	out.ContentMode = expandString(out.ContentMode)
	out.LogLevel = expandString(out.LogLevel)
	out.LogFile = expandString(out.LogFile)
	return &out
}

// expandString expands environment variables in a string
// Supports $VAR and ${VAR} syntax
func expandString(s string) string {
	return envVar.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		// Return original if env var not found
		return match
	})
}
