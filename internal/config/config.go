package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"signassist/internal/domain"
	"signassist/internal/eventbus"
)

// Provider names accepted in [ai].provider
const (
	ProviderGemini  = "gemini"
	ProviderOpenAI  = "openai"
	ProviderOffline = "offline"
)

// Defaults
const (
	DefaultProvider        = ProviderGemini
	DefaultGeminiModel     = "gemini-2.5-flash"
	DefaultOpenAIModel     = "gpt-4o-mini"
	DefaultURLTemplate     = "https://www.signingsavvy.com/sign/{term}"
	DefaultMinDisplayDelay = time.Second
	DefaultRequestTimeout  = 30 * time.Second
	DefaultCacheSize       = 64
	DefaultHistorySize     = 8
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version    int           `toml:"version"`
	AI         AISettings    `toml:"ai"`
	Video      VideoSettings `toml:"video"`
	UISettings UISettings    `toml:"ui"`
}

// AISettings configures the description provider
type AISettings struct {
	Provider  string   `toml:"provider"`
	Model     string   `toml:"model,omitempty"`
	APIKey    string   `toml:"api_key,omitempty"`
	BaseURL   string   `toml:"base_url,omitempty"` // OpenAI-compatible endpoints only
	Timeout   Duration `toml:"timeout"`
	CacheSize int      `toml:"cache_size"`
}

// VideoSettings configures the external video page
type VideoSettings struct {
	URLTemplate     string   `toml:"url_template"`
	MinDisplayDelay Duration `toml:"min_display_delay"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Suggestions []string `toml:"suggestions"`
	HistorySize int      `toml:"history_size"`
	ShowHelpBar bool     `toml:"show_help_bar"`
}

// Duration is a time.Duration written as "1s", "250ms" in TOML
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration { return time.Duration(d) }

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the config file location. SIGNASSIST_CONFIG_DIR overrides
// the directory; otherwise the user config dir is used.
func DefaultPath() string {
	if override := os.Getenv("SIGNASSIST_CONFIG_DIR"); override != "" {
		return filepath.Join(override, "config.toml")
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "signassist", "config.toml")
}

// NewConfigService creates a config service for path; empty path means DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file this service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file; a missing file yields the defaults
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		loaded, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			Provider: cfg.AI.Provider,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so missing keys keep sensible values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file may hold an API key
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		AI: AISettings{
			Provider:  DefaultProvider,
			Timeout:   Duration(DefaultRequestTimeout),
			CacheSize: DefaultCacheSize,
		},
		Video: VideoSettings{
			URLTemplate:     DefaultURLTemplate,
			MinDisplayDelay: Duration(DefaultMinDisplayDelay),
		},
		UISettings: UISettings{
			Suggestions: append([]string(nil), domain.DefaultSuggestions...),
			HistorySize: DefaultHistorySize,
			ShowHelpBar: true,
		},
	}
}

// normalize fills values a hand-edited file may have blanked
func (c *Config) normalize() {
	c.AI.Provider = strings.ToLower(strings.TrimSpace(c.AI.Provider))
	if c.AI.Provider == "" {
		c.AI.Provider = DefaultProvider
	}
	if strings.TrimSpace(c.Video.URLTemplate) == "" {
		c.Video.URLTemplate = DefaultURLTemplate
	}
	suggestions := c.UISettings.Suggestions[:0]
	for _, s := range c.UISettings.Suggestions {
		if s = strings.TrimSpace(s); s != "" {
			suggestions = append(suggestions, s)
		}
	}
	c.UISettings.Suggestions = suggestions
}

// Validate checks the configuration for values the app cannot run with
func (c *Config) Validate() error {
	switch c.AI.Provider {
	case ProviderGemini, ProviderOpenAI, ProviderOffline:
	default:
		return fmt.Errorf("%w: unknown provider %q (want gemini, openai or offline)", ErrInvalidConfig, c.AI.Provider)
	}
	if !strings.Contains(c.Video.URLTemplate, "{term}") {
		return fmt.Errorf("%w: video.url_template must contain {term}", ErrInvalidConfig)
	}
	if c.Video.MinDisplayDelay < 0 {
		return fmt.Errorf("%w: video.min_display_delay must not be negative", ErrInvalidConfig)
	}
	if c.AI.Timeout < 0 {
		return fmt.Errorf("%w: ai.timeout must not be negative", ErrInvalidConfig)
	}
	if c.AI.CacheSize < 0 {
		return fmt.Errorf("%w: ai.cache_size must not be negative", ErrInvalidConfig)
	}
	if c.UISettings.HistorySize < 0 {
		return fmt.Errorf("%w: ui.history_size must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ModelName returns the configured model or the provider's default
func (c *Config) ModelName() string {
	if c.AI.Model != "" {
		return c.AI.Model
	}
	switch c.AI.Provider {
	case ProviderOpenAI:
		return DefaultOpenAIModel
	case ProviderGemini:
		return DefaultGeminiModel
	default:
		return ""
	}
}

// APIKey returns the key for the configured provider. Environment variables
// win over the file so keys never need to be written to disk.
func (c *Config) APIKey() string {
	var envVars []string
	switch c.AI.Provider {
	case ProviderGemini:
		envVars = []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"}
	case ProviderOpenAI:
		envVars = []string{"OPENAI_API_KEY"}
	}
	for _, name := range envVars {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return c.AI.APIKey
}
