package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v10"
)

const defaultConfigPath = "config.json"

// Config represents runtime configuration for the service.
type Config struct {
	BasicConfig BasicConfig               `json:"basic_config"`
	Assistant   AssistantConfig           `json:"assistant"`
	Providers   map[string]ProviderConfig `json:"providers"`
	Databases   map[string]DatabaseConfig `json:"databases"`
	Redis       RedisConfig               `json:"redis"`
}

type BasicConfig struct {
	ServerAddress string `json:"server_address"`
	// DataSource selects the portal data source: "mock", "sqlite3" or "mysql".
	DataSource string `json:"data_source"`
	// SessionStore selects where login sessions live: "memory" or "redis".
	SessionStore      string `json:"session_store"`
	SessionTTL        int    `json:"session_ttl"`         // minutes
	ConversationIdle  int    `json:"conversation_idle"`   // minutes
	SweepInterval     int    `json:"sweep_interval"`      // minutes
	ChatRateLimit     int    `json:"chat_rate_limit"`     // chat requests per client per minute, negative disables
	Debug             bool   `json:"debug"`
	SeedPortalRecords bool   `json:"seed_portal_records"` // seed SQL source with the demo records
	// TrustedProxies may set the client IP through X-Forwarded-For. Empty trusts none.
	TrustedProxies []string `json:"trusted_proxies"`
}

type AssistantConfig struct {
	Provider    string `json:"provider"`
	Timeout     int    `json:"timeout"` // seconds
	ContextFile string `json:"context_file"`
}

type ProviderConfig struct {
	BaseURL string `json:"base_url"`
	Model   string `json:"model"`
	APIKey  string `json:"api_key"`
}

type DatabaseConfig struct {
	DSN      string `json:"dsn"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	DBName   string `json:"db_name"`
	Params   string `json:"params"`
}

type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

// envOverrides lists the settings that may be supplied through the environment.
// Empty values leave the file configuration untouched.
type envOverrides struct {
	ServerAddress string   `env:"FEEBANK_ADDR"`
	DataSource    string   `env:"FEEBANK_DATA_SOURCE"`
	SessionStore  string   `env:"FEEBANK_SESSION_STORE"`
	Debug         *bool    `env:"FEEBANK_DEBUG"`
	Provider      string   `env:"FEEBANK_AI_PROVIDER"`
	Model         string   `env:"FEEBANK_AI_MODEL"`
	ContextFile   string   `env:"FEEBANK_CONTEXT_FILE"`
	GeminiAPIKey  string   `env:"GEMINI_API_KEY"`
	OpenAIAPIKey  string   `env:"OPENAI_API_KEY"`
	ClaudeAPIKey  string   `env:"ANTHROPIC_API_KEY"`
	RedisHost     string   `env:"FEEBANK_REDIS_HOST"`
	RedisPort     int      `env:"FEEBANK_REDIS_PORT"`
	RedisPassword string   `env:"FEEBANK_REDIS_PASSWORD"`
	SQLiteDSN     string   `env:"FEEBANK_SQLITE_DSN"`
	Proxies       []string `env:"FEEBANK_TRUSTED_PROXIES" envSeparator:","`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		BasicConfig: BasicConfig{
			ServerAddress:     ":8090",
			DataSource:        "mock",
			SessionStore:      "memory",
			SessionTTL:        24 * 60,
			ConversationIdle:  60,
			SweepInterval:     10,
			SeedPortalRecords: true,
		},
		Assistant: AssistantConfig{
			Provider: "gemini",
			Timeout:  30,
		},
		Providers: map[string]ProviderConfig{
			"gemini": {Model: "gemini-2.0-flash"},
		},
		Databases: map[string]DatabaseConfig{
			"sqlite3": {DSN: "file:feebank.db?cache=shared"},
		},
	}
}

// Load reads configuration from the provided path (defaults to config.json) and
// applies environment overrides. A missing default file is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = defaultConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	cfg := Default()
	file, err := os.Open(absPath)
	switch {
	case err == nil:
		defer file.Close()
		if err := json.NewDecoder(file).Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode config: %w", err)
		}
		cfg.resolvePaths(filepath.Dir(absPath))
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("open config %s: %w", absPath, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) resolvePaths(dir string) {
	if c.Assistant.ContextFile != "" && !filepath.IsAbs(c.Assistant.ContextFile) {
		c.Assistant.ContextFile = filepath.Join(dir, c.Assistant.ContextFile)
	}
}

func (c *Config) applyEnv() error {
	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	setString(&c.BasicConfig.ServerAddress, ov.ServerAddress)
	setString(&c.BasicConfig.DataSource, ov.DataSource)
	setString(&c.BasicConfig.SessionStore, ov.SessionStore)
	if ov.Debug != nil {
		c.BasicConfig.Debug = *ov.Debug
	}
	setString(&c.Assistant.Provider, ov.Provider)
	setString(&c.Assistant.ContextFile, ov.ContextFile)

	if c.Providers == nil {
		c.Providers = make(map[string]ProviderConfig)
	}
	c.setProviderKey("gemini", ov.GeminiAPIKey)
	c.setProviderKey("openai", ov.OpenAIAPIKey)
	c.setProviderKey("claude", ov.ClaudeAPIKey)
	if ov.Model != "" {
		prov := c.Providers[c.Assistant.Provider]
		prov.Model = ov.Model
		c.Providers[c.Assistant.Provider] = prov
	}

	if len(ov.Proxies) > 0 {
		c.BasicConfig.TrustedProxies = ov.Proxies
	}
	setString(&c.Redis.Host, ov.RedisHost)
	if ov.RedisPort != 0 {
		c.Redis.Port = ov.RedisPort
	}
	setString(&c.Redis.Password, ov.RedisPassword)
	if ov.SQLiteDSN != "" {
		if c.Databases == nil {
			c.Databases = make(map[string]DatabaseConfig)
		}
		db := c.Databases["sqlite3"]
		db.DSN = ov.SQLiteDSN
		c.Databases["sqlite3"] = db
	}
	return nil
}

func (c *Config) setProviderKey(name, key string) {
	if key == "" {
		return
	}
	prov := c.Providers[name]
	prov.APIKey = key
	c.Providers[name] = prov
}

func (c *Config) validate() error {
	switch strings.ToLower(c.BasicConfig.DataSource) {
	case "mock", "sqlite", "sqlite3", "mysql":
	default:
		return fmt.Errorf("unsupported data_source: %s", c.BasicConfig.DataSource)
	}
	switch strings.ToLower(c.BasicConfig.SessionStore) {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported session_store: %s", c.BasicConfig.SessionStore)
	}
	if c.Assistant.Provider == "" {
		return errors.New("assistant provider must be configured")
	}
	return nil
}

// ActiveProvider returns the provider selected for the assistant and its settings.
// The API key may be empty, which puts the assistant in permanent fallback mode.
func (c *Config) ActiveProvider() (string, ProviderConfig) {
	name := strings.ToLower(strings.TrimSpace(c.Assistant.Provider))
	return name, c.Providers[name]
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
