// Package config loads the search-api YAML configuration with env expansion.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the search-api configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Solr    SolrConfig    `yaml:"solr"`
	Cache   CacheConfig   `yaml:"cache"`
	Auth    AuthConfig    `yaml:"auth"`
	CORS    CORSConfig    `yaml:"cors"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings for the write endpoints.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// CORSConfig holds the browser origin allow-list.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// SolrConfig holds the upstream Solr connection settings.
type SolrConfig struct {
	Host             string `yaml:"host"`
	Port             int    `yaml:"port"`
	ItemCore         string `yaml:"item_core"`
	CollectionCore   string `yaml:"collection_core"`
	RequestTimeout   int    `yaml:"request_timeout_sec"`
	ReadinessTimeout int    `yaml:"readiness_timeout_sec"`
}

// BaseURL returns the Solr root URL, e.g. http://solr:8983.
func (s SolrConfig) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", s.Host, s.Port)
}

// CacheConfig holds the optional select-response cache settings.
type CacheConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Addrs    []string `yaml:"addrs"`
	Password string   `yaml:"password"`
	TTLSec   int      `yaml:"ttl_sec"`
}

// SearchConfig holds query translation settings.
type SearchConfig struct {
	PageSize     int   `yaml:"page_size"`
	AllowedRows  []int `yaml:"allowed_rows"`
	MaxQueryLen  int   `yaml:"max_query_len"`
	FacetLimit   int   `yaml:"facet_limit"`
	SpellHandler bool  `yaml:"spell_handler"` // route selects through /spell for suggestions
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		// Solr facet queries on large cores can be slow; keep headroom
		// above the upstream timeout.
		c.HTTP.WriteTimeoutSec = 70
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Solr.ItemCore == "" {
		c.Solr.ItemCore = "mscat"
	}
	if c.Solr.CollectionCore == "" {
		c.Solr.CollectionCore = "collection"
	}
	if c.Solr.RequestTimeout <= 0 {
		c.Solr.RequestTimeout = 60
	}
	if c.Solr.ReadinessTimeout <= 0 {
		c.Solr.ReadinessTimeout = 30
	}
	if c.Cache.TTLSec <= 0 {
		c.Cache.TTLSec = 300
	}
	if c.Search.PageSize <= 0 {
		c.Search.PageSize = 20
	}
	if len(c.Search.AllowedRows) == 0 {
		c.Search.AllowedRows = []int{8, 20}
	}
	if c.Search.MaxQueryLen <= 0 {
		c.Search.MaxQueryLen = 4096
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Solr.Host == "" {
		return fmt.Errorf("solr.host is required")
	}
	if c.Solr.Port <= 0 || c.Solr.Port > 65535 {
		return fmt.Errorf("solr.port must be between 1 and 65535, got %d", c.Solr.Port)
	}
	if c.Cache.Enabled && len(c.Cache.Addrs) == 0 {
		return fmt.Errorf("cache.addrs is required when cache.enabled is true")
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
