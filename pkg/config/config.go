package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ProviderYahoo      = "yahoo"
	ProviderClickHouse = "clickhouse"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Host            string        `yaml:"host" default:"0.0.0.0"`
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"15s"`
		CORS            bool          `yaml:"cors" default:"true"`
	} `yaml:"server"`
	Logging struct {
		Level      string `yaml:"level" default:"info"`
		Format     string `yaml:"format" default:"json"`
		Output     string `yaml:"output" default:"stdout"`
		MaxSizeMB  int    `yaml:"max_size_mb" default:"100"`
		MaxBackups int    `yaml:"max_backups" default:"5"`
		MaxAgeDays int    `yaml:"max_age_days" default:"14"`
		Compress   bool   `yaml:"compress"`
		Collector  struct {
			Enabled        bool          `yaml:"enabled"`
			Topic          string        `yaml:"topic" default:"quoteframe.logs"`
			Interval       time.Duration `yaml:"interval" default:"30s"`
			CountThreshold int           `yaml:"count_threshold" default:"100"`
		} `yaml:"collector"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Cache struct {
		TTL             time.Duration `yaml:"ttl" default:"5m"`
		Capacity        int           `yaml:"capacity" default:"10"`
		Coalesce        bool          `yaml:"coalesce"`
		JanitorInterval time.Duration `yaml:"janitor_interval" default:"1m"`
	} `yaml:"cache"`
	Provider struct {
		Type           string `yaml:"type" default:"yahoo"`
		MaxConcurrency int    `yaml:"max_concurrency" default:"4"`
		Yahoo          struct {
			BaseURL   string        `yaml:"base_url" default:"https://query1.finance.yahoo.com/v8/finance/chart"`
			Timeout   time.Duration `yaml:"timeout" default:"10s"`
			RPS       float64       `yaml:"rps" default:"2"`
			Burst     int           `yaml:"burst" default:"4"`
			UserAgent string        `yaml:"user_agent"`
			Interval  string        `yaml:"interval" default:"1d"`
		} `yaml:"yahoo"`
		ClickHouse struct {
			Host             string        `yaml:"host" default:"localhost"`
			Port             int           `yaml:"port" default:"9000"`
			Database         string        `yaml:"database" default:"quoteframe"`
			Table            string        `yaml:"table" default:"quotes_daily"`
			User             string        `yaml:"user" default:"default"`
			Password         string        `yaml:"password"`
			UseHTTP          bool          `yaml:"use_http"`
			InitSchema       bool          `yaml:"init_schema" default:"true"`
			DialTimeout      time.Duration `yaml:"dial_timeout" default:"5s"`
			ReadTimeout      time.Duration `yaml:"read_timeout" default:"30s"`
			MaxExecutionTime time.Duration `yaml:"max_execution_time" default:"60s"`
		} `yaml:"clickhouse"`
	} `yaml:"provider"`
	Kafka struct {
		Brokers      []string      `yaml:"brokers"`
		ClientID     string        `yaml:"client_id" default:"quoteframe"`
		RequiredAcks int           `yaml:"required_acks" default:"1"`
		Compression  string        `yaml:"compression" default:"gzip"`
		MaxAttempts  int           `yaml:"max_attempts" default:"3"`
		BatchTimeout time.Duration `yaml:"batch_timeout" default:"1s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"10s"`
		Async        bool          `yaml:"async"`
	} `yaml:"kafka"`
}

// Load reads and parses a YAML configuration file. Missing keys take their
// `default` tag value.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML bytes, applies defaults and validates the result.
func Parse(b []byte) (*Config, error) {
	var c Config
	// Defaults first so an explicit false or zero in the file wins.
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// LoadWithEnv loads .env (if present), then the YAML file, then applies
// environment overrides.
func LoadWithEnv(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("QUOTEFRAME_ENV"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("PROVIDER_TYPE"); v != "" {
		c.Provider.Type = v
	}
	if v := os.Getenv("YAHOO_BASE_URL"); v != "" {
		c.Provider.Yahoo.BaseURL = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HTTP_PORT: %w", err)
		}
		c.Server.Port = port
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	switch c.Provider.Type {
	case ProviderYahoo:
		if c.Provider.Yahoo.BaseURL == "" {
			return fmt.Errorf("provider.yahoo.base_url is required")
		}
	case ProviderClickHouse:
		if c.Provider.ClickHouse.Host == "" || c.Provider.ClickHouse.Database == "" {
			return fmt.Errorf("provider.clickhouse.host and database are required")
		}
	default:
		return fmt.Errorf("provider.type must be '%s' or '%s', got '%s'", ProviderYahoo, ProviderClickHouse, c.Provider.Type)
	}
	if c.Provider.MaxConcurrency < 1 {
		return fmt.Errorf("provider.max_concurrency must be positive")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive")
	}
	if c.Cache.Capacity < 1 {
		return fmt.Errorf("cache.capacity must be positive")
	}
	if c.Logging.Collector.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("logging.collector requires kafka.brokers")
	}
	return nil
}
