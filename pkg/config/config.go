package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"lottopick/pkg/util"
)

// Duration decodes YAML values like "10s" or "5m"; yaml.v3 has no native
// time.Duration support.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// Std returns the standard library representation.
func (d Duration) Std() time.Duration { return time.Duration(d) }

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int      `yaml:"port"`
		ReadTimeout     Duration `yaml:"read_timeout"`
		WriteTimeout    Duration `yaml:"write_timeout"`
		ShutdownTimeout Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Store struct {
		Type    string `yaml:"type"` // csv or clickhouse
		CSVPath string `yaml:"csv_path"`
		Table   string `yaml:"table"`
	} `yaml:"store"`
	Engine struct {
		Windows       []int `yaml:"windows"`
		DefaultWindow int   `yaml:"default_window"`
		HotCount      int   `yaml:"hot_count"`
		ColdCount     int   `yaml:"cold_count"`
		BatchSize     int   `yaml:"batch_size"`
		MaxAttempts   int   `yaml:"max_attempts"`
	} `yaml:"engine"`
	Sync struct {
		Enabled   bool     `yaml:"enabled"`
		BaseURL   string   `yaml:"base_url"`
		Timeout   Duration `yaml:"timeout"`
		MaxRounds int      `yaml:"max_rounds"`
	} `yaml:"sync"`
	Cache struct {
		Enabled bool     `yaml:"enabled"`
		TTL     Duration `yaml:"ttl"`
		Redis   struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Kafka struct {
		Enabled      bool     `yaml:"enabled"`
		Brokers      []string `yaml:"brokers"`
		Topic        string   `yaml:"topic"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
		MaxAttempts  int      `yaml:"max_attempts"`
		WriteTimeout Duration `yaml:"write_timeout"`
		ReadTimeout  Duration `yaml:"read_timeout"`
		Async        bool     `yaml:"async"`
	} `yaml:"kafka"`
	ClickHouse struct {
		Host             string   `yaml:"host"`
		Port             int      `yaml:"port"`
		Database         string   `yaml:"database"`
		User             string   `yaml:"user"`
		Password         string   `yaml:"password"`
		UseHTTP          bool     `yaml:"use_http"`
		DialTimeout      Duration `yaml:"dial_timeout"`
		ReadTimeout      Duration `yaml:"read_timeout"`
		WriteTimeout     Duration `yaml:"write_timeout"`
		MaxExecutionTime Duration `yaml:"max_execution_time"`
	} `yaml:"clickhouse"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("STORE_TYPE"); v != "" {
		c.Store.Type = v
	}
	if v := os.Getenv("CSV_PATH"); v != "" {
		c.Store.CSVPath = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
		c.Kafka.Enabled = true
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
		c.Cache.Redis.Enabled = true
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Store.Type != "csv" && c.Store.Type != "clickhouse" {
		return fmt.Errorf("store.type must be 'csv' or 'clickhouse', got '%s'", c.Store.Type)
	}
	if c.Store.Type == "csv" && c.Store.CSVPath == "" {
		return fmt.Errorf("store.csv_path is required for csv store")
	}
	if len(c.Engine.Windows) == 0 {
		return fmt.Errorf("engine.windows cannot be empty")
	}
	for _, w := range c.Engine.Windows {
		if w < 1 {
			return fmt.Errorf("engine.windows must be positive, got %d", w)
		}
	}
	if c.Engine.HotCount < 1 || c.Engine.ColdCount < 1 {
		return fmt.Errorf("engine hot_count and cold_count must be >= 1")
	}
	if c.Engine.HotCount+c.Engine.ColdCount > 45 {
		return fmt.Errorf("engine hot_count+cold_count must not exceed 45, got %d", c.Engine.HotCount+c.Engine.ColdCount)
	}
	if c.Engine.BatchSize < 1 {
		return fmt.Errorf("engine.batch_size must be >= 1")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers cannot be empty when kafka is enabled")
	}
	return nil
}
