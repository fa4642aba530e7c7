package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	defaultConfigPath  = "config/config.yaml"
	defaultAddress     = ":4001"
	defaultTimeout     = 15 * time.Second
	defaultTokenPath   = ".clicktoeat/token"
	defaultCacheTTL    = 30 * time.Second
	defaultConcurrency = 8

	SourceRemote = "remote"
	SourceMemory = "memory"
)

type Config struct {
	Server struct {
		Address     string   `yaml:"address"`
		CORSOrigins []string `yaml:"cors_origins"`
		// WriteTimeoutSeconds bounds a whole response. Zero leaves it
		// unbounded so multi-call aggregations and streams can finish.
		WriteTimeoutSeconds int `yaml:"write_timeout_seconds"`
	} `yaml:"server"`
	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		// Concurrency caps restaurants aggregated in parallel.
		Concurrency int `yaml:"concurrency"`
	} `yaml:"api"`
	Session struct {
		TokenPath string `yaml:"token_path"`
	} `yaml:"session"`
	Redis struct {
		Addr            string `yaml:"addr"`
		Password        string `yaml:"password"`
		DB              int    `yaml:"db"`
		CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	} `yaml:"redis"`
	DataSource string `yaml:"data_source"`
	Log        struct {
		Level string `yaml:"level"`
		Env   string `yaml:"env"`
	} `yaml:"log"`
}

// LoadConfig reads the YAML file named by CONFIG_PATH, applies environment
// overrides and validates the result. A missing file leaves the defaults.
func LoadConfig() (Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}
	return Load(path)
}

func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("unmarshal config data: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Default() Config {
	var cfg Config
	cfg.Server.Address = defaultAddress
	cfg.Server.CORSOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	cfg.API.TimeoutSeconds = int(defaultTimeout / time.Second)
	cfg.API.Concurrency = defaultConcurrency
	cfg.Session.TokenPath = defaultTokenPath
	cfg.Redis.CacheTTLSeconds = int(defaultCacheTTL / time.Second)
	cfg.DataSource = SourceRemote
	cfg.Log.Level = "info"
	cfg.Log.Env = "development"
	return cfg
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Address = ":" + strings.TrimPrefix(v, ":")
	}
	if v, err := readIntEnv("WRITE_TIMEOUT_SECONDS"); err != nil {
		return fmt.Errorf("parse WRITE_TIMEOUT_SECONDS: %w", err)
	} else if v != nil {
		c.Server.WriteTimeoutSeconds = *v
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v, err := readIntEnv("API_TIMEOUT_SECONDS"); err != nil {
		return fmt.Errorf("parse API_TIMEOUT_SECONDS: %w", err)
	} else if v != nil {
		c.API.TimeoutSeconds = *v
	}
	if v := os.Getenv("TOKEN_PATH"); v != "" {
		c.Session.TokenPath = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v, err := readIntEnv("REDIS_DB"); err != nil {
		return fmt.Errorf("parse REDIS_DB: %w", err)
	} else if v != nil {
		c.Redis.DB = *v
	}
	if v, err := readIntEnv("CACHE_TTL_SECONDS"); err != nil {
		return fmt.Errorf("parse CACHE_TTL_SECONDS: %w", err)
	} else if v != nil {
		c.Redis.CacheTTLSeconds = *v
	}
	if v := os.Getenv("DATA_SOURCE"); v != "" {
		c.DataSource = strings.ToLower(v)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		c.Log.Env = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.CORSOrigins = origins
	}
	return nil
}

func (c Config) Validate() error {
	switch c.DataSource {
	case SourceRemote:
		if c.API.BaseURL == "" {
			return fmt.Errorf("API_BASE_URL is required for the %s data source", SourceRemote)
		}
	case SourceMemory:
	default:
		return fmt.Errorf("unknown data source %q", c.DataSource)
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api timeout must be positive")
	}
	if c.Server.WriteTimeoutSeconds < 0 {
		return fmt.Errorf("write timeout must not be negative")
	}
	if c.API.Concurrency < 0 {
		return fmt.Errorf("api concurrency must not be negative")
	}
	if c.Redis.CacheTTLSeconds <= 0 {
		return fmt.Errorf("cache ttl must be positive")
	}
	if c.Session.TokenPath == "" {
		return fmt.Errorf("session token path is required")
	}
	return nil
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// WriteTimeout is the server write deadline, zero when unbounded.
func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.Server.WriteTimeoutSeconds) * time.Second
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.Redis.CacheTTLSeconds) * time.Second
}

func readIntEnv(name string) (*int, error) {
	val := os.Getenv(name)
	if val == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(val)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
