package config

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. A missing default file is not an error.
const DefaultPath = "devfolio.yaml"

// EnvPrefix prefixes every environment override, e.g. DEVFOLIO_STORE_DRIVER.
const EnvPrefix = "DEVFOLIO_"

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Config is the application configuration.
type Config struct {
	Log        LogConfig        `yaml:"log" json:"log"`
	Server     ServerConfig     `yaml:"server" json:"server"`
	Store      StoreConfig      `yaml:"store" json:"store"`
	Validation ValidationConfig `yaml:"validation" json:"validation"`
}

type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

type ServerConfig struct {
	Addr              string        `yaml:"addr" json:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" json:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout"`
	// MaxBodyBytes caps request bodies on the HTTP API.
	MaxBodyBytes int64 `yaml:"max_body_bytes" json:"max_body_bytes"`
}

type StoreConfig struct {
	Driver   string         `yaml:"driver" json:"driver"`
	Dir      string         `yaml:"dir" json:"dir"`
	Redis    RedisConfig    `yaml:"redis" json:"redis"`
	Postgres PostgresConfig `yaml:"postgres" json:"postgres"`
	// Redact masks contact fields (email, phone) before they reach the store.
	Redact bool `yaml:"redact" json:"redact"`
	// EncryptionKey is a hex-encoded 32-byte AES key. Empty disables encryption.
	EncryptionKey string `yaml:"encryption_key" json:"encryption_key"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr" json:"addr"`
	Password string        `yaml:"password" json:"password"`
	DB       int           `yaml:"db" json:"db"`
	Prefix   string        `yaml:"prefix" json:"prefix"`
	TTL      time.Duration `yaml:"ttl" json:"ttl"`
}

type PostgresConfig struct {
	DSN   string `yaml:"dsn" json:"dsn"`
	Table string `yaml:"table" json:"table"`
}

type ValidationConfig struct {
	// UnknownKeys is passthrough, strip or reject.
	UnknownKeys string `yaml:"unknown_keys" json:"unknown_keys"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			MaxBodyBytes:      1 << 20,
		},
		Store: StoreConfig{
			Driver: DriverMemory,
			Dir:    filepath.Join(".devfolio", "portfolios"),
			Redis:  RedisConfig{Addr: "localhost:6379"},
		},
		Validation: ValidationConfig{UnknownKeys: "passthrough"},
	}
}

// Load reads path (YAML, or JSON by extension) over the defaults and applies
// environment overrides. An empty path means DefaultPath, which may be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(path, data, &cfg); err != nil {
			return cfg, err
		}
	case os.IsNotExist(err) && !explicit:
		// No config file: defaults plus environment.
	default:
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides cfg from DEVFOLIO_* variables.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"LOG_LEVEL":               &cfg.Log.Level,
		"LOG_FORMAT":              &cfg.Log.Format,
		"SERVER_ADDR":             &cfg.Server.Addr,
		"STORE_DRIVER":            &cfg.Store.Driver,
		"STORE_DIR":               &cfg.Store.Dir,
		"STORE_ENCRYPTION_KEY":    &cfg.Store.EncryptionKey,
		"REDIS_ADDR":              &cfg.Store.Redis.Addr,
		"REDIS_PASSWORD":          &cfg.Store.Redis.Password,
		"REDIS_PREFIX":            &cfg.Store.Redis.Prefix,
		"POSTGRES_DSN":            &cfg.Store.Postgres.DSN,
		"POSTGRES_TABLE":          &cfg.Store.Postgres.Table,
		"VALIDATION_UNKNOWN_KEYS": &cfg.Validation.UnknownKeys,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	if v, ok := lookup(EnvPrefix + "REDIS_DB"); ok {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sREDIS_DB: %w", EnvPrefix, err)
		}
		cfg.Store.Redis.DB = db
	}
	if v, ok := lookup(EnvPrefix + "REDIS_TTL"); ok {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sREDIS_TTL: %w", EnvPrefix, err)
		}
		cfg.Store.Redis.TTL = ttl
	}
	if v, ok := lookup(EnvPrefix + "STORE_REDACT"); ok {
		redact, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sSTORE_REDACT: %w", EnvPrefix, err)
		}
		cfg.Store.Redact = redact
	}
	return nil
}

// Validate checks the values Load cannot type-check.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverFile, DriverRedis:
	case DriverPostgres:
		if c.Store.Postgres.DSN == "" {
			return fmt.Errorf("store.postgres.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown store driver %q (want memory, file, redis or postgres)", c.Store.Driver)
	}
	if c.Store.EncryptionKey != "" {
		if _, err := c.Store.Key(); err != nil {
			return err
		}
	}
	return nil
}

// Key decodes the encryption key. It returns nil when encryption is off.
func (s StoreConfig) Key() ([]byte, error) {
	if s.EncryptionKey == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(s.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("store.encryption_key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("store.encryption_key: got %d bytes, want 32", len(key))
	}
	return key, nil
}
