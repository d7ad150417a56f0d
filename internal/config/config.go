package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix     = "LEDGER_"
	configFileEnv = "LEDGER_CONFIG_FILE"

	// DevelopmentJWTSecret is the default signing secret. Deployments override it.
	DevelopmentJWTSecret = "local-development-secret"
)

type Config struct {
	HTTP     HTTPConfig     `koanf:"http"`
	Postgres PostgresConfig `koanf:"postgres"`
	Ledger   LedgerConfig   `koanf:"ledger"`
	Auth     AuthConfig     `koanf:"auth"`
	Redis    RedisConfig    `koanf:"redis"`
	Log      LogConfig      `koanf:"log"`
}

type HTTPConfig struct {
	Port              string        `koanf:"port"`
	ReadTimeout       time.Duration `koanf:"readtimeout"`
	WriteTimeout      time.Duration `koanf:"writetimeout"`
	IdleTimeout       time.Duration `koanf:"idletimeout"`
	ReadHeaderTimeout time.Duration `koanf:"readheadertimeout"`
}

type PostgresConfig struct {
	Address  string `koanf:"address"`
	Port     string `koanf:"port"`
	DB       string `koanf:"db"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	SSLMode  string `koanf:"sslmode"`
}

// LedgerConfig tunes the write path.
type LedgerConfig struct {
	StoreTimeout        time.Duration `koanf:"storetimeout"`
	Workers             int           `koanf:"workers"`
	QueueSize           int           `koanf:"queuesize"`
	AllowResolvedDelete bool          `koanf:"allowresolveddelete"`
	MigrateOnStart      bool          `koanf:"migrateonstart"`
}

type AuthConfig struct {
	JWTSecret     string        `koanf:"jwtsecret"`
	Issuer        string        `koanf:"issuer"`
	TokenDuration time.Duration `koanf:"tokenduration"`
}

// RedisConfig enables the franchisee profile cache when Address is set.
type RedisConfig struct {
	Address  string        `koanf:"address"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"`
	TTL      time.Duration `koanf:"ttl"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

// In all cases the default behavior should be for the docker compose setup
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"http.port":              "9446",
		"http.readtimeout":       30 * time.Second,
		"http.writetimeout":      30 * time.Second,
		"http.idletimeout":       10 * time.Second,
		"http.readheadertimeout": 10 * time.Second,

		"postgres.address":  "localhost",
		"postgres.port":     "5433",
		"postgres.db":       "postgres",
		"postgres.username": "postgres",
		"postgres.password": "testpassword",
		"postgres.sslmode":  "disable",

		"ledger.storetimeout":        5 * time.Second,
		"ledger.workers":             4,
		"ledger.queuesize":           1000,
		"ledger.allowresolveddelete": true,
		"ledger.migrateonstart":      false,

		"auth.jwtsecret":     DevelopmentJWTSecret,
		"auth.issuer":        "franchise-ledger",
		"auth.tokenduration": 24 * time.Hour,

		"redis.address": "",
		"redis.db":      0,
		"redis.ttl":     5 * time.Minute,

		"log.level": "info",
	}
}

// ProcessEnvironmentVariables loads the configuration file named by LEDGER_CONFIG_FILE,
// if any, and the LEDGER_ environment on top of the defaults.
func ProcessEnvironmentVariables() (*Config, error) {
	return Load(os.Getenv(configFileEnv))
}

// Load layers defaults, the optional YAML file at path, then the environment.
// LEDGER_POSTGRES_ADDRESS maps to postgres.address.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		if s == configFileEnv {
			return ""
		}
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Port == "" {
		errs = append(errs, errors.New("http.port is required"))
	}
	if c.Postgres.Address == "" || c.Postgres.DB == "" {
		errs = append(errs, errors.New("postgres.address and postgres.db are required"))
	}
	if c.Ledger.StoreTimeout <= 0 {
		errs = append(errs, errors.New("ledger.storetimeout must be positive"))
	}
	if c.Ledger.Workers < 1 {
		errs = append(errs, errors.New("ledger.workers must be at least 1"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwtsecret is required"))
	}
	if c.Redis.Address != "" && c.Redis.TTL <= 0 {
		errs = append(errs, errors.New("redis.ttl must be positive when redis is enabled"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// ConnectionString is the lib/pq URL for the configured database.
func (p PostgresConfig) ConnectionString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.Username, p.Password),
		Host:     p.Address + ":" + p.Port,
		Path:     "/" + p.DB,
		RawQuery: "sslmode=" + p.SSLMode,
	}
	return u.String()
}
