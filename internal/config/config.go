// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemberDash Contributors

// Package config loads server configuration from defaults, a YAML file,
// command-line flags and environment fallbacks.
package config

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/memberdash/memberdash/internal/auth"
	"github.com/memberdash/memberdash/internal/logging"
	"github.com/memberdash/memberdash/internal/store"
)

// Environment variables consulted when the corresponding key is unset.
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvJWTSecret   = "JWT_SECRET"
)

// Default values.
const (
	DefaultServerAddr   = ":8080"
	DefaultMetricsAddr  = "127.0.0.1:9100"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 10 * time.Second
	DefaultLogFormat    = "json"
	DefaultLogLevel     = "info"
)

// Config is the complete server configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	Database DatabaseConfig `koanf:"database"`
	Auth     AuthConfig     `koanf:"auth"`
	Log      LogConfig      `koanf:"log"`
}

// ServerConfig configures the public HTTP API.
type ServerConfig struct {
	Addr         string        `koanf:"addr"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

// MetricsConfig configures the metrics and health endpoint. An empty Addr
// disables it.
type MetricsConfig struct {
	Addr string `koanf:"addr"`
}

// DatabaseConfig configures the PostgreSQL connection.
type DatabaseConfig struct {
	URL            string `koanf:"url"`
	ConnectRetries uint64 `koanf:"connect_retries"`
	AutoMigrate    bool   `koanf:"auto_migrate"`
}

// AuthConfig configures password hashing and session tokens.
type AuthConfig struct {
	Secret              string        `koanf:"secret"`
	TokenTTL            time.Duration `koanf:"token_ttl"`
	ConcealUnknownEmail bool          `koanf:"conceal_unknown_email"`
	Argon2              Argon2Config  `koanf:"argon2"`
}

// Argon2Config holds the argon2id cost parameters for new hashes.
type Argon2Config struct {
	Memory  uint32 `koanf:"memory"`
	Time    uint32 `koanf:"time"`
	Threads uint8  `koanf:"threads"`
}

// Params converts the configuration to hasher parameters, keeping the
// default salt and key lengths.
func (a Argon2Config) Params() auth.Argon2Params {
	params := auth.DefaultArgon2Params()
	params.Memory = a.Memory
	params.Time = a.Time
	params.Threads = a.Threads
	return params
}

// LogConfig configures the process logger.
type LogConfig struct {
	Format string `koanf:"format"`
	Level  string `koanf:"level"`
}

// Defaults returns the configuration used for keys that no source sets.
func Defaults() Config {
	params := auth.DefaultArgon2Params()
	return Config{
		Server: ServerConfig{
			Addr:         DefaultServerAddr,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
		},
		Metrics: MetricsConfig{Addr: DefaultMetricsAddr},
		Database: DatabaseConfig{
			ConnectRetries: store.DefaultConnectRetries,
			AutoMigrate:    true,
		},
		Auth: AuthConfig{
			TokenTTL: auth.DefaultTokenTTL,
			Argon2: Argon2Config{
				Memory:  params.Memory,
				Time:    params.Time,
				Threads: params.Threads,
			},
		},
		Log: LogConfig{Format: DefaultLogFormat, Level: DefaultLogLevel},
	}
}

// flagKeys maps command-line flag names to configuration keys. Flags not
// listed here are not configuration.
var flagKeys = map[string]string{
	"addr":          "server.addr",
	"metrics-addr":  "metrics.addr",
	"database-url":  "database.url",
	"auto-migrate":  "database.auto_migrate",
	"token-ttl":     "auth.token_ttl",
	"log-format":    "log.format",
	"log-level":     "log.level",
	"read-timeout":  "server.read_timeout",
	"write-timeout": "server.write_timeout",
}

// RegisterServeFlags adds the serve command flags to fs.
func RegisterServeFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.String("addr", d.Server.Addr, "HTTP API listen address")
	fs.String("metrics-addr", d.Metrics.Addr, "metrics/health HTTP address (empty = disabled)")
	fs.Duration("read-timeout", d.Server.ReadTimeout, "HTTP read timeout")
	fs.Duration("write-timeout", d.Server.WriteTimeout, "HTTP write timeout")
	fs.Bool("auto-migrate", d.Database.AutoMigrate, "apply pending migrations on startup")
	fs.Duration("token-ttl", d.Auth.TokenTTL, "session token lifetime")
	RegisterLogFlags(fs)
}

// RegisterLogFlags adds the logging flags to fs.
func RegisterLogFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.String("log-format", d.Log.Format, "log format (json or text)")
	fs.String("log-level", d.Log.Level, "log level (debug, info, warn or error)")
}

// Load builds a Config. Sources are applied in order: Defaults, the YAML file
// at path (if non-empty), flags in fs (if non-nil), then getenv for
// database.url and auth.secret when they are still empty. Load does not
// validate; callers pick Validate or ValidateDatabase.
func Load(path string, fs *pflag.FlagSet, getenv func(string) string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").With("path", path).Wrap(err)
		}
	}

	if fs != nil {
		provider := posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(fs, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").With("source", "flags").Wrap(err)
		}
	}

	cfg := Defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.Code("CONFIG_LOAD_FAILED").With("path", path).Wrap(err)
	}

	if getenv != nil {
		if cfg.Database.URL == "" {
			cfg.Database.URL = getenv(EnvDatabaseURL)
		}
		if cfg.Auth.Secret == "" {
			cfg.Auth.Secret = getenv(EnvJWTSecret)
		}
	}

	return &cfg, nil
}

// Validate checks everything the serve command needs.
func (c *Config) Validate() error {
	err := validation.Errors{
		"server": validation.ValidateStruct(&c.Server,
			validation.Field(&c.Server.Addr, validation.Required),
			validation.Field(&c.Server.ReadTimeout, validation.Min(time.Duration(0))),
			validation.Field(&c.Server.WriteTimeout, validation.Min(time.Duration(0))),
		),
		"database": c.validateDatabase(),
		"auth": validation.ValidateStruct(&c.Auth,
			validation.Field(&c.Auth.Secret, validation.Required.Error("is required (set auth.secret or "+EnvJWTSecret+")")),
			validation.Field(&c.Auth.TokenTTL, validation.Required, validation.Min(time.Second)),
		),
		"log": c.validateLog(),
	}.Filter()
	if err != nil {
		return oops.Code("CONFIG_INVALID").Wrap(err)
	}

	if err := c.Auth.Argon2.Params().Validate(); err != nil {
		return oops.Code("CONFIG_INVALID").With("key", "auth.argon2").Wrap(err)
	}
	return nil
}

// ValidateDatabase checks only what the migrate command needs.
func (c *Config) ValidateDatabase() error {
	err := validation.Errors{
		"database": c.validateDatabase(),
		"log":      c.validateLog(),
	}.Filter()
	if err != nil {
		return oops.Code("CONFIG_INVALID").Wrap(err)
	}
	return nil
}

func (c *Config) validateDatabase() error {
	return validation.ValidateStruct(&c.Database,
		validation.Field(&c.Database.URL, validation.Required.Error("is required (set database.url or "+EnvDatabaseURL+")")),
	)
}

func (c *Config) validateLog() error {
	return validation.ValidateStruct(&c.Log,
		validation.Field(&c.Log.Format, validation.In("json", "text")),
		validation.Field(&c.Log.Level, validation.By(func(value any) error {
			_, err := logging.ParseLevel(value.(string))
			return err
		})),
	)
}
