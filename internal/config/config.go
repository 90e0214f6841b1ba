// Package config loads Barrelman configuration from defaults, an optional
// TOML file and BARRELMAN_* environment variables, in increasing precedence.
package config

import (
	"slices"
	"strings"
	"time"

	"barrelman/internal/blob"
	"barrelman/internal/core"
	"barrelman/internal/logger"
	"barrelman/pkg/domain"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override: storage.driver is read
// from BARRELMAN_STORAGE_DRIVER.
const EnvPrefix = "BARRELMAN"

// Config is the full process configuration.
type Config struct {
	Log         LogConfig          `mapstructure:"log"`
	Storage     core.StorageConfig `mapstructure:"storage"`
	Entity      EntityConfig       `mapstructure:"entity"`
	Blob        blob.Config        `mapstructure:"blob"`
	Replication ReplicationConfig  `mapstructure:"replication"`
	Redis       RedisConfig        `mapstructure:"redis"`
	Service     ServiceConfig      `mapstructure:"service"`
}

// LogConfig selects the logger output.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// EntityConfig holds entity behaviour switches.
type EntityConfig struct {
	// BinaryEquality is "reference" or "content".
	BinaryEquality string `mapstructure:"binary_equality"`
}

// ReplicationConfig drives the change pump.
type ReplicationConfig struct {
	Name      string        `mapstructure:"name"`
	BatchSize int           `mapstructure:"batch_size"`
	Interval  time.Duration `mapstructure:"interval"`
	Prefix    string        `mapstructure:"prefix"`
	// Sinks lists the enabled sinks: "blob", "redis".
	Sinks []string `mapstructure:"sinks"`
	// Cursors is "memory" or "redis".
	Cursors string `mapstructure:"cursors"`
}

// RedisConfig addresses the Redis server used by the stream sink and the
// cursor store.
type RedisConfig struct {
	Addr         string `mapstructure:"addr"`
	Password     string `mapstructure:"password"`
	DB           int    `mapstructure:"db"`
	Stream       string `mapstructure:"stream"`
	MaxLen       int64  `mapstructure:"max_len"`
	CursorPrefix string `mapstructure:"cursor_prefix"`
}

// ServiceConfig tunes the service facade.
type ServiceConfig struct {
	MaxAttempts int `mapstructure:"max_attempts"`
	// Metrics is "none", "expvar" or "prometheus".
	Metrics string `mapstructure:"metrics"`
	// TraceFile receives JSON-lines spans when set.
	TraceFile string `mapstructure:"trace_file"`
}

// New returns a viper instance with defaults and environment binding. path,
// when set, names a TOML file merged over the defaults.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
	}
	return v, nil
}

// Load reads and validates the configuration.
func Load(path string) (*Config, error) {
	v, err := New(path)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// LoadWithViper decodes and validates v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the components would refuse later.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(err, "log.level %q", c.Log.Level)
	}
	switch core.StorageDriver(c.Storage.Driver) {
	case "", core.StorageMemory, core.StorageSQLite, core.StoragePostgres:
	default:
		return errors.Newf("storage.driver %q: want memory, sqlite or postgres", c.Storage.Driver)
	}
	if _, err := c.BinaryEquality(); err != nil {
		return errors.Wrap(err, "entity.binary_equality")
	}
	for _, s := range c.Replication.Sinks {
		if !slices.Contains([]string{"blob", "redis"}, strings.TrimSpace(s)) {
			return errors.Newf("replication.sinks: unknown sink %q", s)
		}
	}
	switch c.Replication.Cursors {
	case "memory", "redis":
	default:
		return errors.Newf("replication.cursors %q: want memory or redis", c.Replication.Cursors)
	}
	if c.Replication.BatchSize <= 0 {
		return errors.Newf("replication.batch_size must be positive, got %d", c.Replication.BatchSize)
	}
	switch c.Service.Metrics {
	case "none", "expvar", "prometheus":
	default:
		return errors.Newf("service.metrics %q: want none, expvar or prometheus", c.Service.Metrics)
	}
	return nil
}

// BinaryEquality returns the configured buffer comparison policy.
func (c *Config) BinaryEquality() (domain.BinaryEquality, error) {
	return domain.ParseBinaryEquality(c.Entity.BinaryEquality)
}
