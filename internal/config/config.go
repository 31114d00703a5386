// Package config wraps Viper behind a small accessor type and owns the
// service defaults. Values resolve in the usual precedence order:
// explicit Set > environment (LADLE_ prefix) > config file > defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Keys for the settings the service reads.
const (
	KeyListenAddr     = "server.listen_addr"
	KeyDataDir        = "data.dir"
	KeyPageSize       = "browse.page_size"
	KeyLogLevel       = "log.level"
	KeyRateLimitRPS   = "server.rate_limit_rps"
	KeyRateLimitBurst = "server.rate_limit_burst"
)

// Config provides read access to configuration values.
type Config struct {
	v *viper.Viper
}

// New wraps an existing Viper instance. A nil viper yields a Config that
// returns zero values for every key.
func New(v *viper.Viper) *Config {
	if v == nil {
		v = viper.New()
	}
	return &Config{v: v}
}

// Load builds the service configuration: defaults, then an optional config
// file (empty path skips the file entirely), then LADLE_* environment
// variables. A missing file at an explicit path is an error; everything else
// falls back to defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyListenAddr, ":8080")
	v.SetDefault(KeyDataDir, "data")
	v.SetDefault(KeyPageSize, 10)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyRateLimitRPS, 50)
	v.SetDefault(KeyRateLimitBurst, 100)

	v.SetEnvPrefix("LADLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	return New(v), nil
}

// GetString returns the string value for key.
func (c *Config) GetString(key string) string { return c.v.GetString(key) }

// GetInt returns the int value for key.
func (c *Config) GetInt(key string) int { return c.v.GetInt(key) }

// GetBool returns the bool value for key.
func (c *Config) GetBool(key string) bool { return c.v.GetBool(key) }

// GetDuration returns the duration value for key.
func (c *Config) GetDuration(key string) time.Duration { return c.v.GetDuration(key) }

// GetFloat64 returns the float value for key.
func (c *Config) GetFloat64(key string) float64 { return c.v.GetFloat64(key) }

// IsSet reports whether key has a value from any source.
func (c *Config) IsSet(key string) bool { return c.v.IsSet(key) }

// Sub returns the configuration subtree rooted at key. Missing subtrees
// return an empty Config rather than nil.
func (c *Config) Sub(key string) *Config {
	return New(c.v.Sub(key))
}

// Unmarshal decodes the configuration into target via mapstructure tags.
func (c *Config) Unmarshal(target any) error {
	return c.v.Unmarshal(target)
}

// PageSize returns the browse page size, falling back to 10 when the
// configured value is not positive.
func (c *Config) PageSize() int {
	if n := c.GetInt(KeyPageSize); n > 0 {
		return n
	}
	return 10
}
