package config

import (
	"bytes"
	"errors"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Viper is a Config implementation backed by github.com/spf13/viper with
// live reload on file change.
type Viper struct {
	v *viper.Viper
}

// NewViper loads configuration from the given file and watches it for changes.
// The format is inferred from the filename extension.
func NewViper(pathFile string) (*Viper, error) {
	v := viper.New()

	filename := path.Base(pathFile)
	name := filename[:len(filename)-len(path.Ext(filename))]

	v.AddConfigPath(path.Dir(pathFile))
	v.SetConfigName(name)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(_ fsnotify.Event) {
		if err := v.ReadInConfig(); err != nil {
			slog.Error("config reload failed", "path", pathFile, "error", err)
			return
		}
		slog.Info("config reloaded", "path", pathFile)
	})
	v.WatchConfig()

	return &Viper{v: v}, nil
}

// NewViperFromBytes loads configuration from memory; configType must be a
// format viper understands ("yaml", "json", ...). Used by tests.
func NewViperFromBytes(configType string, data []byte) (*Viper, error) {
	if strings.TrimSpace(configType) == "" {
		return nil, errors.New("config type is required")
	}

	v := viper.New()
	v.SetConfigType(configType)

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	return &Viper{v: v}, nil
}

// GetString returns the value for key as a string.
func (c *Viper) GetString(key string) string {
	return c.v.GetString(key)
}

// GetBool returns the value for key as a bool.
func (c *Viper) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetInt returns the value for key as an int.
func (c *Viper) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetInt32 returns the value for key as an int32.
func (c *Viper) GetInt32(key string) int32 {
	return c.v.GetInt32(key)
}

// GetInt64 returns the value for key as an int64.
func (c *Viper) GetInt64(key string) int64 {
	return c.v.GetInt64(key)
}

// GetUint returns the value for key as a uint.
func (c *Viper) GetUint(key string) uint {
	return c.v.GetUint(key)
}

// GetUint16 returns the value for key as a uint16.
func (c *Viper) GetUint16(key string) uint16 {
	return uint16(c.v.GetUint(key))
}

// GetFloat64 returns the value for key as a float64.
func (c *Viper) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

// GetSecond interprets the integer value for key as seconds.
func (c *Viper) GetSecond(key string) time.Duration {
	return time.Duration(c.v.GetInt64(key)) * time.Second
}

// GetMinute interprets the integer value for key as minutes.
func (c *Viper) GetMinute(key string) time.Duration {
	return time.Duration(c.v.GetInt64(key)) * time.Minute
}

// GetHour interprets the integer value for key as hours.
func (c *Viper) GetHour(key string) time.Duration {
	return time.Duration(c.v.GetInt64(key)) * time.Hour
}

// GetDay interprets the integer value for key as days.
func (c *Viper) GetDay(key string) time.Duration {
	return time.Duration(c.v.GetInt64(key)) * 24 * time.Hour
}

// GetArray returns the comma-separated value for key as a string slice.
func (c *Viper) GetArray(key string) []string {
	raw := strings.TrimSpace(c.v.GetString(key))
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// Close implements io.Closer; viper holds no closable resources.
func (c *Viper) Close() error {
	return nil
}
