// Package config abstracts runtime configuration lookup.
//
// Keys are dotted paths (e.g. "modules.identity.otp_ttl_minutes"). Getters
// never fail; a missing key yields the type's zero value, so defaults must be
// applied by the caller where zero is not acceptable.
package config

import (
	"io"
	"time"
)

// Config is the read surface the application depends on.
type Config interface {
	io.Closer

	// GetString returns the value for key as a string.
	GetString(key string) string
	// GetBool returns the value for key as a bool.
	GetBool(key string) bool
	// GetInt returns the value for key as an int.
	GetInt(key string) int
	// GetInt32 returns the value for key as an int32.
	GetInt32(key string) int32
	// GetInt64 returns the value for key as an int64.
	GetInt64(key string) int64
	// GetUint returns the value for key as a uint.
	GetUint(key string) uint
	// GetUint16 returns the value for key as a uint16.
	GetUint16(key string) uint16
	// GetFloat64 returns the value for key as a float64.
	GetFloat64(key string) float64

	// GetSecond interprets the integer value for key as a number of seconds.
	GetSecond(key string) time.Duration
	// GetMinute interprets the integer value for key as a number of minutes.
	GetMinute(key string) time.Duration
	// GetHour interprets the integer value for key as a number of hours.
	GetHour(key string) time.Duration
	// GetDay interprets the integer value for key as a number of days.
	GetDay(key string) time.Duration

	// GetArray returns the comma-separated value for key as a string slice.
	GetArray(key string) []string
}
