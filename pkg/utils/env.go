package utils

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func GetEnvTrimmed(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func GetEnvTrimmedOrDefault(key, defaultValue string) string {
	if v := GetEnvTrimmed(key); v != "" {
		return v
	}

	return defaultValue
}

// GetEnvPositiveInt falls back to defaultValue when key is unset, unparsable or not above zero.
func GetEnvPositiveInt(key string, defaultValue int) int {
	parsed, err := strconv.Atoi(GetEnvTrimmed(key))
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func GetEnvPositiveInt64(key string, defaultValue int64) int64 {
	parsed, err := strconv.ParseInt(GetEnvTrimmed(key), 10, 64)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

// GetEnvPositiveDuration accepts time.ParseDuration syntax ("90s", "1h").
func GetEnvPositiveDuration(key string, defaultValue time.Duration) time.Duration {
	parsed, err := time.ParseDuration(GetEnvTrimmed(key))
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func GetEnvBool(key string, defaultValue bool) bool {
	parsed, err := strconv.ParseBool(GetEnvTrimmed(key))
	if err != nil {
		return defaultValue
	}
	return parsed
}
