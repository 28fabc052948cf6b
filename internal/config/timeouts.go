package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds the timeout and retry settings for AWS API access.
type Timeouts struct {
	Describe          time.Duration // Overall timeout for describing a cluster
	RetryMaxAttempts  int           // Attempts per API call, including the first
	RetryInitialDelay time.Duration // Delay before the first retry
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - EKSBP_TIMEOUT_DESCRIBE (default: 2m)
//   - EKSBP_RETRY_MAX_ATTEMPTS (default: 5)
//   - EKSBP_RETRY_INITIAL_DELAY (default: 500ms)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Describe:          parseDuration("EKSBP_TIMEOUT_DESCRIBE", 2*time.Minute),
		RetryMaxAttempts:  parseInt("EKSBP_RETRY_MAX_ATTEMPTS", 5),
		RetryInitialDelay: parseDuration("EKSBP_RETRY_INITIAL_DELAY", 500*time.Millisecond),
	}
}

func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}

	return d
}

func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil || i <= 0 {
		return defaultVal
	}

	return i
}
