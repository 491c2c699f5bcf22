package publisher

import (
	"math"
	"math/rand"
	"time"

	"github.com/jeffleon2/draftea-checkout-service/config"
)

// Backoff is the delay before retry number attempt+1: exponential on BaseDelay,
// capped at MaxDelay, with up to ±15% jitter.
func Backoff(retryConfig config.RetryConfig, attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * retryConfig.BaseDelay

	if delay > retryConfig.MaxDelay {
		delay = retryConfig.MaxDelay
	}

	if retryConfig.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}

// WithDefaults fills the zero fields of a retry policy.
func WithDefaults(retryConfig config.RetryConfig) config.RetryConfig {
	if retryConfig.MaxAttempts == 0 {
		retryConfig.MaxAttempts = 5
	}
	if retryConfig.BaseDelay == 0 {
		retryConfig.BaseDelay = 100 * time.Millisecond
	}
	if retryConfig.MaxDelay == 0 {
		retryConfig.MaxDelay = 10 * time.Second
	}
	return retryConfig
}
