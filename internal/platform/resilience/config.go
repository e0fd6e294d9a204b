package resilience

import "time"

// CircuitBreakerConfig is carried through client configs so callers
// can tune or disable the breaker per dependency.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// NormalizeCircuitBreakerConfig replaces out-of-range fields with the
// defaults, leaving Enabled as given.
func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()

	out := cfg
	if out.FailureThreshold < 1 {
		out.FailureThreshold = defaults.FailureThreshold
	}
	if out.OpenTimeout <= 0 {
		out.OpenTimeout = defaults.OpenTimeout
	}
	if out.HalfOpenMaxReq < 1 {
		out.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}

	return out
}
