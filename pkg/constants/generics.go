package constants

import "time"

// Router-wide rate limit applied to every route per client IP.
const (
	DefaultRateLimitRequests      = 100
	DefaultRateLimitWindowMinutes = 1
)

func DefaultRateLimitWindow() time.Duration {
	return time.Duration(DefaultRateLimitWindowMinutes) * time.Minute
}

// Contact inquiries allowed per submitter identity within one window.
const (
	DefaultContactRateLimitRequests = 5
	DefaultContactRateLimitWindow   = time.Hour
)

const (
	DefaultSMTPHost        = "smtp.gmail.com"
	DefaultSMTPPort        = 587
	DefaultMailSendTimeout = 15 * time.Second
)

// FallbackContactAddress is shown to visitors when an inquiry cannot be relayed.
const FallbackContactAddress = "fahicartmv@gmail.com"
