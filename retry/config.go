// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/doggedhttp/dogged/backoff"
)

// DefaultMaxRetries is the retry budget of the default policy.
const DefaultMaxRetries = 3

// DefaultStatusForcelist contains the status codes retried when a
// Config does not name its own forcelist: 429 and the retryable 5XX
// family.
var DefaultStatusForcelist = []int{
	http.StatusTooManyRequests,
	http.StatusInternalServerError,
	http.StatusBadGateway,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
}

// A Predicate overrides the status- and error-based retry decision.
//
// Exactly one of resp and err is non-nil. When a response was
// received, the predicate's verdict is authoritative: true retries
// regardless of the status forcelist (even a success status), false
// fails immediately. When an error occurred, true permits a retry
// within the remaining budget and false stops at once.
//
// Predicates must be safe for concurrent use by multiple goroutines.
type Predicate func(resp *http.Response, err error) bool

// A Config is the immutable retry policy for one logical operation.
//
// The zero value is valid and performs no retries. Share one Config
// across operations freely; nothing mutates it after construction.
type Config struct {
	// MaxRetries is the number of retries permitted after the initial
	// attempt. Zero means the initial attempt only.
	MaxRetries int `validate:"gte=0"`

	// StatusForcelist is the set of HTTP status codes treated as
	// retryable. Nil means DefaultStatusForcelist.
	StatusForcelist []int `validate:"omitempty,dive,gte=100,lte=599"`

	// JitterFactor adds uniform random noise of up to
	// JitterFactor * delay on top of each computed delay.
	JitterFactor float64 `validate:"gte=0"`

	// Backoff calculates the base delay before each retry. Nil means
	// backoff.Default.
	Backoff backoff.Strategy `validate:"-"`

	// RetryIf, when set, overrides the status- and error-based retry
	// decision. See Predicate.
	RetryIf Predicate `validate:"-"`

	// MaxTotalTime is a hard ceiling on wall time elapsed across all
	// attempts and waits. Zero means no ceiling.
	MaxTotalTime time.Duration `validate:"omitempty,gt=0"`

	// MaxWaitTime caps any single computed delay, jitter included.
	// Zero means no cap.
	MaxWaitTime time.Duration `validate:"omitempty,gt=0"`
}

// DefaultConfig returns the general-purpose retry policy: up to
// DefaultMaxRetries retries of the DefaultStatusForcelist statuses
// with default exponential backoff.
func DefaultConfig() *Config {
	return &Config{MaxRetries: DefaultMaxRetries}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every numeric field of the config against its valid
// domain. It returns a *InvalidConfigError describing all violations,
// or nil. The client validates the config before making any attempt.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return &InvalidConfigError{err: err}
	}
	return nil
}

// forcelist returns the configured status forcelist or the default.
func (c *Config) forcelist() []int {
	if c.StatusForcelist == nil {
		return DefaultStatusForcelist
	}
	return c.StatusForcelist
}

// strategy returns the configured backoff strategy or the default.
func (c *Config) strategy() backoff.Strategy {
	if c.Backoff == nil {
		return backoff.Default
	}
	return c.Backoff
}

// An InvalidConfigError reports retry policy fields outside their
// valid domains. It is returned before any request attempt is made.
type InvalidConfigError struct {
	err error
}

func (e *InvalidConfigError) Error() string {
	return "retry: invalid config: " + e.err.Error()
}

// Unwrap returns the underlying validation error, typically a
// validator.ValidationErrors listing each offending field.
func (e *InvalidConfigError) Unwrap() error {
	return e.err
}
