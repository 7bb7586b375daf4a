// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/doggedhttp/dogged/retryafter"
)

// A Waiter computes how long to sleep before the next retry of one
// operation.
//
// The base delay comes from the response's Retry-After header when one
// is present and parseable; a server-directed wait always beats the
// client-side backoff strategy. Otherwise the base is the config's
// backoff strategy evaluated at the current attempt. Jitter, when
// configured, adds uniform noise in [0, JitterFactor*base) on top of
// either base, and MaxWaitTime caps the final value.
//
// A Waiter is safe for concurrent use by multiple goroutines; the
// jitter source is serialized internally.
type Waiter struct {
	cfg  *Config
	lock sync.Mutex
	rand *rand.Rand
}

// NewWaiter constructs a Waiter for the given config.
func NewWaiter(cfg *Config) *Waiter {
	return &Waiter{
		cfg:  cfg,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Wait returns the delay to observe after the given zero-based attempt
// failed with resp (which may be nil if the attempt ended in a
// transport error). The result is never negative.
func (w *Waiter) Wait(attempt int, resp *http.Response) time.Duration {
	base, ok := retryafter.FromResponse(resp)
	if !ok {
		base = w.cfg.strategy().Calculate(attempt)
	}

	d := base
	if w.cfg.JitterFactor > 0 && base > 0 {
		w.lock.Lock()
		f := w.rand.Float64()
		w.lock.Unlock()
		d += time.Duration(f * w.cfg.JitterFactor * float64(base))
	}

	if w.cfg.MaxWaitTime > 0 && d > w.cfg.MaxWaitTime {
		d = w.cfg.MaxWaitTime
	}
	if d < 0 {
		d = 0
	}
	return d
}
