// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"net/http"
)

// A Verdict is the outcome of classifying a received HTTP response.
type Verdict int

const (
	// Succeed means the response is a terminal success; return it.
	Succeed Verdict = iota
	// Retry means the response is retryable; the executor still
	// enforces the attempt budget before actually retrying.
	Retry
	// Fail means the response is a non-retryable failure; fail
	// immediately regardless of remaining budget.
	Fail
)

var verdictNames = []string{"Succeed", "Retry", "Fail"}

// String returns the verdict name.
func (v Verdict) String() string {
	return verdictNames[v]
}

// DecideResponse classifies a response received from the transport.
//
// A status below 400 succeeds unless cfg.RetryIf forces a retry. For
// 400 and above, cfg.RetryIf is authoritative when present; otherwise
// membership in the status forcelist decides between Retry and Fail.
//
// DecideResponse deliberately ignores the attempt count: the executor
// enforces the retry budget separately on the response path, so that a
// non-retryable status fails immediately even with budget remaining.
func DecideResponse(cfg *Config, resp *http.Response) Verdict {
	if resp.StatusCode < 400 {
		if cfg.RetryIf != nil && cfg.RetryIf(resp, nil) {
			return Retry
		}
		return Succeed
	}
	if cfg.RetryIf != nil {
		if cfg.RetryIf(resp, nil) {
			return Retry
		}
		return Fail
	}
	for _, s := range cfg.forcelist() {
		if s == resp.StatusCode {
			return Retry
		}
	}
	return Fail
}

// DecideError reports whether to retry after a transport error on the
// given zero-based attempt.
//
// With no predicate configured, every transport error is retried while
// budget remains; the executor only routes transport-level failures
// here, never programming errors. With a predicate, its verdict is
// required in addition to remaining budget.
func DecideError(cfg *Config, err error, attempt int) bool {
	if cfg.RetryIf != nil && !cfg.RetryIf(nil, err) {
		return false
	}
	return attempt < cfg.MaxRetries
}
