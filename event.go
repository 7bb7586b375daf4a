// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dogged

import (
	"net/http"
	"time"
)

// Attempt numbers in all event records are one-based: the initial
// attempt is reported as 1. (Internally the executor counts from
// zero; the records exist for human-facing observers.)

// A RequestEvent describes an attempt that is about to be made. It is
// passed to the OnRequest callback before every attempt, including
// retries.
type RequestEvent struct {
	// Method is the HTTP method of the operation.
	Method string
	// URL is the URL being requested.
	URL string
	// Attempt is the one-based number of the attempt about to start.
	Attempt int
	// MaxRetries is the operation's retry budget.
	MaxRetries int
}

// A ResponseEvent describes a terminal success. It is passed to the
// OnSuccess callback exactly once per successful operation.
type ResponseEvent struct {
	Method string
	URL    string
	// Attempt is the one-based number of the attempt that succeeded.
	Attempt    int
	MaxRetries int
	// Response is the successful response. Its body has not been
	// consumed; callbacks must not read or close it.
	Response *http.Response
	// TotalTime is the wall time elapsed over the whole operation.
	TotalTime time.Duration
}

// A RetryEvent describes an imminent retry. It is passed to the
// OnRetry callback after a retryable outcome, before the wait.
type RetryEvent struct {
	Method string
	URL    string
	// Attempt is the one-based number of the upcoming attempt, the
	// retry being announced, not the attempt that just failed.
	Attempt    int
	MaxRetries int
	// WaitTime is the computed delay before the upcoming attempt.
	WaitTime time.Duration
	// Err is the transport error that triggered the retry, or nil if
	// the trigger was a retryable status code.
	Err error
	// StatusCode is the retryable status that triggered the retry, or
	// zero if the trigger was a transport error.
	StatusCode int
}

// A FailureEvent describes a terminal failure. It is passed to the
// OnFailure callback exactly once per failed operation, immediately
// before the error is returned to the caller.
type FailureEvent struct {
	Method string
	URL    string
	// Attempt is the one-based number of the final attempt.
	Attempt    int
	MaxRetries int
	// Err is the error about to be returned, always a *Error.
	Err error
	// StatusCode is the status of the final response, or zero if the
	// final attempt ended in a transport error.
	StatusCode int
	// TotalTime is the wall time elapsed over the whole operation.
	TotalTime time.Duration
}
