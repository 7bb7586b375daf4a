// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dogged

import (
	"fmt"
	"net/http"

	"github.com/doggedhttp/dogged/transient"
)

// A Kind discriminates the terminal failure modes of an operation.
type Kind int

const (
	// KindNonRetryableStatus means a response status outside the
	// forcelist (or vetoed by the retry predicate) failed the
	// operation immediately, regardless of remaining budget.
	KindNonRetryableStatus Kind = iota
	// KindRetriesExhausted means every attempt drew a retryable
	// status and the retry budget ran out.
	KindRetriesExhausted
	// KindTransportExhausted means every attempt ended in a transport
	// error and the budget or predicate ran out.
	KindTransportExhausted
	// KindTimeBudgetExceeded means the policy's MaxTotalTime elapsed
	// before a terminal outcome.
	KindTimeBudgetExceeded
	// KindCancelled means the plan's context was cancelled or its
	// deadline expired mid-operation.
	KindCancelled
)

var kindNames = []string{
	"NonRetryableStatus",
	"RetriesExhausted",
	"TransportExhausted",
	"TimeBudgetExceeded",
	"Cancelled",
}

// String returns the kind name.
func (k Kind) String() string {
	return kindNames[k]
}

// An Error is the single structured error type for every terminal
// operation failure. Branch on Kind, StatusCode, or the wrapped Cause
// rather than parsing the message.
type Error struct {
	// Kind is the failure mode.
	Kind Kind
	// Method and URL identify the failed operation.
	Method string
	URL    string
	// Message is a short human-readable description.
	Message string
	// StatusCode is the status of the most recent response, or zero
	// if no response was involved in the failure.
	StatusCode int
	// Response is the most recent response, when one was observed.
	// Its body has been drained and closed; status and headers remain
	// readable.
	Response *http.Response
	// Cause is the underlying error, when one was observed.
	Cause error
}

func (e *Error) Error() string {
	s := fmt.Sprintf("dogged: %s %q: %s", e.Method, e.URL, e.Message)
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Timeout reports whether the failure's cause is timeout-class.
func (e *Error) Timeout() bool {
	return transient.Categorize(e.Cause) == transient.Timeout
}
