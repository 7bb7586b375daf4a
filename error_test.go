// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dogged

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		e := &Error{
			Kind:    KindNonRetryableStatus,
			Method:  "GET",
			URL:     "http://test.local/x",
			Message: "non-retryable status 404",
		}
		assert.Equal(t, `dogged: GET "http://test.local/x": non-retryable status 404`, e.Error())
	})
	t.Run("with cause", func(t *testing.T) {
		e := &Error{
			Kind:    KindTransportExhausted,
			Method:  "POST",
			URL:     "http://test.local/x",
			Message: "request failed after 2 attempt(s)",
			Cause:   errors.New("dial refused"),
		}
		assert.Equal(t,
			`dogged: POST "http://test.local/x": request failed after 2 attempt(s): dial refused`,
			e.Error())
	})
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	e := &Error{Kind: KindTransportExhausted, Cause: cause}
	assert.ErrorIs(t, e, cause)
	assert.Nil(t, (&Error{Kind: KindRetriesExhausted}).Unwrap())
}

func TestErrorTimeout(t *testing.T) {
	t.Run("timeout cause", func(t *testing.T) {
		e := &Error{Kind: KindTransportExhausted, Cause: &timeoutCause{}}
		assert.True(t, e.Timeout())
	})
	t.Run("other cause", func(t *testing.T) {
		e := &Error{Kind: KindTransportExhausted, Cause: errors.New("x")}
		assert.False(t, e.Timeout())
	})
	t.Run("no cause", func(t *testing.T) {
		e := &Error{Kind: KindRetriesExhausted, Response: &http.Response{StatusCode: 503}}
		assert.False(t, e.Timeout())
	})
}

type timeoutCause struct{}

func (*timeoutCause) Error() string { return "deadline exceeded" }
func (*timeoutCause) Timeout() bool { return true }

func TestKindString(t *testing.T) {
	assert.Equal(t, "NonRetryableStatus", KindNonRetryableStatus.String())
	assert.Equal(t, "RetriesExhausted", KindRetriesExhausted.String())
	assert.Equal(t, "TransportExhausted", KindTransportExhausted.String())
	assert.Equal(t, "TimeBudgetExceeded", KindTimeBudgetExceeded.String())
	assert.Equal(t, "Cancelled", KindCancelled.String())
}
