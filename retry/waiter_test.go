// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doggedhttp/dogged/backoff"
)

func responseWithRetryAfter(v string) *http.Response {
	h := http.Header{}
	h.Set("Retry-After", v)
	return &http.Response{StatusCode: 503, Header: h}
}

func TestWaiterStrategy(t *testing.T) {
	constant, err := backoff.NewConstant(2 * time.Second)
	require.NoError(t, err)
	w := NewWaiter(&Config{Backoff: constant})

	t.Run("nil response", func(t *testing.T) {
		assert.Equal(t, 2*time.Second, w.Wait(0, nil))
	})
	t.Run("response without header", func(t *testing.T) {
		assert.Equal(t, 2*time.Second, w.Wait(3, &http.Response{StatusCode: 503}))
	})
	t.Run("unparseable header falls back", func(t *testing.T) {
		assert.Equal(t, 2*time.Second, w.Wait(0, responseWithRetryAfter("soon")))
	})
}

func TestWaiterRetryAfterPrecedence(t *testing.T) {
	hour, err := backoff.NewConstant(time.Hour)
	require.NoError(t, err)
	w := NewWaiter(&Config{Backoff: hour})

	t.Run("header beats strategy", func(t *testing.T) {
		assert.Equal(t, 7*time.Second, w.Wait(0, responseWithRetryAfter("7")))
	})
	t.Run("zero header beats strategy", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), w.Wait(0, responseWithRetryAfter("0")))
	})
	t.Run("negative header clamps to zero", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), w.Wait(0, responseWithRetryAfter("-10")))
	})
}

func TestWaiterJitter(t *testing.T) {
	constant, err := backoff.NewConstant(time.Second)
	require.NoError(t, err)

	t.Run("bounds", func(t *testing.T) {
		w := NewWaiter(&Config{Backoff: constant, JitterFactor: 0.5})
		for i := 0; i < 100; i++ {
			d := w.Wait(0, nil)
			assert.GreaterOrEqual(t, d, time.Second)
			assert.Less(t, d, 1500*time.Millisecond)
		}
	})
	t.Run("applies on top of retry-after", func(t *testing.T) {
		w := NewWaiter(&Config{Backoff: constant, JitterFactor: 1.0})
		for i := 0; i < 100; i++ {
			d := w.Wait(0, responseWithRetryAfter("2"))
			assert.GreaterOrEqual(t, d, 2*time.Second)
			assert.Less(t, d, 4*time.Second)
		}
	})
	t.Run("zero factor is deterministic", func(t *testing.T) {
		w := NewWaiter(&Config{Backoff: constant})
		for i := 0; i < 10; i++ {
			assert.Equal(t, time.Second, w.Wait(i, nil))
		}
	})
}

func TestWaiterMaxWaitTime(t *testing.T) {
	hour, err := backoff.NewConstant(time.Hour)
	require.NoError(t, err)

	t.Run("caps strategy delay", func(t *testing.T) {
		w := NewWaiter(&Config{Backoff: hour, MaxWaitTime: 3 * time.Second})
		assert.Equal(t, 3*time.Second, w.Wait(0, nil))
	})
	t.Run("caps retry-after delay", func(t *testing.T) {
		w := NewWaiter(&Config{Backoff: hour, MaxWaitTime: 3 * time.Second})
		assert.Equal(t, 3*time.Second, w.Wait(0, responseWithRetryAfter("600")))
	})
	t.Run("caps jittered delay", func(t *testing.T) {
		w := NewWaiter(&Config{Backoff: hour, JitterFactor: 1.0, MaxWaitTime: time.Second})
		for i := 0; i < 20; i++ {
			assert.Equal(t, time.Second, w.Wait(0, nil))
		}
	})
}

func TestWaiterDefaultBackoff(t *testing.T) {
	w := NewWaiter(&Config{})
	assert.Equal(t, 300*time.Millisecond, w.Wait(0, nil))
	assert.Equal(t, 600*time.Millisecond, w.Wait(1, nil))
}
