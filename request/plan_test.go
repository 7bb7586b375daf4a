// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlan(t *testing.T) {
	t.Run("defaults method to GET", func(t *testing.T) {
		p, err := NewPlan("", "http://example.com", nil)
		require.NoError(t, err)
		assert.Equal(t, "GET", p.Method)
	})
	t.Run("invalid method", func(t *testing.T) {
		for _, method := range []string{"GET POST", "bad/method", "{}", "\n"} {
			p, err := NewPlan(method, "http://example.com", nil)
			assert.Nil(t, p, "method %q", method)
			assert.Error(t, err, "method %q", method)
		}
	})
	t.Run("invalid url", func(t *testing.T) {
		p, err := NewPlan("GET", "://nope", nil)
		assert.Nil(t, p)
		assert.Error(t, err)
	})
	t.Run("invalid body type", func(t *testing.T) {
		p, err := NewPlan("POST", "http://example.com", 42)
		assert.Nil(t, p)
		assert.Error(t, err)
	})
	t.Run("populates fields", func(t *testing.T) {
		p, err := NewPlan("POST", "http://example.com:8080/a/b?q=1", "hello")
		require.NoError(t, err)
		assert.Equal(t, "POST", p.Method)
		assert.Equal(t, "example.com:8080", p.URL.Host)
		assert.Equal(t, "/a/b", p.URL.Path)
		assert.Equal(t, []byte("hello"), p.Body)
		assert.Equal(t, "example.com:8080", p.Host)
		assert.NotNil(t, p.Header)
	})
	t.Run("strips empty port", func(t *testing.T) {
		p, err := NewPlan("GET", "http://example.com:/x", nil)
		require.NoError(t, err)
		assert.Equal(t, "example.com", p.URL.Host)
	})
}

func TestNewPlanWithContext(t *testing.T) {
	t.Run("nil context", func(t *testing.T) {
		p, err := NewPlanWithContext(nil, "GET", "http://example.com", nil) //lint:ignore SA1012 testing nil context handling
		assert.Nil(t, p)
		assert.Error(t, err)
	})
	t.Run("context is retained", func(t *testing.T) {
		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "v")
		p, err := NewPlanWithContext(ctx, "GET", "http://example.com", nil)
		require.NoError(t, err)
		assert.Equal(t, "v", p.Context().Value(key{}))
	})
}

func TestPlanContext(t *testing.T) {
	t.Run("zero plan defaults to background", func(t *testing.T) {
		var p Plan
		assert.Equal(t, context.Background(), p.Context())
	})
	t.Run("with context copies", func(t *testing.T) {
		p, err := NewPlan("GET", "http://example.com", nil)
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		p2 := p.WithContext(ctx)
		assert.NotSame(t, p, p2)
		assert.Equal(t, ctx, p2.Context())
		assert.Equal(t, context.Background(), p.Context())
		assert.Equal(t, p.Method, p2.Method)
	})
	t.Run("with nil context panics", func(t *testing.T) {
		p, err := NewPlan("GET", "http://example.com", nil)
		require.NoError(t, err)
		assert.Panics(t, func() { p.WithContext(nil) }) //lint:ignore SA1012 testing nil context handling
	})
}

func TestPlanAddCookie(t *testing.T) {
	p, err := NewPlan("GET", "http://example.com", nil)
	require.NoError(t, err)
	p.AddCookie(&http.Cookie{Name: "a", Value: "1"})
	assert.Equal(t, "a=1", p.Header.Get("Cookie"))
	p.AddCookie(&http.Cookie{Name: "b", Value: "2"})
	assert.Equal(t, "a=1; b=2", p.Header.Get("Cookie"))
}

func TestPlanSetBasicAuth(t *testing.T) {
	p, err := NewPlan("GET", "http://example.com", nil)
	require.NoError(t, err)
	p.SetBasicAuth("user", "pass")
	// base64("user:pass")
	assert.Equal(t, "Basic dXNlcjpwYXNz", p.Header.Get("Authorization"))
}

func TestPlanToRequest(t *testing.T) {
	t.Run("bodiless", func(t *testing.T) {
		p, err := NewPlan("GET", "http://example.com/x", nil)
		require.NoError(t, err)
		r := p.ToRequest(context.Background())
		assert.Equal(t, "GET", r.Method)
		assert.Same(t, p.URL, r.URL)
		assert.Nil(t, r.Body)
		assert.Nil(t, r.GetBody)
		assert.Zero(t, r.ContentLength)
	})
	t.Run("body replays", func(t *testing.T) {
		p, err := NewPlan("POST", "http://example.com/x", "payload")
		require.NoError(t, err)
		r := p.ToRequest(context.Background())
		require.NotNil(t, r.Body)
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(b))
		assert.Equal(t, int64(7), r.ContentLength)

		require.NotNil(t, r.GetBody)
		for i := 0; i < 2; i++ {
			rc, err := r.GetBody()
			require.NoError(t, err)
			b, err := io.ReadAll(rc)
			require.NoError(t, err)
			assert.Equal(t, "payload", string(b))
		}
	})
	t.Run("carries context close and host", func(t *testing.T) {
		p, err := NewPlan("GET", "http://example.com/x", nil)
		require.NoError(t, err)
		p.Close = true
		p.Host = "override.example.com"
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		r := p.ToRequest(ctx)
		assert.Equal(t, ctx, r.Context())
		assert.True(t, r.Close)
		assert.Equal(t, "override.example.com", r.Host)
	})
}
