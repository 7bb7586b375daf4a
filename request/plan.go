// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"strings"
)

const nilCtxMsg = "dogged/request: nil context"

// A Plan is a logical HTTP request that may be attempted more than
// once.
//
// Plan mirrors the client-side fields of http.Request, with the body
// simplified to a pre-buffered byte slice so that every retry can
// resend it. Server-only and stream-oriented fields are omitted.
//
// Like http.Request, a Plan carries a context. The context governs the
// entire execution of the plan: every request attempt and every wait
// between attempts.
type Plan struct {
	// Method specifies the HTTP method. An empty string means GET.
	Method string

	// URL specifies the URL to access.
	URL *urlpkg.URL

	// Header contains the request header fields sent on every attempt.
	Header http.Header

	// Body is the pre-buffered request body. Nil or empty means no
	// body is sent, as for a typical GET or DELETE.
	Body []byte

	// Close stipulates closing the connection after each attempt,
	// preventing TCP connection reuse between attempts.
	Close bool

	// Host optionally overrides the Host header to send. If empty, the
	// value of URL.Host is used.
	Host string

	// ctx bounds the whole plan execution. Modify only by copying the
	// plan via WithContext.
	ctx context.Context
}

// NewPlan wraps NewPlanWithContext using the background context.
func NewPlan(method, url string, body interface{}) (*Plan, error) {
	return NewPlanWithContext(context.Background(), method, url, body)
}

// NewPlanWithContext returns a new Plan given a method, URL, and
// optional body.
//
// The body may be nil (empty body), string, []byte, io.Reader, or
// io.ReadCloser; see BodyBytes for the conversion rules.
func NewPlanWithContext(ctx context.Context, method, url string, body interface{}) (*Plan, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if method == "" {
		method = "GET"
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("dogged/request: invalid method %q", method)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, err
	}
	u.Host = removeEmptyPort(u.Host)
	b, err := BodyBytes(body)
	if err != nil {
		return nil, err
	}
	return &Plan{
		ctx:    ctx,
		Method: method,
		URL:    u,
		Header: make(http.Header),
		Body:   b,
		Host:   u.Host,
	}, nil
}

// Context returns the plan's context, which controls cancellation of
// the whole plan execution. It is never nil; it defaults to the
// background context.
func (p *Plan) Context() context.Context {
	if p.ctx != nil {
		return p.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of p with its context changed to
// ctx, which must be non-nil.
func (p *Plan) WithContext(ctx context.Context) *Plan {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	p2 := new(Plan)
	*p2 = *p
	p2.ctx = ctx
	return p2
}

// AddCookie adds a cookie to the plan. Per RFC 6265 section 5.4, all
// cookies are written into a single Cookie header line, separated by
// semicolons. AddCookie sanitizes only c's name and value.
func (p *Plan) AddCookie(c *http.Cookie) {
	c2 := &http.Cookie{Name: c.Name, Value: c.Value}
	s := c2.String()
	if h := p.Header.Get("Cookie"); h != "" {
		p.Header.Set("Cookie", h+"; "+s)
	} else {
		p.Header.Set("Cookie", s)
	}
}

// SetBasicAuth sets the plan's Authorization header to use HTTP Basic
// Authentication with the provided username and password, which are
// sent unencrypted.
func (p *Plan) SetBasicAuth(username, password string) {
	auth := username + ":" + password
	p.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(auth)))
}

// ToRequest creates the http.Request for one attempt of the plan. The
// request's context is set to ctx, which must not be nil. The request
// body, when non-empty, is a fresh reader over the plan's buffered
// body, with GetBody set so the transport can replay it.
func (p *Plan) ToRequest(ctx context.Context) *http.Request {
	r, err := http.NewRequestWithContext(ctx, p.Method, "", nil)
	if err != nil {
		panic(err) // method was validated at plan construction
	}
	r.URL = p.URL
	r.Header = p.Header
	if len(p.Body) > 0 {
		r.Body = io.NopCloser(bytes.NewReader(p.Body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(p.Body)), nil
		}
		r.ContentLength = int64(len(p.Body))
	}
	r.Close = p.Close
	r.Host = p.Host
	return r
}

// rfc7230Separators are the characters excluded from tokens by RFC
// 7230 section 3.2.6; an HTTP method is a token.
const rfc7230Separators = "(),/:;<=>?@[\\]{}\""

func validMethod(method string) bool {
	for _, r := range method {
		if r <= ' ' || r >= 0x7f || strings.ContainsRune(rfc7230Separators, r) {
			return false
		}
	}
	return len(method) > 0
}

// hasPort reports whether host includes a port, allowing for IPv6
// bracket notation.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort strips a trailing empty ":" port as mandated by RFC
// 3986 section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
