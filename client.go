// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dogged

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/doggedhttp/dogged/request"
	"github.com/doggedhttp/dogged/retry"
	"github.com/doggedhttp/dogged/timeout"
	"github.com/doggedhttp/dogged/transient"
)

// An HTTPDoer implements a Do method in the same manner as the Go
// standard library http.Client from the net/http package. It is the
// transport collaborator responsible for sending one HTTP request and
// returning one response or error; everything at the wire level
// (connection pooling, TLS, redirects, cookies) belongs to it.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response, following
	// the contract documented on http.Client.Do.
	Do(r *http.Request) (*http.Response, error)
}

// Failed-attempt response bodies are drained up to this many bytes
// before closing, so the transport can reuse the connection.
const drainLimit = 64 * 1024

// A Client is a persistent HTTP client that retries failed request
// attempts. Its zero value is a valid configuration: it uses
// http.DefaultClient as the HTTPDoer, the default retry policy
// (retry.DefaultConfig), the default per-attempt timeout policy
// (timeout.DefaultPolicy), no callbacks, and no circuit breaker.
//
// A Client is higher-level than its HTTPDoer: the HTTPDoer sends one
// request and produces one response or error, and Client loops over
// it, deciding after each attempt whether to retry, how long to wait,
// and when to give up. Client is safe for concurrent use by multiple
// goroutines, and HTTPDoer instances (which typically cache TCP
// connections) should be shared and reused. Client never closes an
// HTTPDoer it did not create.
//
// Every operation runs its attempts strictly sequentially and emits
// callback events in program order: OnRequest for each attempt,
// OnRetry before each wait, then exactly one of OnSuccess or
// OnFailure.
type Client struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses. If nil, http.DefaultClient is used.
	HTTPDoer HTTPDoer

	// Retry is the retry policy applied to each operation. If nil,
	// retry.DefaultConfig() is used. The policy is validated before
	// the first attempt of each operation; an invalid policy fails
	// the operation with *retry.InvalidConfigError and no request is
	// made.
	Retry *retry.Config

	// TimeoutPolicy sets the timeout for each individual request
	// attempt. If nil, timeout.DefaultPolicy is used.
	TimeoutPolicy timeout.Policy

	// Callbacks holds the observer hooks invoked at each lifecycle
	// point. If nil, no hooks are run.
	Callbacks *Callbacks

	// Breaker, if non-nil, receives the terminal outcome of every
	// operation. A breaker shared across operations must be safe for
	// concurrent use.
	Breaker Breaker

	// Logger, if non-nil, receives debug-level traces of retry
	// decisions. Use LogCallbacks for full structured event logging.
	Logger *zerolog.Logger

	// Clock supplies time for budget arithmetic and retry sleeps.
	// If nil, the real clock is used. Swap in a mock for tests.
	Clock quartz.Clock
}

// Do executes an HTTP request plan and returns the final response,
// retrying failed attempts per the client's retry policy.
//
// On success the response is returned with its body unread; the caller
// must close it. On failure the returned error is a *Error carrying
// the failure kind, method, URL, and whichever of the last response or
// underlying cause was observed; responses attached to errors have
// their bodies drained and closed. An invalid retry policy returns
// *retry.InvalidConfigError before any request is made.
//
// Do honors the plan's context at every suspension point: while a
// request is in flight and while sleeping between attempts. A
// cancelled operation returns a *Error of KindCancelled wrapping the
// context's error and emits neither OnSuccess nor OnFailure.
func (c *Client) Do(p *request.Plan) (*http.Response, error) {
	cfg := c.retryConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clock := c.clock()
	cbs := c.Callbacks
	timeoutPolicy := c.TimeoutPolicy
	if timeoutPolicy == nil {
		timeoutPolicy = timeout.DefaultPolicy
	}
	waiter := retry.NewWaiter(cfg)

	start := clock.Now()
	var (
		attempt      int
		timeouts     int
		lastTimedOut bool
	)

	for {
		cbs.emitRequest(RequestEvent{
			Method:     p.Method,
			URL:        p.URL.String(),
			Attempt:    attempt + 1,
			MaxRetries: cfg.MaxRetries,
		})

		resp, err := c.send(p, timeoutPolicy.Timeout(timeout.Attempt{
			Index:    attempt,
			Timeouts: timeouts,
			TimedOut: lastTimedOut,
		}))

		if ctxErr := p.Context().Err(); ctxErr != nil {
			drainAndClose(resp)
			return nil, c.cancelled(p, ctxErr)
		}

		if err != nil {
			lastTimedOut = transient.Categorize(err) == transient.Timeout
			if lastTimedOut {
				timeouts++
			}
			if !retry.DecideError(cfg, err, attempt) {
				msg := fmt.Sprintf("request failed after %d attempt(s)", attempt+1)
				if lastTimedOut {
					msg = fmt.Sprintf("request timed out after %d attempt(s)", attempt+1)
				}
				return nil, c.fail(cbs, cfg, attempt, clock.Since(start),
					c.terminal(KindTransportExhausted, p, msg, nil, err))
			}
		} else {
			lastTimedOut = false
			switch retry.DecideResponse(cfg, resp) {
			case retry.Succeed:
				if c.Breaker != nil {
					c.Breaker.RecordSuccess()
				}
				cbs.emitSuccess(ResponseEvent{
					Method:     p.Method,
					URL:        p.URL.String(),
					Attempt:    attempt + 1,
					MaxRetries: cfg.MaxRetries,
					Response:   resp,
					TotalTime:  clock.Since(start),
				})
				return resp, nil
			case retry.Fail:
				drainAndClose(resp)
				return nil, c.fail(cbs, cfg, attempt, clock.Since(start),
					c.terminal(KindNonRetryableStatus, p,
						fmt.Sprintf("non-retryable status %d", resp.StatusCode), resp, nil))
			case retry.Retry:
				if attempt >= cfg.MaxRetries {
					drainAndClose(resp)
					return nil, c.fail(cbs, cfg, attempt, clock.Since(start),
						c.terminal(KindRetriesExhausted, p,
							fmt.Sprintf("retry budget of %d exhausted, last status %d",
								cfg.MaxRetries, resp.StatusCode), resp, nil))
				}
			}
		}

		if cfg.MaxTotalTime > 0 && clock.Since(start) >= cfg.MaxTotalTime {
			drainAndClose(resp)
			e := c.terminal(KindTimeBudgetExceeded, p,
				fmt.Sprintf("total time budget of %s exceeded", cfg.MaxTotalTime), resp, err)
			return nil, c.fail(cbs, cfg, attempt, clock.Since(start), e)
		}

		wait := waiter.Wait(attempt, resp)
		cbs.emitRetry(RetryEvent{
			Method:     p.Method,
			URL:        p.URL.String(),
			Attempt:    attempt + 2,
			MaxRetries: cfg.MaxRetries,
			WaitTime:   wait,
			Err:        err,
			StatusCode: statusCode(resp),
		})
		if c.Logger != nil {
			c.Logger.Debug().
				Str("url", p.URL.String()).
				Int("attempt", attempt+1).
				Dur("wait", wait).
				Msg("retrying")
		}
		drainAndClose(resp)

		if wait > 0 {
			timer := clock.NewTimer(wait)
			select {
			case <-timer.C:
			case <-p.Context().Done():
				timer.Stop()
				return nil, c.cancelled(p, p.Context().Err())
			}
		} else if ctxErr := p.Context().Err(); ctxErr != nil {
			return nil, c.cancelled(p, ctxErr)
		}
		attempt++
	}
}

// send makes one request attempt bounded by the per-attempt timeout.
// The attempt context is released when the returned response body is
// closed.
func (c *Client) send(p *request.Plan, d time.Duration) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(p.Context(), d)
	resp, err := c.doer().Do(p.ToRequest(ctx))
	if err != nil {
		cancel()
		return nil, err
	}
	resp.Body = &cancelBody{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

func (c *Client) terminal(kind Kind, p *request.Plan, msg string, resp *http.Response, cause error) *Error {
	e := &Error{
		Kind:     kind,
		Method:   p.Method,
		URL:      p.URL.String(),
		Message:  msg,
		Response: resp,
		Cause:    cause,
	}
	if resp != nil {
		e.StatusCode = resp.StatusCode
	}
	return e
}

// fail records the terminal failure in the breaker, emits OnFailure,
// and returns e.
func (c *Client) fail(cbs *Callbacks, cfg *retry.Config, attempt int, total time.Duration, e *Error) error {
	if c.Breaker != nil {
		c.Breaker.RecordFailure(e)
	}
	cbs.emitFailure(FailureEvent{
		Method:     e.Method,
		URL:        e.URL,
		Attempt:    attempt + 1,
		MaxRetries: cfg.MaxRetries,
		Err:        e,
		StatusCode: e.StatusCode,
		TotalTime:  total,
	})
	if c.Logger != nil {
		c.Logger.Debug().
			Str("url", e.URL).
			Int("attempt", attempt+1).
			Str("kind", e.Kind.String()).
			Msg("giving up")
	}
	return e
}

// cancelled builds the error for a context-cancelled operation. No
// breaker recording and no terminal callback: the operation reached
// no outcome.
func (c *Client) cancelled(p *request.Plan, ctxErr error) error {
	return c.terminal(KindCancelled, p, "execution cancelled", nil, ctxErr)
}

// Get issues a GET to the specified URL, using the same policies
// followed by Do.
func (c *Client) Get(url string) (*http.Response, error) {
	return Get(c, url)
}

// Head issues a HEAD to the specified URL, using the same policies
// followed by Do.
func (c *Client) Head(url string) (*http.Response, error) {
	return Head(c, url)
}

// Post issues a POST to the specified URL, using the same policies
// followed by Do.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by request.NewPlan and request.BodyBytes,
// namely: string; []byte; io.Reader; and io.ReadCloser. The body is
// buffered so retried attempts can resend it.
func (c *Client) Post(url, contentType string, body interface{}) (*http.Response, error) {
	return Post(c, url, contentType, body)
}

// PostForm issues a POST to the specified URL, with data's keys and
// values URL-encoded as the request body and the Content-Type header
// set to application/x-www-form-urlencoded.
func (c *Client) PostForm(url string, data url.Values) (*http.Response, error) {
	return PostForm(c, url, data)
}

// Put issues a PUT to the specified URL, using the same policies
// followed by Do. The body accepts the same types as Post.
func (c *Client) Put(url, contentType string, body interface{}) (*http.Response, error) {
	return Put(c, url, contentType, body)
}

// Patch issues a PATCH to the specified URL, using the same policies
// followed by Do. The body accepts the same types as Post.
func (c *Client) Patch(url, contentType string, body interface{}) (*http.Response, error) {
	return Patch(c, url, contentType, body)
}

// Delete issues a DELETE to the specified URL, using the same
// policies followed by Do.
func (c *Client) Delete(url string) (*http.Response, error) {
	return Delete(c, url)
}

// CloseIdleConnections forwards to the same method on the client's
// HTTPDoer, if it has one; otherwise it does nothing.
func (c *Client) CloseIdleConnections() {
	if ic, ok := c.doer().(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return http.DefaultClient
	}
	return c.HTTPDoer
}

func (c *Client) retryConfig() *retry.Config {
	if c.Retry == nil {
		return retry.DefaultConfig()
	}
	return c.Retry
}

func (c *Client) clock() quartz.Clock {
	if c.Clock == nil {
		return quartz.NewReal()
	}
	return c.Clock
}

func statusCode(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

// drainAndClose discards up to drainLimit bytes of a failed attempt's
// body and closes it, so the underlying connection can be reused.
func drainAndClose(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, drainLimit))
	_ = resp.Body.Close()
}

// cancelBody releases the attempt's timeout context when the response
// body is closed.
type cancelBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelBody) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}
