// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dogged

// Callbacks holds the observer hooks a Client invokes at the lifecycle
// points of each operation. Any or all hooks may be nil; a nil hook is
// skipped.
//
// Hooks are invoked synchronously on the goroutine executing the
// operation, in program order: OnRequest before every attempt, OnRetry
// before every wait, then exactly one of OnSuccess or OnFailure. An
// operation cancelled via its context emits neither OnSuccess nor
// OnFailure.
//
// Panics raised inside a hook are not recovered by the client; they
// propagate to the caller of the operation.
type Callbacks struct {
	// OnRequest is invoked before each request attempt.
	OnRequest func(RequestEvent)
	// OnRetry is invoked after a retryable outcome, before sleeping.
	OnRetry func(RetryEvent)
	// OnSuccess is invoked once when an operation ends in success.
	OnSuccess func(ResponseEvent)
	// OnFailure is invoked once when an operation ends in failure.
	// It is not invoked for configuration errors, which are reported
	// before any attempt is made.
	OnFailure func(FailureEvent)
}

func (c *Callbacks) emitRequest(ev RequestEvent) {
	if c != nil && c.OnRequest != nil {
		c.OnRequest(ev)
	}
}

func (c *Callbacks) emitRetry(ev RetryEvent) {
	if c != nil && c.OnRetry != nil {
		c.OnRetry(ev)
	}
}

func (c *Callbacks) emitSuccess(ev ResponseEvent) {
	if c != nil && c.OnSuccess != nil {
		c.OnSuccess(ev)
	}
}

func (c *Callbacks) emitFailure(ev FailureEvent) {
	if c != nil && c.OnFailure != nil {
		c.OnFailure(ev)
	}
}
