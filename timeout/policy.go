// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"math"
	"time"
)

// An Attempt describes the request attempt a timeout is being chosen
// for.
type Attempt struct {
	// Index is the zero-based number of the attempt about to be made.
	Index int
	// Timeouts is the number of attempts that have timed out so far in
	// this operation.
	Timeouts int
	// TimedOut reports whether the immediately preceding attempt ended
	// in a timeout. Always false for the initial attempt.
	TimedOut bool
}

// A Policy decides the timeout for each request attempt within one
// retrying operation.
//
// Implementations must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	// Timeout returns the timeout to set on the attempt described by a.
	Timeout(a Attempt) time.Duration
}

// DefaultPolicy is the policy used when a client does not set one: a
// fixed timeout of 5 seconds per attempt.
var DefaultPolicy Policy = Fixed(5 * time.Second)

// Infinite is a built-in policy that never times an attempt out.
var Infinite Policy = Fixed(math.MaxInt64)

// Fixed constructs a Policy that sets the same timeout d on every
// attempt.
func Fixed(d time.Duration) Policy {
	return policy([]time.Duration{d})
}

// Adaptive constructs a Policy that varies the timeout after an
// attempt times out.
//
// The usual value applies to the initial attempt and to any attempt
// whose predecessor did not time out. If the previous attempt timed
// out, the policy returns after[0] for the operation's first timeout,
// after[1] for the second, and the last element of after once the
// timeout count exceeds it.
//
// Adaptive suits services with occasional one-off slow responses: time
// out aggressively and retry, but back off to generous timeouts during
// a sustained slow burst so retries still have a chance to complete.
func Adaptive(usual time.Duration, after ...time.Duration) Policy {
	p := make(policy, 1, 1+len(after))
	p[0] = usual
	return append(p, after...)
}

type policy []time.Duration

func (p policy) Timeout(a Attempt) time.Duration {
	if !a.TimedOut {
		return p[0]
	}
	i := a.Timeouts
	if i > len(p)-1 {
		i = len(p) - 1
	}
	return p[i]
}
