// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package retry provides the retry policy, decision functions, and wait
calculator used by the retrying client.

A Config describes the whole policy for one operation: the retry
budget, which status codes count as retryable, the backoff strategy,
jitter, and the optional caps on single waits and total elapsed time.

	cfg := &retry.Config{
		MaxRetries:   5,
		JitterFactor: 0.2,
		MaxTotalTime: 30 * time.Second,
	}

A zero JitterFactor means no jitter; a nil Backoff uses exponential
backoff with a 300ms base; a nil StatusForcelist uses
DefaultStatusForcelist. Config fields are validated before the first
attempt; an out-of-domain value surfaces as *InvalidConfigError with
no request made.

DecideResponse and DecideError are the stateless retry decisions, and
Waiter computes how long to sleep before the next attempt, giving a
server-supplied Retry-After value precedence over the backoff
strategy.
*/
package retry
