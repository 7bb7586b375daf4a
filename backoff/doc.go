// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package backoff provides delay calculation strategies for retry waits.

A Strategy is a pure function from a zero-based attempt index to a
delay. The built-in constructors cover the common progressions:

	s, err := backoff.NewConstant(time.Second)
	s, err := backoff.NewLinear(500*time.Millisecond, 10*time.Second)
	s, err := backoff.NewExponential(300*time.Millisecond, time.Minute)
	s, err := backoff.NewFibonacci(time.Second, 30*time.Second)

Use StrategyFunc to supply a custom progression:

	s := backoff.StrategyFunc(func(attempt int) time.Duration {
		return time.Duration(attempt) * 100 * time.Millisecond
	})

Strategies are deterministic and hold no mutable state; jitter and
server-directed waits are layered on top by package retry.
*/
package backoff
