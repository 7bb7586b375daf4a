// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package timeout provides policies for setting per-attempt timeouts on
the request attempts a retrying client makes.

A timeout policy bounds each individual attempt; it is independent of
the retry policy's total time budget, which bounds the whole operation
including retry waits.

Use Fixed for the conventional single-value timeout, or Adaptive to
time out quickly at first and loosen the timeout once attempts start
timing out:

	client := &dogged.Client{
		TimeoutPolicy: timeout.Adaptive(200*time.Millisecond, time.Second, 10*time.Second),
	}
*/
package timeout
