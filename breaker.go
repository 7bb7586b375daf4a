// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dogged

// A Breaker is an optional circuit-breaker collaborator. The client
// records the terminal outcome of each operation into the breaker,
// making one RecordSuccess or RecordFailure call per operation and
// never both, but owns none of the breaker's state machine.
//
// Implementations must not panic or block, and must serialize
// concurrent record calls internally when shared across concurrent
// operations.
type Breaker interface {
	// RecordSuccess records a terminal success.
	RecordSuccess()
	// RecordFailure records a terminal failure with its error, always
	// a *Error.
	RecordFailure(err error)
}
