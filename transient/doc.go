// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package transient classifies transport errors by their prospects on
retry.

Categorize examines an error chain and reports whether it looks like a
client-side timeout, a refused connection, a reset connection, or none
of these. The retry executor uses the Timeout category to word its
terminal errors; callers can use Categorize inside a retry predicate to
narrow the default retry-everything policy to transient failures only.
*/
package transient
