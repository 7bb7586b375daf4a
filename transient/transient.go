// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"errors"
	"syscall"
)

// A Category is the transience classification of an error, as reported
// by Categorize.
//
// Not means a retry is very unlikely to help. Every other category
// indicates some prospect of success on retry.
type Category int

const (
	// Not indicates a non-transient error, or no error at all.
	Not Category = iota
	// Timeout indicates a client-side timeout: the error, or one of
	// its wrapped causes, has a Timeout method reporting true. A later
	// attempt may succeed if the remote slowness was momentary.
	Timeout
	// ConnRefused indicates the remote host refused the connection
	// (ECONNREFUSED). Classified transient because it commonly occurs
	// while the remote service is restarting and not yet listening.
	ConnRefused
	// ConnReset indicates an established connection was reset by the
	// peer (ECONNRESET), typical of premature service shutdowns and
	// load balancer churn; retries tend to succeed.
	ConnReset
)

var categoryNames = map[Category]string{
	Not:         "Not",
	Timeout:     "Timeout",
	ConnRefused: "ConnRefused",
	ConnReset:   "ConnReset",
}

// String returns the category name.
func (c Category) String() string {
	return categoryNames[c]
}

type timeouter interface {
	Timeout() bool
}

// Categorize reports the transience category of err, looking through
// wrapped causes. A nil error returns Not.
//
// Timeout takes precedence over the errno categories. Categorize
// deliberately ignores the deprecated Temporary method, whose
// semantics are too loose to act on.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	var t timeouter
	if errors.As(err, &t) && t.Timeout() {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNRESET:
			return ConnReset
		case syscall.ECONNREFUSED:
			return ConnRefused
		}
	}

	return Not
}
