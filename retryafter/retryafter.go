// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package retryafter parses the HTTP Retry-After response header.

The header carries either a delta in seconds or an HTTP-date (RFC 7231
section 7.1.3). Parse converts either form into a wait duration; the
retry wait calculator in package retry gives a parsed value precedence
over any client-side backoff strategy.
*/
package retryafter

import (
	"net/http"
	"strconv"
	"time"
)

const headerName = "Retry-After"

// Parse converts a Retry-After header value into a wait duration.
//
// A value parseable as a number is returned as that many seconds, sign
// preserved; a negative delta is returned as a negative duration and
// left for the caller to interpret. A value parseable as an HTTP-date
// yields the duration until that instant, clamped at zero so a date in
// the past never produces a negative wait.
//
// The second return value reports whether a duration was parsed. An
// empty or unparseable value returns (0, false); Parse never fails.
func Parse(v string) (time.Duration, bool) {
	return parseAt(v, time.Now())
}

func parseAt(v string, now time.Time) (time.Duration, bool) {
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.ParseFloat(v, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), true
	}
	if date, err := http.ParseTime(v); err == nil {
		d := date.Sub(now)
		if d < 0 {
			d = 0
		}
		return d, true
	}
	return 0, false
}

// FromResponse parses the Retry-After header of resp, if any.
//
// A nil response, a response without headers, and a response without a
// parseable Retry-After value all return (0, false).
func FromResponse(resp *http.Response) (time.Duration, bool) {
	if resp == nil || resp.Header == nil {
		return 0, false
	}
	return Parse(resp.Header.Get(headerName))
}
