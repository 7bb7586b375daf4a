// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request provides the replayable request plan consumed by the
retrying client.

A Plan is the retry-safe counterpart of http.Request: its body is
pre-buffered into a byte slice, so the plan can be converted into a
fresh http.Request for every attempt, including attempts that resend a
POST or PUT body. The plan's context bounds the whole operation:
every attempt and every retry wait.
*/
package request
