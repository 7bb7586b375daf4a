// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dogged

import (
	"github.com/rs/zerolog"
)

// LogCallbacks returns a Callbacks implementation that writes each
// lifecycle event to log as a structured record: attempts at debug
// level, retries at warn, terminal outcomes at info and error.
//
// Use it directly, or as a starting point when combining logging with
// other hooks:
//
//	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	client := &dogged.Client{Callbacks: dogged.LogCallbacks(logger)}
func LogCallbacks(log zerolog.Logger) *Callbacks {
	return &Callbacks{
		OnRequest: func(ev RequestEvent) {
			log.Debug().
				Str("method", ev.Method).
				Str("url", ev.URL).
				Int("attempt", ev.Attempt).
				Int("max_retries", ev.MaxRetries).
				Msg("sending request")
		},
		OnRetry: func(ev RetryEvent) {
			e := log.Warn().
				Str("method", ev.Method).
				Str("url", ev.URL).
				Int("attempt", ev.Attempt).
				Dur("wait", ev.WaitTime)
			if ev.Err != nil {
				e = e.Err(ev.Err)
			}
			if ev.StatusCode != 0 {
				e = e.Int("status", ev.StatusCode)
			}
			e.Msg("retrying request")
		},
		OnSuccess: func(ev ResponseEvent) {
			log.Info().
				Str("method", ev.Method).
				Str("url", ev.URL).
				Int("attempt", ev.Attempt).
				Int("status", ev.Response.StatusCode).
				Dur("total_time", ev.TotalTime).
				Msg("request succeeded")
		},
		OnFailure: func(ev FailureEvent) {
			e := log.Error().
				Str("method", ev.Method).
				Str("url", ev.URL).
				Int("attempt", ev.Attempt).
				Dur("total_time", ev.TotalTime).
				Err(ev.Err)
			if ev.StatusCode != 0 {
				e = e.Int("status", ev.StatusCode)
			}
			e.Msg("request failed")
		},
	}
}
