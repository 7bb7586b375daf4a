// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package dogged provides a persistent HTTP client that retries failed
requests under a configurable policy with backoff, jitter, Retry-After
awareness, and a hard time budget.

Create a Client to begin making requests. The zero value works:

	client := &dogged.Client{}
	resp, err := client.Get("https://www.example.com")
	...
	resp, err := client.Post("https://www.example.com/upload",
		"application/json", &buf)

For control over how requests are sent on the wire, supply a custom
HTTPDoer, typically a configured http.Client:

	client := &dogged.Client{
		HTTPDoer: &http.Client{Transport: tr},
	}

The retry policy lives in package retry, and composes a backoff
strategy from package backoff:

	strategy, err := backoff.NewFibonacci(250*time.Millisecond, 10*time.Second)
	...
	client := &dogged.Client{
		Retry: &retry.Config{
			MaxRetries:   5,
			JitterFactor: 0.2,
			Backoff:      strategy,
			MaxTotalTime: 30 * time.Second,
		},
	}

To observe the attempt lifecycle, install callbacks. Each operation
emits OnRequest before every attempt, OnRetry before every wait, and
then exactly one of OnSuccess or OnFailure:

	client := &dogged.Client{
		Callbacks: &dogged.Callbacks{
			OnRetry: func(ev dogged.RetryEvent) {
				log.Printf("retrying %s in %s", ev.URL, ev.WaitTime)
			},
		},
	}

Cancellation and the blocking/non-blocking distinction are handled the
Go way, through the request plan's context: Do honors cancellation both
while a request is in flight and while sleeping between attempts, and a
background context gives plain blocking behavior.

Package dogged provides basic interfaces for each method of the client
(Doer, Getter, Header, Poster, FormPoster, Putter, Patcher, Deleter,
and IdleCloser); a combined Executor interface; and utility functions
for working with a Doer (Inflate, Get, Head, Post, PostForm, Put,
Patch, and Delete).
*/
package dogged
