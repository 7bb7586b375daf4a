// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutError struct {
	timeout bool
}

func (e *timeoutError) Error() string { return "timeout error" }
func (e *timeoutError) Timeout() bool { return e.timeout }

func TestCategorize(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected Category
	}{
		{"nil", nil, Not},
		{"plain", errors.New("boom"), Not},
		{"context canceled", context.Canceled, Not},
		{"timeout interface true", &timeoutError{timeout: true}, Timeout},
		{"timeout interface false", &timeoutError{timeout: false}, Not},
		{"wrapped timeout", fmt.Errorf("outer: %w", &timeoutError{timeout: true}), Timeout},
		{"url timeout", &url.Error{Op: "Get", URL: "http://test", Err: &timeoutError{timeout: true}}, Timeout},
		{"connection reset", syscall.ECONNRESET, ConnReset},
		{"connection refused", syscall.ECONNREFUSED, ConnRefused},
		{"other errno", syscall.EPIPE, Not},
		{
			"nested refused",
			&url.Error{
				Op:  "Get",
				URL: "http://test",
				Err: &net.OpError{
					Op:  "dial",
					Err: &os.SyscallError{Syscall: "connect", Err: syscall.ECONNREFUSED},
				},
			},
			ConnRefused,
		},
		{
			"nested reset",
			&net.OpError{
				Op:  "read",
				Err: &os.SyscallError{Syscall: "read", Err: syscall.ECONNRESET},
			},
			ConnReset,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, Categorize(testCase.err))
		})
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "Not", Not.String())
	assert.Equal(t, "Timeout", Timeout.String())
	assert.Equal(t, "ConnRefused", ConnRefused.String())
	assert.Equal(t, "ConnReset", ConnReset.String())
}
