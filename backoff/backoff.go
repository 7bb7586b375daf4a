// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package backoff

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidParameter is wrapped by every error returned from a
// strategy constructor. Test for it with errors.Is.
var ErrInvalidParameter = errors.New("backoff: invalid parameter")

// A Strategy calculates the base retry delay for a request attempt.
//
// Calculate receives the zero-based index of the attempt that just
// failed and returns a non-negative delay. Implementations must be
// deterministic, free of side effects, and safe for concurrent use by
// multiple goroutines. Calculate must not fail for any attempt >= 0:
// parameter problems are reported by the constructors, never at
// calculation time.
type Strategy interface {
	Calculate(attempt int) time.Duration
}

// The StrategyFunc type is an adapter to allow the use of ordinary
// functions as backoff strategies.
type StrategyFunc func(attempt int) time.Duration

// Calculate calls f(attempt).
func (f StrategyFunc) Calculate(attempt int) time.Duration {
	return f(attempt)
}

// Default is the strategy used when a retry policy does not name one:
// exponential backoff with a 300 millisecond base and no cap.
var Default Strategy = &exponential{base: 300 * time.Millisecond}

// NewConstant constructs a Strategy returning d for every attempt.
//
// The delay d must not be negative.
func NewConstant(d time.Duration) (Strategy, error) {
	if d < 0 {
		return nil, fmt.Errorf("%w: constant delay must be >= 0, got %s", ErrInvalidParameter, d)
	}
	return constant(d), nil
}

type constant time.Duration

func (s constant) Calculate(_ int) time.Duration {
	return time.Duration(s)
}

// NewLinear constructs a Strategy whose delay grows linearly:
// base * (attempt + 1), capped at max.
//
// The base must not be negative. A zero max means no cap; otherwise
// max must be positive.
func NewLinear(base, max time.Duration) (Strategy, error) {
	if err := checkBaseMax("linear", base, max); err != nil {
		return nil, err
	}
	return &linear{base: base, max: max}, nil
}

type linear struct {
	base, max time.Duration
}

func (s *linear) Calculate(attempt int) time.Duration {
	d := time.Duration(attempt+1) * s.base
	if d < 0 { // multiplication overflow
		d = math.MaxInt64
	}
	return capped(d, s.max)
}

// NewExponential constructs a Strategy whose delay doubles with each
// attempt: base * 2^attempt, capped at max.
//
// The base must not be negative. A zero max means no cap; otherwise
// max must be positive.
func NewExponential(base, max time.Duration) (Strategy, error) {
	if err := checkBaseMax("exponential", base, max); err != nil {
		return nil, err
	}
	return &exponential{base: base, max: max}, nil
}

type exponential struct {
	base, max time.Duration
}

func (s *exponential) Calculate(attempt int) time.Duration {
	if attempt >= 63 {
		return capped(math.MaxInt64, s.max)
	}
	mult := int64(1) << attempt
	d := time.Duration(mult) * s.base
	if d < 0 || (s.base > 0 && d/s.base != time.Duration(mult)) {
		d = math.MaxInt64
	}
	return capped(d, s.max)
}

// NewFibonacci constructs a Strategy whose delay follows the Fibonacci
// sequence: base * fib(attempt+1), with fib(1) = fib(2) = 1, capped at
// max. The progression sits between linear and exponential growth.
//
// The base must not be negative. A zero max means no cap; otherwise
// max must be positive.
func NewFibonacci(base, max time.Duration) (Strategy, error) {
	if err := checkBaseMax("fibonacci", base, max); err != nil {
		return nil, err
	}
	return &fibonacci{base: base, max: max}, nil
}

type fibonacci struct {
	base, max time.Duration
}

func (s *fibonacci) Calculate(attempt int) time.Duration {
	prev, cur := int64(0), int64(1)
	for i := 0; i < attempt; i++ {
		next := prev + cur
		if next < cur { // addition overflow
			cur = math.MaxInt64
			break
		}
		prev, cur = cur, next
	}
	d := time.Duration(cur) * s.base
	if d < 0 || (s.base > 0 && d/s.base != time.Duration(cur)) {
		d = math.MaxInt64
	}
	return capped(d, s.max)
}

func capped(d, max time.Duration) time.Duration {
	if max > 0 && d > max {
		return max
	}
	return d
}

func checkBaseMax(name string, base, max time.Duration) error {
	if base < 0 {
		return fmt.Errorf("%w: %s base must be >= 0, got %s", ErrInvalidParameter, name, base)
	}
	if max < 0 {
		return fmt.Errorf("%w: %s max must be > 0 when set, got %s", ErrInvalidParameter, name, max)
	}
	return nil
}
