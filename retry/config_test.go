// Copyright 2026 The dogged Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	t.Run("zero value is valid", func(t *testing.T) {
		assert.NoError(t, (&Config{}).Validate())
	})
	t.Run("default config is valid", func(t *testing.T) {
		assert.NoError(t, DefaultConfig().Validate())
	})
	t.Run("full config is valid", func(t *testing.T) {
		cfg := &Config{
			MaxRetries:      5,
			StatusForcelist: []int{http.StatusServiceUnavailable},
			JitterFactor:    0.25,
			MaxTotalTime:    time.Minute,
			MaxWaitTime:     10 * time.Second,
		}
		assert.NoError(t, cfg.Validate())
	})

	invalid := []struct {
		name string
		cfg  Config
	}{
		{"negative max retries", Config{MaxRetries: -1}},
		{"negative jitter factor", Config{JitterFactor: -0.1}},
		{"negative max total time", Config{MaxTotalTime: -time.Second}},
		{"negative max wait time", Config{MaxWaitTime: -time.Second}},
		{"status code too low", Config{StatusForcelist: []int{99}}},
		{"status code too high", Config{StatusForcelist: []int{600}}},
	}
	for _, testCase := range invalid {
		t.Run(testCase.name, func(t *testing.T) {
			err := testCase.cfg.Validate()
			require.Error(t, err)
			var ice *InvalidConfigError
			require.ErrorAs(t, err, &ice)
			var ve validator.ValidationErrors
			assert.ErrorAs(t, err, &ve)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	t.Run("forcelist", func(t *testing.T) {
		cfg := &Config{}
		assert.Equal(t, DefaultStatusForcelist, cfg.forcelist())

		cfg.StatusForcelist = []int{http.StatusConflict}
		assert.Equal(t, []int{http.StatusConflict}, cfg.forcelist())
	})
	t.Run("strategy", func(t *testing.T) {
		cfg := &Config{}
		assert.Equal(t, 300*time.Millisecond, cfg.strategy().Calculate(0))
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultMaxRetries, cfg.MaxRetries)
	assert.Nil(t, cfg.StatusForcelist)
	assert.Nil(t, cfg.Backoff)
	assert.Zero(t, cfg.MaxTotalTime)
}
