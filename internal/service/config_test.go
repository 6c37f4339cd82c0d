// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config, err := GetConfig()
		require.NoError(t, err)
		assert.Equal(t, 50051, config.Port)
		assert.Equal(t, 9092, config.MetricsPort)
		assert.Equal(t, "ledger", config.SystemName)
		assert.Equal(t, "info", config.LogLevel)
		assert.False(t, config.TraceEnabled)
		assert.Equal(t, "grpc", config.TraceProtocol)
		assert.Equal(t, "localhost:4317", config.TraceURL)
		assert.Equal(t, 5*time.Second, config.AskTimeout)
	})
	t.Run("from the environment", func(t *testing.T) {
		t.Setenv("PORT", "6000")
		t.Setenv("METRICS_PORT", "6001")
		t.Setenv("SYSTEM_NAME", "bank")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("TRACE_ENABLED", "true")
		t.Setenv("TRACE_PROTOCOL", "http")
		t.Setenv("TRACE_URL", "collector:4318")
		t.Setenv("ASK_TIMEOUT", "250ms")

		config, err := GetConfig()
		require.NoError(t, err)
		assert.Equal(t, 6000, config.Port)
		assert.Equal(t, 6001, config.MetricsPort)
		assert.Equal(t, "bank", config.SystemName)
		assert.Equal(t, "debug", config.LogLevel)
		assert.True(t, config.TraceEnabled)
		assert.Equal(t, "http", config.TraceProtocol)
		assert.Equal(t, "collector:4318", config.TraceURL)
		assert.Equal(t, 250*time.Millisecond, config.AskTimeout)
	})
	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("PORT", "not-a-port")
		_, err := GetConfig()
		require.Error(t, err)
	})
	t.Run("unknown trace protocol", func(t *testing.T) {
		t.Setenv("TRACE_PROTOCOL", "carrier-pigeon")
		_, err := GetConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "carrier-pigeon")
	})
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:          50051,
			MetricsPort:   9092,
			SystemName:    "ledger",
			TraceProtocol: "grpc",
			AskTimeout:    time.Second,
		}
	}

	require.NoError(t, valid().Validate())

	config := valid()
	config.Port = 0
	assert.Error(t, config.Validate())

	config = valid()
	config.MetricsPort = -1
	assert.Error(t, config.Validate())

	config = valid()
	config.AskTimeout = 0
	assert.Error(t, config.Validate())
}
