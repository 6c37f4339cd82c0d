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
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/tochemey/goakt-ledger/internal/telemetry"
)

// Config defines the ledger service configuration
type Config struct {
	Port          int           `env:"PORT" envDefault:"50051"`
	MetricsPort   int           `env:"METRICS_PORT" envDefault:"9092"`
	SystemName    string        `env:"SYSTEM_NAME" envDefault:"ledger"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	TraceEnabled  bool          `env:"TRACE_ENABLED" envDefault:"false"`
	TraceProtocol string        `env:"TRACE_PROTOCOL" envDefault:"grpc"`
	TraceURL      string        `env:"TRACE_URL" envDefault:"localhost:4317"`
	AskTimeout    time.Duration `env:"ASK_TIMEOUT" envDefault:"5s"`
}

// GetConfig returns the configuration.
// Values found in an optional .env file are used for variables not already set.
func GetConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load the .env file")
	}

	cfg := &Config{}
	opts := env.Options{RequiredIfNoDef: true, UseFieldNameByDefault: false}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that env tags cannot express
func (c *Config) Validate() error {
	if c.Port <= 0 {
		return errors.Errorf("invalid port=%d", c.Port)
	}

	if c.MetricsPort <= 0 {
		return errors.Errorf("invalid metrics port=%d", c.MetricsPort)
	}

	if c.AskTimeout <= 0 {
		return errors.Errorf("invalid ask timeout=%s", c.AskTimeout)
	}

	switch c.TraceProtocol {
	case telemetry.ProtocolGRPC, telemetry.ProtocolHTTP:
		return nil
	default:
		return errors.Errorf("invalid trace protocol=%s", c.TraceProtocol)
	}
}
