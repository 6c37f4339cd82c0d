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

package client

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/protobuf/proto"

	"github.com/tochemey/goakt-ledger/internal/ledger"
	"github.com/tochemey/goakt-ledger/internal/ledgerpb"
	"github.com/tochemey/goakt-ledger/internal/ledgerpb/ledgerpbconnect"
)

// Config defines the client configuration
type Config struct {
	Address string        `env:"LEDGER_ADDR" envDefault:"http://localhost:50051"`
	Timeout time.Duration `env:"LEDGER_TIMEOUT" envDefault:"5s"`
}

// GetConfig returns the client configuration
func GetConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load the .env file")
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Client calls a remote ledger service
type Client struct {
	remote ledgerpbconnect.LedgerServiceClient
}

// New creates an instance of Client
func New(config *Config) *Client {
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   config.Timeout,
	}

	return &Client{
		remote: ledgerpbconnect.NewLedgerServiceClient(httpClient, config.Address),
	}
}

// InitAccount asks the ledger to create an account.
// The opening balance is only sent when the amount is present.
func (c *Client) InitAccount(ctx context.Context, address string, amount ledger.Amount) (*ledgerpb.Reply, error) {
	req := &ledgerpb.InitAccountRequest{Addr: address}
	if value, ok := amount.Get(); ok {
		req.InitAmount = proto.Uint32(value)
	}

	resp, err := c.remote.InitAccount(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, errors.Wrap(err, "failed to init account")
	}
	return resp.Msg, nil
}

// SendPayment asks the ledger to transfer funds
func (c *Client) SendPayment(ctx context.Context, from, to string, amount uint32) (*ledgerpb.Reply, error) {
	resp, err := c.remote.SendPayment(ctx, connect.NewRequest(&ledgerpb.PaymentRequest{
		FromAddr: from,
		ToAddr:   to,
		Amount:   amount,
	}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to send payment")
	}
	return resp.Msg, nil
}

// SendHints sends advisory strings to the ledger
func (c *Client) SendHints(ctx context.Context, hints []string) error {
	if _, err := c.remote.SendHints(ctx, connect.NewRequest(&ledgerpb.HintsRequest{Hints: hints})); err != nil {
		return errors.Wrap(err, "failed to send hints")
	}
	return nil
}

// GetBalance fetches the balance of an account
func (c *Client) GetBalance(ctx context.Context, address string) (*ledgerpb.GetBalanceResponse, error) {
	resp, err := c.remote.GetBalance(ctx, connect.NewRequest(&ledgerpb.GetBalanceRequest{Addr: address}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get balance")
	}
	return resp.Msg, nil
}
