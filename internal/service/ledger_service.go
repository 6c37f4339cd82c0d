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
	"context"
	"fmt"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"connectrpc.com/otelconnect"
	"github.com/pkg/errors"
	"github.com/tochemey/goakt/v4/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/tochemey/goakt-ledger/internal/ledger"
	"github.com/tochemey/goakt-ledger/internal/ledgerpb"
	"github.com/tochemey/goakt-ledger/internal/ledgerpb/ledgerpbconnect"
)

// Ledger is the operation layer the RPC boundary translates to
type Ledger interface {
	InitializeAccount(ctx context.Context, address string, amount ledger.Amount) (*ledger.Reply, error)
	Transfer(ctx context.Context, from, to string, amount uint32) (*ledger.Reply, error)
	Balance(ctx context.Context, address string) (*ledger.Balance, error)
	RecordHints(ctx context.Context, hints []string)
}

// LedgerService implements ledgerpbconnect.LedgerServiceHandler
type LedgerService struct {
	ledger Ledger
	logger log.Logger
	port   int
	server *http.Server
}

var _ ledgerpbconnect.LedgerServiceHandler = (*LedgerService)(nil)

// NewLedgerService creates an instance of LedgerService
func NewLedgerService(operations Ledger, logger log.Logger, port int) *LedgerService {
	return &LedgerService{
		ledger: operations,
		logger: logger,
		port:   port,
	}
}

// InitAccount creates an account with an optional opening balance
func (s *LedgerService) InitAccount(ctx context.Context, c *connect.Request[ledgerpb.InitAccountRequest]) (*connect.Response[ledgerpb.Reply], error) {
	req := c.Msg
	s.logger.Debugf("got an init request addr=%s", req.GetAddr())

	// presence of the optional field is what distinguishes "no amount" from zero
	reply, err := s.ledger.InitializeAccount(ctx, req.GetAddr(), ledger.AmountFromPtr(req.InitAmount))
	if err != nil {
		s.logger.Errorf("error initializing account=%s: %v", req.GetAddr(), err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(toReply(reply)), nil
}

// SendPayment moves funds between two accounts
func (s *LedgerService) SendPayment(ctx context.Context, c *connect.Request[ledgerpb.PaymentRequest]) (*connect.Response[ledgerpb.Reply], error) {
	req := c.Msg
	s.logger.Debugf("got a payment request from=%s to=%s amount=%d", req.GetFromAddr(), req.GetToAddr(), req.GetAmount())

	reply, err := s.ledger.Transfer(ctx, req.GetFromAddr(), req.GetToAddr(), req.GetAmount())
	if err != nil {
		s.logger.Errorf("error transferring from=%s to=%s: %v", req.GetFromAddr(), req.GetToAddr(), err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(toReply(reply)), nil
}

// SendHints records the hints sent by a client
func (s *LedgerService) SendHints(ctx context.Context, c *connect.Request[ledgerpb.HintsRequest]) (*connect.Response[emptypb.Empty], error) {
	s.ledger.RecordHints(ctx, c.Msg.GetHints())
	return connect.NewResponse(new(emptypb.Empty)), nil
}

// GetBalance returns the balance of an account
func (s *LedgerService) GetBalance(ctx context.Context, c *connect.Request[ledgerpb.GetBalanceRequest]) (*connect.Response[ledgerpb.GetBalanceResponse], error) {
	balance, err := s.ledger.Balance(ctx, c.Msg.GetAddr())
	if err != nil {
		s.logger.Errorf("error getting balance of account=%s: %v", c.Msg.GetAddr(), err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&ledgerpb.GetBalanceResponse{
		Found:   balance.Found,
		Balance: balance.Balance,
	}), nil
}

// Handler returns the http handler serving the ledger RPCs
func (s *LedgerService) Handler() (http.Handler, error) {
	interceptor, err := otelconnect.NewInterceptor()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create the otel interceptor")
	}

	mux := http.NewServeMux()
	path, handler := ledgerpbconnect.NewLedgerServiceHandler(s,
		connect.WithInterceptors(interceptor))
	mux.Handle(path, handler)
	return mux, nil
}

// Start starts the service
func (s *LedgerService) Start() error {
	handler, err := s.Handler()
	if err != nil {
		return err
	}

	serverAddr := fmt.Sprintf(":%d", s.port)
	s.server = &http.Server{
		Addr:              serverAddr,
		ReadTimeout:       3 * time.Second,
		ReadHeaderTimeout: time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       1200 * time.Second,
		Handler: h2c.NewHandler(handler, &http2.Server{
			IdleTimeout: 1200 * time.Second,
		}),
	}

	go func() {
		s.listenAndServe()
	}()
	return nil
}

// Stop stops the service
func (s *LedgerService) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// listenAndServe starts the http server
func (s *LedgerService) listenAndServe() {
	s.logger.Infof("Ledger service listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			return
		}
		s.logger.Errorf("failed to start the ledger service: %v", errors.Wrap(err, "listen error"))
	}
}

func toReply(reply *ledger.Reply) *ledgerpb.Reply {
	return &ledgerpb.Reply{
		Successful: reply.Successful,
		Message:    reply.Message,
	}
}
