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

package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tochemey/goakt/v4/actor"
	"github.com/tochemey/goakt/v4/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
)

const (
	// ActorName is the name the ledger actor is spawned under
	ActorName = "ledger"

	instrumentationName = "github.com/tochemey/goakt-ledger/internal/ledger"
)

// ErrNotStarted is returned when an operation is called before Start
var ErrNotStarted = errors.New("ledger service is not started")

// Service is the operation layer of the ledger.
//
// Every operation is a single Ask to the Ledger actor. The actor handles one
// command at a time, which makes each operation atomic relative to every other.
type Service struct {
	actorSystem actor.ActorSystem
	logger      log.Logger
	askTimeout  time.Duration

	pid     *actor.PID
	started *atomic.Bool

	tracer     trace.Tracer
	operations metric.Int64Counter
	hints      metric.Int64Counter
}

// NewService creates an instance of Service
func NewService(system actor.ActorSystem, logger log.Logger, askTimeout time.Duration) *Service {
	return &Service{
		actorSystem: system,
		logger:      logger,
		askTimeout:  askTimeout,
		started:     atomic.NewBool(false),
		tracer:      otel.Tracer(instrumentationName),
	}
}

// Start spawns the ledger actor. The actor system must be started already.
func (s *Service) Start(ctx context.Context) error {
	if s.started.Load() {
		return nil
	}

	meter := otel.Meter(instrumentationName)
	operations, err := meter.Int64Counter("ledger.operations",
		metric.WithDescription("The number of ledger operations by outcome"))
	if err != nil {
		return errors.Wrap(err, "failed to create the operations counter")
	}

	hints, err := meter.Int64Counter("ledger.hints",
		metric.WithDescription("The number of hints received"))
	if err != nil {
		return errors.Wrap(err, "failed to create the hints counter")
	}

	// the registry lives in the actor's memory, hence it must never be passivated
	pid, err := s.actorSystem.Spawn(ctx, ActorName, NewLedger(), actor.WithLongLived())
	if err != nil {
		return errors.Wrap(err, "failed to spawn the ledger actor")
	}

	s.operations = operations
	s.hints = hints
	s.pid = pid
	s.started.Store(true)
	s.logger.Infof("ledger actor spawned at %s", pid.ID())
	return nil
}

// InitializeAccount registers the address with the given opening balance, or zero when absent
func (s *Service) InitializeAccount(ctx context.Context, address string, amount Amount) (*Reply, error) {
	ctx, span := s.tracer.Start(ctx, "InitializeAccount", trace.WithAttributes(
		attribute.String("ledger.address", address),
		attribute.Bool("ledger.amount.set", amount.IsSet()),
	))
	defer span.End()

	reply, err := s.askReply(ctx, &InitAccount{Address: address, Amount: amount})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s.record(ctx, span, "init_account", reply)
	return reply, nil
}

// Transfer moves amount from one account to another
func (s *Service) Transfer(ctx context.Context, from, to string, amount uint32) (*Reply, error) {
	ctx, span := s.tracer.Start(ctx, "Transfer", trace.WithAttributes(
		attribute.String("ledger.from", from),
		attribute.String("ledger.to", to),
		attribute.Int64("ledger.amount", int64(amount)),
	))
	defer span.End()

	reply, err := s.askReply(ctx, &Transfer{From: from, To: to, Amount: amount})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s.record(ctx, span, "transfer", reply)
	return reply, nil
}

// Balance returns the balance of an account
func (s *Service) Balance(ctx context.Context, address string) (*Balance, error) {
	ctx, span := s.tracer.Start(ctx, "Balance", trace.WithAttributes(
		attribute.String("ledger.address", address),
	))
	defer span.End()

	response, err := s.ask(ctx, &GetBalance{Address: address})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	balance, ok := response.(*Balance)
	if !ok {
		err := errors.Errorf("invalid reply=%T", response)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return balance, nil
}

// RecordHints logs the given hints. It never fails and never touches the registry.
func (s *Service) RecordHints(ctx context.Context, hints []string) {
	batchID := uuid.NewString()
	s.logger.Infof("Hints from client batch=%s count=%d", batchID, len(hints))
	for _, hint := range hints {
		s.logger.Infof("batch=%s * %s", batchID, hint)
	}

	if s.hints != nil {
		s.hints.Add(ctx, int64(len(hints)))
	}
}

func (s *Service) askReply(ctx context.Context, command any) (*Reply, error) {
	response, err := s.ask(ctx, command)
	if err != nil {
		return nil, err
	}

	switch x := response.(type) {
	case *Reply:
		return x, nil
	default:
		return nil, errors.Errorf("invalid reply=%T", response)
	}
}

func (s *Service) ask(ctx context.Context, command any) (any, error) {
	if !s.started.Load() {
		return nil, ErrNotStarted
	}

	response, err := actor.Ask(ctx, s.pid, command, s.askTimeout)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to ask the ledger actor with %T", command)
	}

	// the actor answers with an error when the registry refused a write
	if err, ok := response.(error); ok {
		return nil, errors.Wrap(err, "ledger actor failed")
	}
	return response, nil
}

func (s *Service) record(ctx context.Context, span trace.Span, operation string, reply *Reply) {
	span.SetAttributes(
		attribute.Bool("ledger.successful", reply.Successful),
		attribute.String("ledger.reason", reply.Reason.String()),
	)

	if s.operations != nil {
		s.operations.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("reason", reply.Reason.String()),
			attribute.Bool("successful", reply.Successful),
		))
	}
}
