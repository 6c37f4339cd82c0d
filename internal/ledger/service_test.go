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
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tochemey/goakt/v4/actor"
	"github.com/tochemey/goakt/v4/log"
	"go.uber.org/atomic"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.TODO()

	actorSystem, err := actor.NewActorSystem("testledger",
		actor.WithLogger(log.DiscardLogger),
		actor.WithActorInitMaxRetries(1))
	require.NoError(t, err)
	require.NoError(t, actorSystem.Start(ctx))
	t.Cleanup(func() {
		assert.NoError(t, actorSystem.Stop(ctx))
	})

	service := NewService(actorSystem, log.DiscardLogger, 5*time.Second)
	require.NoError(t, service.Start(ctx))
	return service
}

func requireBalance(t *testing.T, service *Service, address string, expected uint32) {
	t.Helper()
	balance, err := service.Balance(context.TODO(), address)
	require.NoError(t, err)
	require.True(t, balance.Found, "address=%s is not registered", address)
	require.Equal(t, expected, balance.Balance, "balance of address=%s", address)
}

func TestService(t *testing.T) {
	t.Run("alice and bob", func(t *testing.T) {
		ctx := context.TODO()
		service := newTestService(t)

		reply, err := service.InitializeAccount(ctx, "alice", SomeAmount(100))
		require.NoError(t, err)
		require.True(t, reply.Successful)
		requireBalance(t, service, "alice", 100)

		reply, err = service.InitializeAccount(ctx, "bob", NoAmount())
		require.NoError(t, err)
		require.True(t, reply.Successful)
		requireBalance(t, service, "bob", 0)

		reply, err = service.Transfer(ctx, "alice", "bob", 30)
		require.NoError(t, err)
		require.True(t, reply.Successful)
		requireBalance(t, service, "alice", 70)
		requireBalance(t, service, "bob", 30)

		reply, err = service.Transfer(ctx, "alice", "bob", 1000)
		require.NoError(t, err)
		require.False(t, reply.Successful)
		assert.Equal(t, ReasonInsufficientFunds, reply.Reason)
		requireBalance(t, service, "alice", 70)
		requireBalance(t, service, "bob", 30)
	})
	t.Run("init twice", func(t *testing.T) {
		ctx := context.TODO()
		service := newTestService(t)

		reply, err := service.InitializeAccount(ctx, "alice", NoAmount())
		require.NoError(t, err)
		require.True(t, reply.Successful)

		reply, err = service.InitializeAccount(ctx, "alice", SomeAmount(500))
		require.NoError(t, err)
		require.False(t, reply.Successful)
		assert.Equal(t, ReasonAccountAlreadyExists, reply.Reason)
		requireBalance(t, service, "alice", 0)
	})
	t.Run("missing accounts", func(t *testing.T) {
		ctx := context.TODO()
		service := newTestService(t)

		reply, err := service.Transfer(ctx, "x", "y", 3)
		require.NoError(t, err)
		require.False(t, reply.Successful)
		assert.Equal(t, SideBoth, reply.Missing)

		_, err = service.InitializeAccount(ctx, "alice", SomeAmount(3))
		require.NoError(t, err)

		reply, err = service.Transfer(ctx, "alice", "y", 3)
		require.NoError(t, err)
		require.False(t, reply.Successful)
		assert.Equal(t, SideTo, reply.Missing)
		assert.Contains(t, reply.Message, "y")
		requireBalance(t, service, "alice", 3)

		balance, err := service.Balance(ctx, "y")
		require.NoError(t, err)
		assert.False(t, balance.Found)
	})
	t.Run("hints are always acknowledged", func(t *testing.T) {
		ctx := context.TODO()
		service := newTestService(t)

		_, err := service.InitializeAccount(ctx, "alice", SomeAmount(9))
		require.NoError(t, err)

		service.RecordHints(ctx, nil)
		service.RecordHints(ctx, []string{})
		service.RecordHints(ctx, []string{"a", "b"})
		requireBalance(t, service, "alice", 9)
	})
	t.Run("not started", func(t *testing.T) {
		service := NewService(nil, log.DiscardLogger, time.Second)

		_, err := service.InitializeAccount(context.TODO(), "alice", NoAmount())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotStarted))

		_, err = service.Transfer(context.TODO(), "alice", "bob", 1)
		assert.True(t, errors.Is(err, ErrNotStarted))

		_, err = service.Balance(context.TODO(), "alice")
		assert.True(t, errors.Is(err, ErrNotStarted))

		// hints do not need the registry
		service.RecordHints(context.TODO(), []string{"still fine"})
	})
}

func TestServiceConcurrentTransfers(t *testing.T) {
	t.Run("one way drains the source exactly", func(t *testing.T) {
		ctx := context.TODO()
		service := newTestService(t)

		_, err := service.InitializeAccount(ctx, "alice", SomeAmount(50))
		require.NoError(t, err)
		_, err = service.InitializeAccount(ctx, "bob", SomeAmount(50))
		require.NoError(t, err)

		const callers = 200
		succeeded := atomic.NewInt32(0)
		rejected := atomic.NewInt32(0)
		failed := atomic.NewInt32(0)

		var wg sync.WaitGroup
		wg.Add(callers)
		for range callers {
			go func() {
				defer wg.Done()
				reply, err := service.Transfer(ctx, "alice", "bob", 1)
				switch {
				case err != nil:
					failed.Inc()
				case reply.Successful:
					succeeded.Inc()
				case reply.Reason == ReasonInsufficientFunds:
					rejected.Inc()
				default:
					failed.Inc()
				}
			}()
		}
		wg.Wait()

		require.Zero(t, failed.Load())
		require.EqualValues(t, 50, succeeded.Load())
		require.EqualValues(t, callers-50, rejected.Load())
		requireBalance(t, service, "alice", 0)
		requireBalance(t, service, "bob", 100)
	})
	t.Run("both ways conserve the total", func(t *testing.T) {
		ctx := context.TODO()
		service := newTestService(t)

		_, err := service.InitializeAccount(ctx, "alice", SomeAmount(10))
		require.NoError(t, err)
		_, err = service.InitializeAccount(ctx, "bob", SomeAmount(10))
		require.NoError(t, err)

		const callers = 300
		failed := atomic.NewInt32(0)

		var wg sync.WaitGroup
		wg.Add(callers)
		for i := range callers {
			go func(i int) {
				defer wg.Done()
				from, to := "alice", "bob"
				if i%2 == 0 {
					from, to = to, from
				}

				if _, err := service.Transfer(ctx, from, to, 1); err != nil {
					failed.Inc()
				}

				// a concurrent reader always sees both sides of a transfer or neither
				alice, err := service.Balance(ctx, "alice")
				if err != nil {
					failed.Inc()
					return
				}
				bob, err := service.Balance(ctx, "bob")
				if err != nil {
					failed.Inc()
					return
				}
				if alice.Balance > 20 || bob.Balance > 20 {
					failed.Inc()
				}
			}(i)
		}
		wg.Wait()

		require.Zero(t, failed.Load())

		alice, err := service.Balance(ctx, "alice")
		require.NoError(t, err)
		bob, err := service.Balance(ctx, "bob")
		require.NoError(t, err)
		require.EqualValues(t, 20, alice.Balance+bob.Balance)
	})
}
