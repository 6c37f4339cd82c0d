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
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tochemey/goakt/v4/actor"
	"github.com/tochemey/goakt/v4/log"
	"github.com/travisjeffery/go-dynaport"
	"google.golang.org/protobuf/proto"

	"github.com/tochemey/goakt-ledger/internal/ledger"
	"github.com/tochemey/goakt-ledger/internal/ledgerpb"
	"github.com/tochemey/goakt-ledger/internal/ledgerpb/ledgerpbconnect"
)

// ---- fake ledger ----

type fakeLedger struct {
	amounts []ledger.Amount
	hints   [][]string
	err     error
}

func (f *fakeLedger) InitializeAccount(_ context.Context, address string, amount ledger.Amount) (*ledger.Reply, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.amounts = append(f.amounts, amount)
	return &ledger.Reply{Successful: true, Message: "created " + address}, nil
}

func (f *fakeLedger) Transfer(_ context.Context, from, to string, amount uint32) (*ledger.Reply, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &ledger.Reply{
		Reason:  ledger.ReasonInsufficientFunds,
		Message: fmt.Sprintf("%s->%s:%d", from, to, amount),
	}, nil
}

func (f *fakeLedger) Balance(_ context.Context, address string) (*ledger.Balance, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &ledger.Balance{Address: address, Balance: 12, Found: true}, nil
}

func (f *fakeLedger) RecordHints(_ context.Context, hints []string) {
	f.hints = append(f.hints, hints)
}

// ---- helpers ----

func newTestClient(t *testing.T, operations Ledger) ledgerpbconnect.LedgerServiceClient {
	t.Helper()
	handler, err := NewLedgerService(operations, log.DiscardLogger, 0).Handler()
	require.NoError(t, err)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return ledgerpbconnect.NewLedgerServiceClient(server.Client(), server.URL)
}

func newTestLedger(t *testing.T) *ledger.Service {
	t.Helper()
	ctx := context.TODO()

	actorSystem, err := actor.NewActorSystem("testrpc", actor.WithLogger(log.DiscardLogger))
	require.NoError(t, err)
	require.NoError(t, actorSystem.Start(ctx))
	t.Cleanup(func() {
		assert.NoError(t, actorSystem.Stop(ctx))
	})

	operations := ledger.NewService(actorSystem, log.DiscardLogger, 5*time.Second)
	require.NoError(t, operations.Start(ctx))
	return operations
}

func TestLedgerServiceTranslation(t *testing.T) {
	t.Run("init amount presence is preserved", func(t *testing.T) {
		ctx := context.TODO()
		fake := new(fakeLedger)
		client := newTestClient(t, fake)

		_, err := client.InitAccount(ctx, connect.NewRequest(&ledgerpb.InitAccountRequest{Addr: "a"}))
		require.NoError(t, err)
		_, err = client.InitAccount(ctx, connect.NewRequest(&ledgerpb.InitAccountRequest{Addr: "b", InitAmount: proto.Uint32(0)}))
		require.NoError(t, err)
		resp, err := client.InitAccount(ctx, connect.NewRequest(&ledgerpb.InitAccountRequest{Addr: "c", InitAmount: proto.Uint32(7)}))
		require.NoError(t, err)
		assert.True(t, resp.Msg.GetSuccessful())
		assert.Equal(t, "created c", resp.Msg.GetMessage())

		require.Len(t, fake.amounts, 3)
		assert.Equal(t, ledger.NoAmount(), fake.amounts[0])
		assert.Equal(t, ledger.SomeAmount(0), fake.amounts[1])
		assert.Equal(t, ledger.SomeAmount(7), fake.amounts[2])
	})
	t.Run("business rejection is a reply", func(t *testing.T) {
		client := newTestClient(t, new(fakeLedger))
		resp, err := client.SendPayment(context.TODO(), connect.NewRequest(&ledgerpb.PaymentRequest{
			FromAddr: "a",
			ToAddr:   "b",
			Amount:   4,
		}))
		require.NoError(t, err)
		assert.False(t, resp.Msg.GetSuccessful())
		assert.Equal(t, "a->b:4", resp.Msg.GetMessage())
	})
	t.Run("hints are forwarded", func(t *testing.T) {
		fake := new(fakeLedger)
		client := newTestClient(t, fake)

		_, err := client.SendHints(context.TODO(), connect.NewRequest(&ledgerpb.HintsRequest{}))
		require.NoError(t, err)
		_, err = client.SendHints(context.TODO(), connect.NewRequest(&ledgerpb.HintsRequest{Hints: []string{"a", "b"}}))
		require.NoError(t, err)

		require.Len(t, fake.hints, 2)
		assert.Empty(t, fake.hints[0])
		assert.Equal(t, []string{"a", "b"}, fake.hints[1])
	})
	t.Run("infrastructure failures are transport errors", func(t *testing.T) {
		client := newTestClient(t, &fakeLedger{err: errors.New("mailbox is gone")})

		_, err := client.InitAccount(context.TODO(), connect.NewRequest(&ledgerpb.InitAccountRequest{Addr: "a"}))
		require.Error(t, err)
		assert.Equal(t, connect.CodeInternal, connect.CodeOf(err))

		_, err = client.SendPayment(context.TODO(), connect.NewRequest(&ledgerpb.PaymentRequest{FromAddr: "a", ToAddr: "b"}))
		assert.Equal(t, connect.CodeInternal, connect.CodeOf(err))

		_, err = client.GetBalance(context.TODO(), connect.NewRequest(&ledgerpb.GetBalanceRequest{Addr: "a"}))
		assert.Equal(t, connect.CodeInternal, connect.CodeOf(err))
	})
}

func TestLedgerService(t *testing.T) {
	ctx := context.TODO()
	client := newTestClient(t, newTestLedger(t))

	init := func(address string, amount *uint32) *ledgerpb.Reply {
		resp, err := client.InitAccount(ctx, connect.NewRequest(&ledgerpb.InitAccountRequest{Addr: address, InitAmount: amount}))
		require.NoError(t, err)
		return resp.Msg
	}
	pay := func(from, to string, amount uint32) *ledgerpb.Reply {
		resp, err := client.SendPayment(ctx, connect.NewRequest(&ledgerpb.PaymentRequest{FromAddr: from, ToAddr: to, Amount: amount}))
		require.NoError(t, err)
		return resp.Msg
	}
	balance := func(address string) *ledgerpb.GetBalanceResponse {
		resp, err := client.GetBalance(ctx, connect.NewRequest(&ledgerpb.GetBalanceRequest{Addr: address}))
		require.NoError(t, err)
		return resp.Msg
	}

	reply := init("alice", proto.Uint32(100))
	require.True(t, reply.GetSuccessful())
	assert.Equal(t, "Account alice initialized and balance set to 100", reply.GetMessage())

	reply = init("bob", nil)
	require.True(t, reply.GetSuccessful())
	assert.Equal(t, "Account bob initialized and balance set to 0", reply.GetMessage())

	reply = init("bob", proto.Uint32(3))
	require.False(t, reply.GetSuccessful())
	assert.Equal(t, "Account bob already exists", reply.GetMessage())

	reply = pay("alice", "bob", 30)
	require.True(t, reply.GetSuccessful())
	assert.Equal(t, "Amount 30 transferred from alice to bob", reply.GetMessage())

	reply = pay("alice", "bob", 1000)
	require.False(t, reply.GetSuccessful())
	assert.Equal(t, "Account alice has insufficient funds", reply.GetMessage())

	reply = pay("carol", "dave", 1)
	require.False(t, reply.GetSuccessful())
	assert.Equal(t, "Neither from account carol nor to account dave exist", reply.GetMessage())

	reply = pay("carol", "bob", 1)
	require.False(t, reply.GetSuccessful())
	assert.Equal(t, "From account carol doesn't exist", reply.GetMessage())

	reply = pay("alice", "dave", 1)
	require.False(t, reply.GetSuccessful())
	assert.Equal(t, "To account dave doesn't exist", reply.GetMessage())

	assert.EqualValues(t, 70, balance("alice").GetBalance())
	assert.EqualValues(t, 30, balance("bob").GetBalance())
	assert.False(t, balance("dave").GetFound())

	_, err := client.SendHints(ctx, connect.NewRequest(&ledgerpb.HintsRequest{Hints: []string{"a", "b"}}))
	require.NoError(t, err)
}

func TestLedgerServiceStartStop(t *testing.T) {
	ctx := context.TODO()
	port := dynaport.Get(1)[0]

	rpcService := NewLedgerService(newTestLedger(t), log.DiscardLogger, port)
	require.NoError(t, rpcService.Start())

	client := ledgerpbconnect.NewLedgerServiceClient(http.DefaultClient, fmt.Sprintf("http://127.0.0.1:%d", port))
	require.Eventually(t, func() bool {
		resp, err := client.InitAccount(ctx, connect.NewRequest(&ledgerpb.InitAccountRequest{Addr: "alice"}))
		return err == nil && resp.Msg.GetSuccessful()
	}, 5*time.Second, 50*time.Millisecond)

	stopCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	require.NoError(t, rpcService.Stop(stopCtx))

	_, err := client.GetBalance(ctx, connect.NewRequest(&ledgerpb.GetBalanceRequest{Addr: "alice"}))
	require.Error(t, err)
}

func TestLedgerServiceStopBeforeStart(t *testing.T) {
	rpcService := NewLedgerService(new(fakeLedger), log.DiscardLogger, 0)
	require.NoError(t, rpcService.Stop(context.TODO()))
}
