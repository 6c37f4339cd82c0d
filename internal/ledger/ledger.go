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
	"math"

	"github.com/tochemey/goakt/v4/actor"
)

// Ledger is the actor owning the account registry.
//
// The actor runtime hands messages to Receive one at a time, so every command is
// handled as a single critical section: all the reads and writes a request needs
// happen before the next command is looked at.
type Ledger struct {
	registry *Registry
}

var _ actor.Actor = (*Ledger)(nil)

// NewLedger creates an instance of Ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// PreStart is used to pre-set initial values for the actor
func (x *Ledger) PreStart(*actor.Context) error {
	x.registry = NewRegistry()
	return nil
}

// Receive handles the messages sent to the actor
func (x *Ledger) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *actor.PostStart:
		ctx.Logger().Info("ledger is ready to accept accounts")

	case *InitAccount:
		reply := initAccount(x.registry, msg)
		ctx.Logger().Debugf("init address=%s successful=%t", msg.Address, reply.Successful)
		ctx.Response(reply)

	case *Transfer:
		reply, err := transfer(x.registry, msg)
		if err != nil {
			// the registry refused a write on an address checked a moment ago
			ctx.Logger().Errorf("transfer from=%s to=%s failed: %v", msg.From, msg.To, err)
			ctx.Response(err)
			return
		}
		ctx.Logger().Debugf("transfer from=%s to=%s amount=%d successful=%t", msg.From, msg.To, msg.Amount, reply.Successful)
		ctx.Response(reply)

	case *GetBalance:
		balance, found := x.registry.Get(msg.Address)
		ctx.Response(&Balance{
			Address: msg.Address,
			Balance: balance,
			Found:   found,
		})

	default:
		ctx.Unhandled()
	}
}

// PostStop is used to free-up resources when the actor stops
func (x *Ledger) PostStop(ctx *actor.Context) error {
	ctx.Logger().Infof("ledger stopped with %d account(s)", x.registry.Len())
	x.registry = nil
	return nil
}

// initAccount registers the address unless it is already known
func initAccount(registry *Registry, cmd *InitAccount) *Reply {
	if registry.Exists(cmd.Address) {
		return accountAlreadyExists(cmd.Address)
	}

	balance := cmd.Amount.OrZero()
	if err := registry.Create(cmd.Address, balance); err != nil {
		return accountAlreadyExists(cmd.Address)
	}
	return accountInitialized(cmd.Address, balance)
}

// transfer moves funds from one account to another.
// Both endpoints are read once, validated, and then written together.
func transfer(registry *Registry, cmd *Transfer) (*Reply, error) {
	fromBalance, fromFound := registry.Get(cmd.From)
	toBalance, toFound := registry.Get(cmd.To)

	switch {
	case !fromFound && !toFound:
		return accountsNotFound(cmd.From, cmd.To, SideBoth), nil
	case !fromFound:
		return accountsNotFound(cmd.From, cmd.To, SideFrom), nil
	case !toFound:
		return accountsNotFound(cmd.From, cmd.To, SideTo), nil
	}

	if fromBalance < cmd.Amount {
		return insufficientFunds(cmd.From), nil
	}

	// debit and credit cancel out
	if cmd.From == cmd.To {
		return amountTransferred(cmd.Amount, cmd.From, cmd.To), nil
	}

	if uint64(toBalance)+uint64(cmd.Amount) > math.MaxUint32 {
		return balanceOverflow(cmd.To), nil
	}

	if err := registry.SetBalance(cmd.From, fromBalance-cmd.Amount); err != nil {
		return nil, err
	}

	if err := registry.SetBalance(cmd.To, toBalance+cmd.Amount); err != nil {
		// put the debit back so the registry never shows half a transfer
		_ = registry.SetBalance(cmd.From, fromBalance)
		return nil, err
	}

	return amountTransferred(cmd.Amount, cmd.From, cmd.To), nil
}
