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

import "fmt"

// Reason classifies the outcome of a ledger operation
type Reason int

const (
	// ReasonNone is the reason attached to successful replies
	ReasonNone Reason = iota
	ReasonAccountAlreadyExists
	ReasonAccountNotFound
	ReasonInsufficientFunds
	ReasonBalanceOverflow
)

// String returns the reason name, used as a metric attribute
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonAccountAlreadyExists:
		return "account_already_exists"
	case ReasonAccountNotFound:
		return "account_not_found"
	case ReasonInsufficientFunds:
		return "insufficient_funds"
	case ReasonBalanceOverflow:
		return "balance_overflow"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Side names the transfer endpoint(s) a rejection refers to
type Side int

const (
	SideNone Side = iota
	SideFrom
	SideTo
	SideBoth
)

// Reply is the business outcome of a ledger operation.
// Rejections are replies as well: they never surface as errors.
type Reply struct {
	Successful bool
	Reason     Reason
	// Missing is set when Reason is ReasonAccountNotFound
	Missing Side
	Message string
}

func accountInitialized(address string, balance uint32) *Reply {
	return &Reply{
		Successful: true,
		Message:    fmt.Sprintf("Account %s initialized and balance set to %d", address, balance),
	}
}

func accountAlreadyExists(address string) *Reply {
	return &Reply{
		Reason:  ReasonAccountAlreadyExists,
		Message: fmt.Sprintf("Account %s already exists", address),
	}
}

func amountTransferred(amount uint32, from, to string) *Reply {
	return &Reply{
		Successful: true,
		Message:    fmt.Sprintf("Amount %d transferred from %s to %s", amount, from, to),
	}
}

func insufficientFunds(from string) *Reply {
	return &Reply{
		Reason:  ReasonInsufficientFunds,
		Message: fmt.Sprintf("Account %s has insufficient funds", from),
	}
}

func balanceOverflow(to string) *Reply {
	return &Reply{
		Reason:  ReasonBalanceOverflow,
		Message: fmt.Sprintf("Account %s balance would overflow", to),
	}
}

func accountsNotFound(from, to string, missing Side) *Reply {
	reply := &Reply{Reason: ReasonAccountNotFound, Missing: missing}
	switch missing {
	case SideBoth:
		reply.Message = fmt.Sprintf("Neither from account %s nor to account %s exist", from, to)
	case SideFrom:
		reply.Message = fmt.Sprintf("From account %s doesn't exist", from)
	case SideTo:
		reply.Message = fmt.Sprintf("To account %s doesn't exist", to)
	}
	return reply
}
