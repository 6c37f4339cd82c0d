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

import "github.com/pkg/errors"

var (
	// ErrAccountExists is returned when creating an address that is already registered
	ErrAccountExists = errors.New("account already exists")
	// ErrAccountNotFound is returned when mutating an address that is not registered
	ErrAccountNotFound = errors.New("account not found")
)

// Registry maps account addresses to their balance.
//
// A Registry is not safe for concurrent use. It is owned by the Ledger actor and
// only ever touched from within the actor's Receive loop.
type Registry struct {
	balances map[string]uint32
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{balances: make(map[string]uint32)}
}

// Exists reports whether the address is registered
func (r *Registry) Exists(address string) bool {
	_, ok := r.balances[address]
	return ok
}

// Get returns the balance of the given address and whether it was found
func (r *Registry) Get(address string) (uint32, bool) {
	balance, ok := r.balances[address]
	return balance, ok
}

// Create registers the address with the given balance
func (r *Registry) Create(address string, balance uint32) error {
	if r.Exists(address) {
		return errors.Wrapf(ErrAccountExists, "address=%s", address)
	}
	r.balances[address] = balance
	return nil
}

// SetBalance overwrites the balance of an existing address
func (r *Registry) SetBalance(address string, balance uint32) error {
	if !r.Exists(address) {
		return errors.Wrapf(ErrAccountNotFound, "address=%s", address)
	}
	r.balances[address] = balance
	return nil
}

// Len returns the number of registered accounts
func (r *Registry) Len() int {
	return len(r.balances)
}
