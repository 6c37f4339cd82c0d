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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("create and get", func(t *testing.T) {
		registry := NewRegistry()
		require.False(t, registry.Exists("alice"))

		require.NoError(t, registry.Create("alice", 100))
		require.True(t, registry.Exists("alice"))

		balance, ok := registry.Get("alice")
		require.True(t, ok)
		assert.EqualValues(t, 100, balance)
		assert.Equal(t, 1, registry.Len())
	})
	t.Run("create twice keeps the first balance", func(t *testing.T) {
		registry := NewRegistry()
		require.NoError(t, registry.Create("alice", 100))

		err := registry.Create("alice", 5)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrAccountExists))

		balance, _ := registry.Get("alice")
		assert.EqualValues(t, 100, balance)
	})
	t.Run("get unknown address", func(t *testing.T) {
		registry := NewRegistry()
		balance, ok := registry.Get("ghost")
		assert.False(t, ok)
		assert.Zero(t, balance)
	})
	t.Run("set balance", func(t *testing.T) {
		registry := NewRegistry()
		require.NoError(t, registry.Create("alice", 1))
		require.NoError(t, registry.SetBalance("alice", 42))

		balance, _ := registry.Get("alice")
		assert.EqualValues(t, 42, balance)
	})
	t.Run("set balance on a missing address", func(t *testing.T) {
		registry := NewRegistry()
		err := registry.SetBalance("ghost", 42)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrAccountNotFound))
		assert.False(t, registry.Exists("ghost"))
		assert.Zero(t, registry.Len())
	})
	t.Run("empty address is a valid key", func(t *testing.T) {
		registry := NewRegistry()
		require.NoError(t, registry.Create("", 7))
		balance, ok := registry.Get("")
		require.True(t, ok)
		assert.EqualValues(t, 7, balance)
	})
}

func TestAmount(t *testing.T) {
	absent := NoAmount()
	_, ok := absent.Get()
	assert.False(t, ok)
	assert.False(t, absent.IsSet())
	assert.Zero(t, absent.OrZero())

	zero := SomeAmount(0)
	value, ok := zero.Get()
	assert.True(t, ok)
	assert.Zero(t, value)
	assert.NotEqual(t, absent, zero)

	var wire uint32 = 12
	assert.Equal(t, SomeAmount(12), AmountFromPtr(&wire))
	assert.Equal(t, NoAmount(), AmountFromPtr(nil))
	assert.Equal(t, Amount{}, NoAmount())
}
