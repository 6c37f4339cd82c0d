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

// Amount is an optional opening balance.
// The zero value is an absent amount, which is distinct from an explicit zero.
type Amount struct {
	value uint32
	set   bool
}

// SomeAmount returns a present Amount
func SomeAmount(value uint32) Amount {
	return Amount{value: value, set: true}
}

// NoAmount returns an absent Amount
func NoAmount() Amount {
	return Amount{}
}

// AmountFromPtr converts a nullable value, as found on the wire, into an Amount
func AmountFromPtr(value *uint32) Amount {
	if value == nil {
		return NoAmount()
	}
	return SomeAmount(*value)
}

// Get returns the value and whether it is present
func (a Amount) Get() (uint32, bool) {
	return a.value, a.set
}

// IsSet reports whether the amount is present
func (a Amount) IsSet() bool {
	return a.set
}

// OrZero returns the value when present and zero otherwise
func (a Amount) OrZero() uint32 {
	if !a.set {
		return 0
	}
	return a.value
}
