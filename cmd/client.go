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

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/tochemey/goakt-ledger/internal/client"
	"github.com/tochemey/goakt-ledger/internal/ledgerpb"
)

// errRejected is returned when the ledger answered with an unsuccessful reply
var errRejected = errors.New("operation rejected by the ledger")

// dial builds a ledger client and a call context bounded by the client timeout
func dial(ctx context.Context) (*client.Client, context.Context, context.CancelFunc, error) {
	config, err := client.GetConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, config.Timeout)
	return client.New(config), callCtx, cancel, nil
}

// report prints the reply and turns an unsuccessful one into errRejected
func report(w io.Writer, reply *ledgerpb.Reply) error {
	if reply.GetSuccessful() {
		_, err := fmt.Fprintf(w, "SUCCESS: %s\n", reply.GetMessage())
		return err
	}

	if _, err := fmt.Fprintf(w, "FAILURE: %s\n", reply.GetMessage()); err != nil {
		return err
	}
	return errRejected
}
