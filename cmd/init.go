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
	"io"

	"github.com/spf13/cobra"

	"github.com/tochemey/goakt-ledger/internal/client"
	"github.com/tochemey/goakt-ledger/internal/ledger"
)

var (
	initAddress string
	initAmount  uint32
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize an account with an optional opening balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		remote, ctx, cancel, err := dial(cmd.Context())
		if err != nil {
			return err
		}
		defer cancel()

		amount := ledger.NoAmount()
		if cmd.Flags().Changed("init-amount") {
			amount = ledger.SomeAmount(initAmount)
		}
		return initAccount(ctx, cmd.OutOrStdout(), remote, initAddress, amount)
	},
}

func initAccount(ctx context.Context, w io.Writer, remote *client.Client, address string, amount ledger.Amount) error {
	reply, err := remote.InitAccount(ctx, address, amount)
	if err != nil {
		return err
	}
	return report(w, reply)
}

func init() {
	initCmd.Flags().StringVarP(&initAddress, "address", "a", "", "account address")
	initCmd.Flags().Uint32VarP(&initAmount, "init-amount", "i", 0, "opening balance, zero when omitted")
	_ = initCmd.MarkFlagRequired("address")
	rootCmd.AddCommand(initCmd)
}
