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
)

var (
	transferFrom   string
	transferTo     string
	transferAmount uint32
)

// transferCmd represents the transfer command
var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Transfer funds between two accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		remote, ctx, cancel, err := dial(cmd.Context())
		if err != nil {
			return err
		}
		defer cancel()
		return transfer(ctx, cmd.OutOrStdout(), remote, transferFrom, transferTo, transferAmount)
	},
}

func transfer(ctx context.Context, w io.Writer, remote *client.Client, from, to string, amount uint32) error {
	reply, err := remote.SendPayment(ctx, from, to, amount)
	if err != nil {
		return err
	}
	return report(w, reply)
}

func init() {
	transferCmd.Flags().StringVarP(&transferFrom, "from", "f", "", "account to debit")
	transferCmd.Flags().StringVarP(&transferTo, "to", "t", "", "account to credit")
	transferCmd.Flags().Uint32VarP(&transferAmount, "amount", "a", 0, "amount to transfer")
	_ = transferCmd.MarkFlagRequired("from")
	_ = transferCmd.MarkFlagRequired("to")
	_ = transferCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(transferCmd)
}
