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

	"github.com/spf13/cobra"

	"github.com/tochemey/goakt-ledger/internal/client"
)

var hintValues []string

// hintsCmd represents the hints command
var hintsCmd = &cobra.Command{
	Use:   "hints",
	Short: "Send comma separated hints to the ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		remote, ctx, cancel, err := dial(cmd.Context())
		if err != nil {
			return err
		}
		defer cancel()
		return sendHints(ctx, cmd.OutOrStdout(), remote, hintValues)
	},
}

func sendHints(ctx context.Context, w io.Writer, remote *client.Client, hints []string) error {
	if err := remote.SendHints(ctx, hints); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "Hints sent")
	return err
}

func init() {
	hintsCmd.Flags().StringSliceVar(&hintValues, "hints", nil, "hints, separated by commas")
	rootCmd.AddCommand(hintsCmd)
}
