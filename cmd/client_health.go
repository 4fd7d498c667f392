// Copyright (c) 2024 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retr0h/botconsole/internal/cli"
)

// clientHealthCmd represents the clientHealth command.
var clientHealthCmd = &cobra.Command{
	Use:   "health",
	Short: "Liveness and readiness",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		live, err := consoleClient.GetHealth(ctx)
		if err != nil {
			cli.HandleError(err, logger)
			return
		}

		ready, err := consoleClient.GetHealthReady(ctx)
		if err != nil {
			cli.HandleError(err, logger)
			return
		}

		if jsonOutput {
			printJSON(map[string]any{"health": live, "ready": ready})
			return
		}

		fmt.Println()
		cli.PrintKV("Status", live.Status, "Version", live.Version, "Uptime", live.Uptime)
		if ready.Error != "" {
			cli.PrintKV("Ready", ready.Status, "Error", ready.Error)
		} else {
			cli.PrintKV("Ready", ready.Status)
		}
	},
}

func init() {
	clientCmd.AddCommand(clientHealthCmd)
}
