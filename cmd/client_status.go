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
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/retr0h/botconsole/internal/cli"
)

// clientStatusCmd represents the clientStatus command.
var clientStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Console status",
	Long: `Show the signed-in user, process uptime and host details.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		resp, err := consoleClient.GetStatus(ctx)
		if err != nil {
			cli.HandleError(err, logger)
			return
		}

		data, err := consoleClient.GetStatusData(ctx)
		if err != nil {
			cli.HandleError(err, logger)
			return
		}

		if jsonOutput {
			printJSON(map[string]any{"status": resp, "data": data})
			return
		}

		fmt.Println()
		cli.PrintKV("User", resp.CurrentUser.Username, "Role", resp.CurrentUser.Role)
		cli.PrintKV("Uptime", resp.Uptime, "Started", data.StartedAt)
		cli.PrintKV("Host", data.Hostname, "Platform", resp.Platform)
		cli.PrintKV("Go", resp.GoVersion, "Memory", data.Memory)
		cli.PrintKV("Version", resp.Version)
	},
}

// clientSystemCmd represents the clientSystem command.
var clientSystemCmd = &cobra.Command{
	Use:   "system",
	Short: "Host resource usage",
	Run: func(cmd *cobra.Command, _ []string) {
		resp, err := consoleClient.GetSystem(cmd.Context())
		if err != nil {
			cli.HandleError(err, logger)
			return
		}

		if jsonOutput {
			printJSON(resp)
			return
		}

		fmt.Println()
		cli.PrintKV(
			"CPU", strconv.FormatFloat(resp.CPUPercent, 'f', 1, 64)+"%",
			"Platform", resp.Platform,
		)
		cli.PrintKV(
			"Memory", cli.FormatBytes(resp.MemoryUsed)+" / "+cli.FormatBytes(resp.TotalMem),
			"Free", cli.FormatBytes(resp.FreeMem),
		)
	},
}

func printJSON(
	v any,
) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logFatal("failed to encode output", err)
	}

	fmt.Println(string(out))
}

func init() {
	clientCmd.AddCommand(clientStatusCmd)
	clientCmd.AddCommand(clientSystemCmd)
}
