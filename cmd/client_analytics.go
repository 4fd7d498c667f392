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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/retr0h/botconsole/internal/cli"
)

// clientAnalyticsCmd represents the clientAnalytics command.
var clientAnalyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Connection and message counters",
	Run: func(cmd *cobra.Command, _ []string) {
		resp, err := consoleClient.GetAnalytics(cmd.Context())
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
			"Connections", strconv.Itoa(resp.ActiveConnections),
			"Messages", strconv.FormatUint(resp.TotalMessages, 10),
			"Uptime", resp.Uptime,
		)
		cli.PrintKV("Users", cli.FormatList(resp.ActiveUsers))
	},
}

// clientAnalyticsRecordCmd represents the clientAnalyticsRecord command.
var clientAnalyticsRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Add to the processed-message counter",
	Long: `Add --count to the processed-message counter. Owner only.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		count, _ := cmd.Flags().GetUint64("count")

		total, err := consoleClient.RecordMessages(cmd.Context(), count)
		if err != nil {
			cli.HandleError(err, logger)
			return
		}

		fmt.Println()
		cli.PrintKV("Messages", strconv.FormatUint(total, 10))
	},
}

func init() {
	clientCmd.AddCommand(clientAnalyticsCmd)
	clientAnalyticsCmd.AddCommand(clientAnalyticsRecordCmd)

	clientAnalyticsRecordCmd.PersistentFlags().Uint64P("count", "c", 1, "Messages to add")
}
