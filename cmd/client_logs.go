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
	"time"

	"github.com/spf13/cobra"

	"github.com/retr0h/botconsole/internal/cli"
)

// clientLogsCmd represents the clientLogs command.
var clientLogsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Console log",
}

// clientLogsListCmd represents the clientLogsList command.
var clientLogsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List log entries",
	Long: `List console log entries, oldest first. Use --type to select one
category (auth, admin, system, error, info).
`,
	Run: func(cmd *cobra.Command, _ []string) {
		filter, _ := cmd.Flags().GetString("type")

		entries, err := consoleClient.GetLogs(cmd.Context(), filter)
		if err != nil {
			cli.HandleError(err, logger)
			return
		}

		if jsonOutput {
			printJSON(entries)
			return
		}

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			when := e.Time
			if t, err := time.Parse(time.RFC3339Nano, e.Time); err == nil {
				when = t.Local().Format(time.DateTime)
			}
			rows = append(rows, []string{when, e.Type, e.Message})
		}

		cli.PrintStyledTable([]cli.Section{
			{
				Title:   fmt.Sprintf("Logs (%d)", len(entries)),
				Headers: []string{"TIME", "TYPE", "MESSAGE"},
				Rows:    rows,
			},
		})
	},
}

// clientLogsClearCmd represents the clientLogsClear command.
var clientLogsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the log",
	Long: `Remove every log entry. The clear itself is recorded. Owner only.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := consoleClient.ClearLogs(cmd.Context()); err != nil {
			cli.HandleError(err, logger)
			return
		}

		logger.Info("logs cleared")
	},
}

func init() {
	clientCmd.AddCommand(clientLogsCmd)
	clientLogsCmd.AddCommand(clientLogsListCmd)
	clientLogsCmd.AddCommand(clientLogsClearCmd)

	clientLogsListCmd.PersistentFlags().StringP("type", "t", "", "Only show this category")
}
