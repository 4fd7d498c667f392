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
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/retr0h/botconsole/internal/cli"
	"github.com/retr0h/botconsole/internal/client"
	"github.com/retr0h/botconsole/internal/export"
)

// clientLogsExportCmd represents the clientLogsExport command.
var clientLogsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export log entries",
	Long: `Write console log entries to a file as JSON lines, oldest first.
Use --type to export one category.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		filePath, _ := cmd.Flags().GetString("file")
		filter, _ := cmd.Flags().GetString("type")
		batchSize, _ := cmd.Flags().GetInt("batch-size")

		fetcher := func(ctx context.Context) ([]client.LogEntry, error) {
			return consoleClient.GetLogs(ctx, filter)
		}

		result, err := export.Run(
			cmd.Context(),
			logger,
			fetcher,
			export.NewFileExporter(appFs, filePath),
			batchSize,
			func(exported int, total int) {
				logger.Debug("export progress", "exported", exported, "total", total)
			},
		)
		if err != nil {
			cli.HandleError(err, logger)
			return
		}

		if jsonOutput {
			printJSON(result)
			return
		}

		cli.PrintKV(
			"File", filePath,
			"Exported", strconv.Itoa(result.ExportedEntries),
			"Total", strconv.Itoa(result.TotalEntries),
		)
	},
}

func init() {
	clientLogsCmd.AddCommand(clientLogsExportCmd)

	clientLogsExportCmd.PersistentFlags().
		StringP("file", "o", "", "Output file (required)")
	clientLogsExportCmd.PersistentFlags().StringP("type", "t", "", "Only export this category")
	clientLogsExportCmd.PersistentFlags().
		Int("batch-size", export.DefaultBatchSize, "Entries between progress updates")

	_ = clientLogsExportCmd.MarkPersistentFlagRequired("file")
}
