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
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/retr0h/botconsole/internal/cli"
	"github.com/retr0h/botconsole/internal/client"
)

// clientWatchCmd represents the clientWatch command.
var clientWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream live console events",
	Long: `Open the live channel and print events until interrupted or logged
out by an owner.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		err := consoleClient.Watch(cmd.Context(), func(f client.Frame) {
			if jsonOutput {
				out, _ := json.Marshal(f)
				fmt.Println(string(out))
				return
			}

			data, _ := json.Marshal(f.Data)
			fmt.Println(
				cli.DimStyle.Render(time.Now().Format(time.TimeOnly)),
				f.Event,
				string(data),
			)
		})
		if err != nil {
			cli.HandleError(err, logger)
			return
		}

		logger.Debug("live channel closed", slog.String("url", appConfig.Client.URL))
	},
}

func init() {
	clientCmd.AddCommand(clientWatchCmd)
}
