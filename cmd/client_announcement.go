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
	"github.com/retr0h/botconsole/internal/client"
)

// clientAnnouncementCmd represents the clientAnnouncement command.
var clientAnnouncementCmd = &cobra.Command{
	Use:   "announcement",
	Short: "Console announcement",
}

// clientAnnouncementGetCmd represents the clientAnnouncementGet command.
var clientAnnouncementGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the announcement",
	Run: func(cmd *cobra.Command, _ []string) {
		resp, err := consoleClient.GetAnnouncement(cmd.Context())
		if err != nil {
			cli.HandleError(err, logger)
			return
		}

		if jsonOutput {
			printJSON(resp)
			return
		}

		fmt.Println()
		cli.PrintKV("Title", resp.Title)
		cli.PrintKV("Message", resp.Message)
	},
}

// clientAnnouncementSetCmd represents the clientAnnouncementSet command.
var clientAnnouncementSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the announcement",
	Long: `Replace the announcement shown to every console user. Owner only.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		title, _ := cmd.Flags().GetString("title")
		message, _ := cmd.Flags().GetString("message")

		err := consoleClient.SetAnnouncement(cmd.Context(), client.Announcement{
			Title:   title,
			Message: message,
		})
		if err != nil {
			cli.HandleError(err, logger)
			return
		}

		logger.Info("announcement updated")
	},
}

func init() {
	clientCmd.AddCommand(clientAnnouncementCmd)
	clientAnnouncementCmd.AddCommand(clientAnnouncementGetCmd)
	clientAnnouncementCmd.AddCommand(clientAnnouncementSetCmd)

	clientAnnouncementSetCmd.PersistentFlags().StringP("title", "t", "", "Announcement title")
	clientAnnouncementSetCmd.PersistentFlags().StringP("message", "m", "", "Announcement body")

	_ = clientAnnouncementSetCmd.MarkPersistentFlagRequired("title")
}
