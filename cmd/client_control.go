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
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/retr0h/botconsole/internal/cli"
	"github.com/retr0h/botconsole/internal/event"
)

// clientBroadcastCmd represents the clientBroadcast command.
var clientBroadcastCmd = &cobra.Command{
	Use:   "broadcast",
	Short: "Broadcast a message to connected operators",
	Long: `Send a message to every live console connection. Owner only.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		message, _ := cmd.Flags().GetString("message")
		live, _ := cmd.Flags().GetBool("live")

		send := consoleClient.Broadcast
		if live {
			send = func(ctx context.Context, text string) error {
				return consoleClient.Command(ctx, event.CommandOwnerBroadcast, text)
			}
		}

		if err := send(cmd.Context(), message); err != nil {
			cli.HandleError(err, logger)
			return
		}

		logger.Info("broadcast sent")
	},
}

// clientForceLogoutCmd represents the clientForceLogout command.
var clientForceLogoutCmd = &cobra.Command{
	Use:   "force-logout",
	Short: "Revoke sessions",
	Long: `Revoke every session (--target all) or those of one user. Live
connections receive a logout frame. Owner only.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		target, _ := cmd.Flags().GetString("target")

		revoked, err := consoleClient.ForceLogout(cmd.Context(), target)
		if err != nil {
			cli.HandleError(err, logger)
			return
		}

		logger.Info(
			"sessions revoked",
			slog.String("target", target),
			slog.Int("revoked", revoked),
		)
	},
}

// clientRestartCmd represents the clientRestart command.
var clientRestartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the console process",
	Long: `Ask the console process to exit so its supervisor restarts it.
Shutdown is not graceful. Owner only.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := consoleClient.Restart(cmd.Context()); err != nil {
			cli.HandleError(err, logger)
			return
		}

		logger.Warn("restart requested")
	},
}

func init() {
	clientCmd.AddCommand(clientBroadcastCmd)
	clientCmd.AddCommand(clientForceLogoutCmd)
	clientCmd.AddCommand(clientRestartCmd)

	clientBroadcastCmd.PersistentFlags().StringP("message", "m", "", "Message text")
	clientBroadcastCmd.PersistentFlags().
		BoolP("live", "l", false, "Send over the live channel instead of HTTP")
	clientForceLogoutCmd.PersistentFlags().StringP("target", "t", "all", "\"all\" or a username")

	_ = clientBroadcastCmd.MarkPersistentFlagRequired("message")
}
