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
	"github.com/spf13/viper"

	"github.com/retr0h/botconsole/internal/cli"
	"github.com/retr0h/botconsole/internal/client"
	"github.com/retr0h/botconsole/internal/telemetry"
)

var (
	consoleClient  *client.Client
	tracerShutdown func(context.Context) error
)

// clientCmd represents the client command.
var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Talk to a running console",
	Long: `Sign in to a running console with the configured credentials and
call its API. The session is ended when the command finishes.
`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		var err error
		tracerShutdown, err = telemetry.InitTracer(
			cmd.Context(),
			"botconsole-cli",
			versionInfo().GitVersion,
			appConfig.Telemetry.Tracing,
		)
		if err != nil {
			logFatal("failed to initialize tracer", err)
		}

		logger.Debug(
			"client configuration",
			slog.String("config_file", viper.ConfigFileUsed()),
			slog.Bool("debug", appConfig.Debug),
			slog.String("client.url", appConfig.Client.URL),
			slog.String("client.username", appConfig.Client.Username),
		)

		consoleClient = client.New(logger, appConfig.Client)

		resp, err := consoleClient.Login(cmd.Context())
		if err != nil {
			cli.HandleError(err, logger)
			logFatal("failed to sign in", nil, "url", appConfig.Client.URL)
		}

		logger.Debug(
			"signed in",
			slog.String("user", resp.User.Username),
			slog.String("role", resp.User.Role),
		)
	},
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		if consoleClient != nil && consoleClient.Token() != "" {
			_ = consoleClient.Logout(cmd.Context())
		}

		if tracerShutdown != nil {
			_ = tracerShutdown(context.Background())
		}
	},
}

func init() {
	rootCmd.AddCommand(clientCmd)

	clientCmd.PersistentFlags().
		StringP("url", "", "http://127.0.0.1:8080", "URL the client will connect to")
	clientCmd.PersistentFlags().
		StringP("username", "u", "", "Console username")

	_ = viper.BindPFlag("client.url", clientCmd.PersistentFlags().Lookup("url"))
	_ = viper.BindPFlag("client.username", clientCmd.PersistentFlags().Lookup("username"))
}
