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

package config

// Config represents the root structure of the YAML configuration file.
// This struct is used to unmarshal configuration data from Viper.
type Config struct {
	Server    Server    `mapstructure:"server"    mask:"struct"`
	Client    Client    `mapstructure:"client"    mask:"struct"`
	Storage   Storage   `mapstructure:"storage"`
	Analytics Analytics `mapstructure:"analytics"`
	Control   Control   `mapstructure:"control"`
	Telemetry Telemetry `mapstructure:"telemetry"`
	// Debug enable or disable debug option set from CLI.
	Debug bool `mapstructure:"debug"`
}

// Telemetry configuration settings.
type Telemetry struct {
	Tracing TracingConfig `mapstructure:"tracing,omitempty"`
	Metrics MetricsConfig `mapstructure:"metrics,omitempty"`
}

// MetricsConfig configuration settings for Prometheus metrics.
type MetricsConfig struct {
	// Path is the HTTP path for the Prometheus scrape endpoint.
	// Defaults to "/metrics" when empty.
	Path string `mapstructure:"path"`
}

// TracingConfig configuration settings for distributed tracing.
type TracingConfig struct {
	// Enabled enables or disables tracing.
	Enabled bool `mapstructure:"enabled"`
	// Exporter selects the trace exporter: "stdout" or "otlp".
	Exporter string `mapstructure:"exporter" validate:"omitempty,oneof=none stdout otlp"`
	// OTLPEndpoint is the gRPC endpoint for the OTLP exporter (e.g., "localhost:4317").
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

// Server configuration settings for the console.
type Server struct {
	// Port the server will bind to.
	Port int `mapstructure:"port" validate:"gte=0,lte=65535"`
	// Security contains session, user and CORS settings.
	Security ServerSecurity `mapstructure:"security" mask:"struct"`
}

// ServerSecurity represents security-related settings for the server.
type ServerSecurity struct {
	// CORS Cross-Origin Resource Sharing (CORS) settings for the server.
	CORS CORS `mapstructure:"cors"`
	// SigningKey is the key used for signing or validating session tokens.
	SigningKey string `mapstructure:"signing_key" validate:"required" mask:"password"`
	// SessionTTL is the fixed lifetime of a session (e.g. "1h").
	SessionTTL string `mapstructure:"session_ttl" validate:"omitempty,duration"`
	// CookieSecure marks the session cookie Secure (HTTPS only).
	CookieSecure bool `mapstructure:"cookie_secure"`
	// Users allowed to sign in to the console.
	Users []User `mapstructure:"users" validate:"dive"`
}

// User is a console account with a bcrypt password hash.
type User struct {
	// Username is the identity shown in the console.
	Username string `mapstructure:"username" validate:"required,identity"`
	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `mapstructure:"password_hash" validate:"required" mask:"password"`
	// Role is "Owner" or "Admin".
	Role string `mapstructure:"role" validate:"required,oneof=Owner Admin"`
}

// CORS represents the CORS (Cross-Origin Resource Sharing) settings.
type CORS struct {
	// List of origins allowed to access the server (e.g., "foo").
	AllowOrigins []string `mapstructure:"allow_origins,omitempty"`
}

// Client configuration settings for the CLI client.
type Client struct {
	// URL the client will connect to.
	URL string `mapstructure:"url"`
	// Username used to sign in.
	Username string `mapstructure:"username"`
	// Password used to sign in.
	Password string `mapstructure:"password" mask:"password"`
}

// Storage configuration for persisted console state.
type Storage struct {
	// LogFile is the path of the log snapshot.
	LogFile string `mapstructure:"log_file"`
	// AnnouncementFile is the path of the announcement document.
	AnnouncementFile string `mapstructure:"announcement_file"`
	// MaxLogEntries bounds the log store. Defaults to 200.
	MaxLogEntries int `mapstructure:"max_log_entries" validate:"gte=0"`
}

// Analytics configuration for the periodic analytics broadcast.
type Analytics struct {
	// Interval between ticks (e.g. "5s").
	Interval string `mapstructure:"interval" validate:"omitempty,duration"`
}

// Control configuration for owner control-plane commands.
type Control struct {
	// RestartDelay is how long to wait before exiting on restart (e.g. "1s").
	RestartDelay string `mapstructure:"restart_delay" validate:"omitempty,duration"`
	// RestartExitCode is the exit status used for a restart.
	RestartExitCode int `mapstructure:"restart_exit_code"`
}
