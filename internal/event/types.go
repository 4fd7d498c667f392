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

// Package event defines the live-channel event vocabulary.
package event

// Kind is the wire name of a server-to-client event.
type Kind string

// Server-to-client event kinds.
const (
	KindLogAppended       Kind = "logUpdate"
	KindAnalyticsTick     Kind = "analytics"
	KindOwnerBroadcast    Kind = "broadcastMsg"
	KindForcedLogoutAll   Kind = "forceLogout"
	KindForcedLogoutUser  Kind = "forceLogoutUser"
	KindActiveConnections Kind = "activeUsers"
	KindError             Kind = "error"
)

// Client-to-server command names.
const (
	CommandOwnerBroadcast   = "ownerBroadcast"
	CommandOwnerForceLogout = "ownerForceLogout"
)

// Event is a single fan-out message. When Target is set only connections
// bound to that identity receive it.
type Event struct {
	Kind   Kind
	Data   any
	Target string
}

// Frame is the JSON envelope written to and read from the live channel.
type Frame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Publisher delivers events to connected clients.
type Publisher interface {
	Publish(e Event)
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc func(e Event)

// Publish calls f(e).
func (f PublisherFunc) Publish(
	e Event,
) {
	f(e)
}
