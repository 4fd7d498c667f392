// Copyright (c) 2026 John Dewey

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

package cli

import (
	"context"
	"time"
)

// ShutdownTimeout bounds how long Stop may take once the console is
// asked to exit.
const ShutdownTimeout = 10 * time.Second

// Lifecycle is a console component started once and stopped on exit,
// such as the API server or the analytics aggregator.
type Lifecycle interface {
	// Start launches the component in the background.
	Start()
	// Stop releases the component. It must return once ctx expires.
	Stop(ctx context.Context)
}

// RunServer waits for ctx to end, stops component within ShutdownTimeout,
// then calls each cleanup in order. Cleanups typically flush the tracer
// and meter after the last request has been served.
func RunServer(
	ctx context.Context,
	component Lifecycle,
	cleanupFns ...func(),
) {
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	component.Stop(stopCtx)

	for _, cleanup := range cleanupFns {
		cleanup()
	}
}
