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

package event

// Frame returns the wire envelope for e.
func (e Event) Frame() Frame {
	return Frame{
		Event: string(e.Kind),
		Data:  e.Data,
	}
}

// ForAll returns the forced-logout event every connection receives.
func ForAll() Event {
	return Event{Kind: KindForcedLogoutAll}
}

// ForUser returns a targeted forced-logout event for identity.
func ForUser(
	identity string,
) Event {
	return Event{
		Kind:   KindForcedLogoutUser,
		Data:   identity,
		Target: identity,
	}
}

// Delivers reports whether a connection bound to identity receives e.
func (e Event) Delivers(
	identity string,
) bool {
	return e.Target == "" || e.Target == identity
}
