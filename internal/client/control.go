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

package client

import (
	"context"
	"net/http"
)

// GetAnnouncement reads the current announcement.
func (c *Client) GetAnnouncement(
	ctx context.Context,
) (*Announcement, error) {
	var out Announcement
	if err := c.do(ctx, http.MethodGet, "/api/announcement", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// SetAnnouncement replaces the announcement.
func (c *Client) SetAnnouncement(
	ctx context.Context,
	a Announcement,
) error {
	return c.do(ctx, http.MethodPost, "/api/announcement", a, nil)
}

// Broadcast sends message to every live connection.
func (c *Client) Broadcast(
	ctx context.Context,
	message string,
) error {
	return c.do(ctx, http.MethodPost, "/api/broadcast", map[string]string{
		"message": message,
	}, nil)
}

// ForceLogout revokes sessions for target ("all" or an identity) and
// returns how many were revoked.
func (c *Client) ForceLogout(
	ctx context.Context,
	target string,
) (int, error) {
	var out struct {
		Revoked int `json:"revoked"`
	}
	err := c.do(ctx, http.MethodPost, "/api/force-logout", map[string]string{
		"target": target,
	}, &out)
	if err != nil {
		return 0, err
	}

	return out.Revoked, nil
}

// Restart asks the console process to exit for its supervisor to restart.
func (c *Client) Restart(
	ctx context.Context,
) error {
	return c.do(ctx, http.MethodPost, "/api/restart", nil, nil)
}
