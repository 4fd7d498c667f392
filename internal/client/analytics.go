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

// GetAnalytics reads the analytics snapshot.
func (c *Client) GetAnalytics(
	ctx context.Context,
) (*AnalyticsResponse, error) {
	var out AnalyticsResponse
	if err := c.do(ctx, http.MethodGet, "/api/analytics", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// RecordMessages adds count to the processed-message counter and returns
// the new total.
func (c *Client) RecordMessages(
	ctx context.Context,
	count uint64,
) (uint64, error) {
	var out struct {
		TotalMessages uint64 `json:"totalMessages"`
	}
	err := c.do(ctx, http.MethodPost, "/api/analytics/messages", map[string]uint64{
		"count": count,
	}, &out)
	if err != nil {
		return 0, err
	}

	return out.TotalMessages, nil
}
