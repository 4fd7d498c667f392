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

// GetStatusData reads the public process summary.
func (c *Client) GetStatusData(
	ctx context.Context,
) (*StatusDataResponse, error) {
	var out StatusDataResponse
	if err := c.do(ctx, http.MethodGet, "/status-data", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetStatus reads the authenticated status summary.
func (c *Client) GetStatus(
	ctx context.Context,
) (*StatusResponse, error) {
	var out StatusResponse
	if err := c.do(ctx, http.MethodGet, "/api/status", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetSystem reads the host resource snapshot.
func (c *Client) GetSystem(
	ctx context.Context,
) (*SystemResponse, error) {
	var out SystemResponse
	if err := c.do(ctx, http.MethodGet, "/api/system", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
