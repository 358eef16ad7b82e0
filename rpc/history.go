// MIT License
//
// Copyright 2019 Privex Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS
// IN THE SOFTWARE.

package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Privex/go-steemengine/network"
)

// HistoryClient queries an Engine account history node. The history API is a
// plain HTTP GET endpoint, not JSON-RPC, so HistoryClient embeds an
// http.Client directly.
type HistoryClient struct {
	HistoryServer string
	http.Client
}

// NewHistoryClient returns a pointer to a HistoryClient initialized with the
// default history endpoint for the given network and a 15 second timeout.
func NewHistoryClient(net network.Network) *HistoryClient {
	c := &HistoryClient{HistoryServer: net.HistoryURL()}
	c.Timeout = 15 * time.Second
	return c
}

// HistoryParams select and paginate an account's token transaction history.
// Symbol is optional. The history node orders results reverse
// chronologically; Limit and Offset are passed through untouched.
type HistoryParams struct {
	Account string
	Symbol  string
	Limit   int
	Offset  int
}

func (p HistoryParams) values() url.Values {
	v := url.Values{}
	v.Set("account", p.Account)
	v.Set("type", "user")
	if p.Symbol != "" {
		v.Set("symbol", strings.ToUpper(p.Symbol))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		v.Set("offset", strconv.Itoa(p.Offset))
	}
	return v
}

// GetHistory fetches the account history selected by params into result,
// which should be a pointer to a slice.
func (c *HistoryClient) GetHistory(ctx context.Context,
	params HistoryParams, result interface{}) error {

	u := c.HistoryServer + "?" + params.values().Encode()
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req = req.WithContext(ctx)
	res, err := c.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("history: http: %v", res.Status)
	}
	return json.NewDecoder(res.Body).Decode(result)
}
