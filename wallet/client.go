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

// Package wallet delegates transaction signing and broadcasting to an
// external wallet daemon over JSON-RPC. The library never touches private
// keys; the wallet daemon holds them and is unlocked out of band through its
// hosting environment.
package wallet

import (
	"context"
	"fmt"
	"time"

	jrpc "github.com/AdamSLevy/jsonrpc2/v14"

	"github.com/Privex/go-steemengine/chain"
)

// WalletdDefault is the default wallet daemon endpoint.
const WalletdDefault = "http://localhost:8091"

// Client makes RPC requests to the wallet daemon's API. Client embeds a
// jsonrpc2.Client, and thus also the http.Client. Use jsonrpc2.Client's
// BasicAuth settings to set up BasicAuth and http.Client's transport settings
// to configure TLS.
type Client struct {
	WalletdServer string
	jrpc.Client
}

// NewClient returns a pointer to a Client initialized with the default
// localhost wallet daemon endpoint and a 15 second timeout for the
// http.Client.
func NewClient() *Client {
	c := &Client{WalletdServer: WalletdDefault}
	c.Timeout = 15 * time.Second
	return c
}

// Request makes a request to the wallet daemon's API.
func (c *Client) Request(ctx context.Context,
	method string, params, result interface{}) error {

	if c.DebugRequest {
		fmt.Println("walletd:", c.WalletdServer)
	}
	return c.Client.Request(ctx, c.WalletdServer, method, params, result)
}

// BroadcastError is a rejection from the wallet daemon: a missing or locked
// key, a malformed operation, or insufficient resource credits. It is
// distinct from transport errors so callers can tell "the signer refused"
// apart from "the signer was unreachable".
type BroadcastError struct {
	Code    int
	Message string
}

func (e *BroadcastError) Error() string {
	return fmt.Sprintf("wallet: broadcast rejected (%d): %s",
		e.Code, e.Message)
}

// BroadcastCustomJSON signs op with the active keys of op.RequiredAuths and
// broadcasts it to the base chain, returning the chain transaction id. A
// rejection by the daemon returns a *BroadcastError.
func (c *Client) BroadcastCustomJSON(ctx context.Context,
	op chain.CustomJSON) (string, error) {

	var result struct {
		ID string `json:"id"`
	}
	err := c.Request(ctx, "broadcast_custom_json", op, &result)
	if err != nil {
		if rpcErr, ok := err.(jrpc.Error); ok {
			return "", &BroadcastError{
				Code:    int(rpcErr.Code),
				Message: rpcErr.Message,
			}
		}
		return "", err
	}
	return result.ID, nil
}
