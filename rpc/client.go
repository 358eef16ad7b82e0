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

// Package rpc speaks to the hosted Engine sidechain APIs: the contracts and
// blockchain JSON-RPC endpoints, and the plain HTTP account history endpoint.
// It translates calls into the request shapes those APIs expect and nothing
// more; RPC errors propagate to the caller untouched and are never retried
// here.
package rpc

import (
	"context"
	"fmt"
	"time"

	jrpc "github.com/AdamSLevy/jsonrpc2/v14"

	"github.com/Privex/go-steemengine/network"
)

// Client makes RPC requests to the Engine sidechain APIs. Client embeds a
// jsonrpc2.Client, and thus also the http.Client. Use jsonrpc2.Client's
// BasicAuth settings to set up BasicAuth and http.Client's transport settings
// to configure TLS.
type Client struct {
	ContractsServer  string
	BlockchainServer string
	jrpc.Client
}

// NewClient returns a pointer to a Client initialized with the default
// contracts and blockchain endpoints for the given network, and a 15 second
// timeout for the http.Client.
func NewClient(net network.Network) *Client {
	c := &Client{
		ContractsServer:  net.ContractsURL(),
		BlockchainServer: net.BlockchainURL(),
	}
	c.Timeout = 15 * time.Second
	return c
}

// Contracts makes a request to the Engine contracts API.
func (c *Client) Contracts(ctx context.Context,
	method string, params, result interface{}) error {

	if c.DebugRequest {
		fmt.Println("contracts:", c.ContractsServer)
	}
	return c.Client.Request(ctx, c.ContractsServer, method, params, result)
}

// Blockchain makes a request to the Engine blockchain API.
func (c *Client) Blockchain(ctx context.Context,
	method string, params, result interface{}) error {

	if c.DebugRequest {
		fmt.Println("blockchain:", c.BlockchainServer)
	}
	return c.Client.Request(ctx, c.BlockchainServer, method, params, result)
}

// Index orders a find query by a single table index.
type Index struct {
	Index      string `json:"index"`
	Descending bool   `json:"descending"`
}

// FindParams are the params for the contracts API "find" and "findOne"
// methods. Query must marshal to a JSON object; use an empty map to select
// everything.
type FindParams struct {
	Contract string      `json:"contract"`
	Table    string      `json:"table"`
	Query    interface{} `json:"query"`
	Limit    int         `json:"limit,omitempty"`
	Offset   int         `json:"offset,omitempty"`
	Indexes  []Index     `json:"indexes,omitempty"`
}

// Find queries rows from a contract table into result, which should be a
// pointer to a slice. A missing table or empty match unmarshals as an empty
// slice, never an error.
func (c *Client) Find(ctx context.Context,
	params FindParams, result interface{}) error {
	return c.Contracts(ctx, "find", params, result)
}

// FindOne queries a single row from a contract table into result. When no
// row matches, the contracts API returns a JSON null and result is left
// untouched.
func (c *Client) FindOne(ctx context.Context,
	params FindParams, result interface{}) error {
	return c.Contracts(ctx, "findOne", params, result)
}

// GetTransactionInfo fetches an executed sidechain transaction by its txid
// into result. A transaction that the sidechain has not (yet) executed
// returns a JSON null and leaves result untouched.
func (c *Client) GetTransactionInfo(ctx context.Context,
	txid string, result interface{}) error {
	params := struct {
		TxID string `json:"txid"`
	}{TxID: txid}
	return c.Blockchain(ctx, "getTransactionInfo", params, result)
}

// GetLatestBlockInfo fetches the most recent sidechain block into result.
func (c *Client) GetLatestBlockInfo(ctx context.Context,
	result interface{}) error {
	return c.Blockchain(ctx, "getLatestBlockInfo", nil, result)
}
