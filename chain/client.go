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

// Package chain talks to the underlying Steem or Hive blockchain through its
// condenser API. The library only needs three things from the base chain:
// account existence, recent account operations for broadcast confirmation,
// and the chain's identity so a client never broadcasts to the wrong network.
package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	jrpc "github.com/AdamSLevy/jsonrpc2/v14"

	"github.com/Privex/go-steemengine/log"
	"github.com/Privex/go-steemengine/network"
)

// ErrWrongNetwork is returned by VerifyNetwork when the configured nodes
// answer for a different blockchain than the client was constructed for.
// Broadcasting through such a node would address the wrong contract
// namespace, so every write verifies the network first.
var ErrWrongNetwork = fmt.Errorf("chain: RPC node is on the wrong network")

// Client makes condenser API requests against an ordered list of base chain
// RPC nodes. Client embeds a jsonrpc2.Client, and thus also the http.Client.
// Nodes are tried in order; a node that cannot be reached is skipped, a node
// that answers (even with an RPC error object) settles the request.
type Client struct {
	Network network.Network
	Nodes   []string
	jrpc.Client
}

// NewClient returns a pointer to a Client initialized with the default node
// list for the given network and a 15 second timeout for the http.Client.
func NewClient(net network.Network) *Client {
	c := &Client{Network: net, Nodes: net.Nodes()}
	c.Timeout = 15 * time.Second
	return c
}

// Request makes a condenser API request, failing over across c.Nodes. The
// last node's error is returned only after every node has failed.
func (c *Client) Request(ctx context.Context,
	method string, params, result interface{}) error {

	if len(c.Nodes) == 0 {
		return fmt.Errorf("chain: no RPC nodes configured")
	}
	var err error
	for _, node := range c.Nodes {
		if c.DebugRequest {
			fmt.Println("node:", node)
		}
		err = c.Client.Request(ctx, node, method, params, result)
		if err == nil {
			return nil
		}
		// An RPC error object is an answer, not a dead node.
		if _, ok := err.(jrpc.Error); ok {
			return err
		}
		if ctx.Err() != nil {
			return err
		}
		clog.Debugf("node %s failed: %v", node, err)
	}
	return err
}

var clog = log.New("chain")

// Account is the subset of a condenser API account object the library needs.
type Account struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Created Time   `json:"created"`
}

// GetAccounts looks up accounts by name. Unknown names are simply absent
// from the result.
func (c *Client) GetAccounts(ctx context.Context,
	names ...string) ([]Account, error) {

	var accounts []Account
	params := []interface{}{names}
	err := c.Request(ctx, "condenser_api.get_accounts", params, &accounts)
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// AccountExists returns whether name is a registered account on the base
// chain. Absence is a normal result, not an error.
func (c *Client) AccountExists(ctx context.Context, name string) (bool, error) {
	accounts, err := c.GetAccounts(ctx, name)
	if err != nil {
		return false, err
	}
	return len(accounts) > 0, nil
}

// AccountHistory returns up to limit of the most recent operations involving
// account. Pass start = -1 for the newest operation. Results are ordered
// oldest first, as the condenser API returns them.
func (c *Client) AccountHistory(ctx context.Context,
	account string, start int64, limit uint32) ([]HistoryItem, error) {

	var items []HistoryItem
	params := []interface{}{account, start, limit}
	err := c.Request(ctx, "condenser_api.get_account_history", params, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// BlockchainName reports which chain the configured nodes actually serve,
// "steem" or "hive", determined from the chain constant prefix in the node's
// get_config output.
func (c *Client) BlockchainName(ctx context.Context) (string, error) {
	var config map[string]json.RawMessage
	err := c.Request(ctx, "condenser_api.get_config",
		[]interface{}{}, &config)
	if err != nil {
		return "", err
	}
	for key := range config {
		if strings.HasPrefix(key, "HIVE_CHAIN_ID") {
			return "hive", nil
		}
		if strings.HasPrefix(key, "STEEM_CHAIN_ID") {
			return "steem", nil
		}
	}
	return "", fmt.Errorf("chain: unrecognized get_config output")
}

// VerifyNetwork checks that the current RPC nodes are on the blockchain the
// client was constructed for and returns ErrWrongNetwork otherwise.
func (c *Client) VerifyNetwork(ctx context.Context) error {
	name, err := c.BlockchainName(ctx)
	if err != nil {
		return err
	}
	if name != c.Network.String() {
		return fmt.Errorf("%w: node is a %q node but the network is set "+
			"to %q", ErrWrongNetwork, name, c.Network)
	}
	return nil
}
