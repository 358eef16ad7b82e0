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

// Package seng is a client for the Steem Engine and Hive Engine token layer.
// It queries tokens, balances, history and market data from the hosted Engine
// APIs, and builds, broadcasts and confirms token contract operations
// (transfer, issue, market orders) through an injected Signer.
//
// Basic usage:
//
//	c := seng.NewClient(network.Hive)
//	c.Signer = wallet.NewClient()
//	// Send 10 BEE from someguy123 to privex with the memo "hello memo".
//	tx, err := c.SendToken(ctx, "BEE", "someguy123", "privex",
//		decimal.NewFromInt(10), "hello memo")
//
// Every call is a synchronous round trip. Reads are idempotent; writes are
// not, and broadcasting the same transfer twice moves tokens twice. Callers
// needing idempotent submission must deduplicate themselves, for example
// with memo nonces.
package seng

import (
	"context"
	"time"

	"github.com/Privex/go-steemengine/chain"
	"github.com/Privex/go-steemengine/log"
	"github.com/Privex/go-steemengine/network"
	"github.com/Privex/go-steemengine/rpc"
)

var slog = log.New("seng")

// Signer signs and broadcasts a custom_json operation to the base chain and
// returns the chain transaction id. The library never handles keys itself;
// any wallet integration satisfying this interface can be injected, e.g.
// wallet.Client.
type Signer interface {
	BroadcastCustomJSON(ctx context.Context,
		op chain.CustomJSON) (txid string, err error)
}

// FindTxConfig bounds the confirmation lookup that follows a broadcast. The
// confirmation window is a product of polling cadence, not any protocol
// guarantee, so all three knobs are caller tunable.
type FindTxConfig struct {
	// Attempts is the number of times the account history is polled
	// before giving up. Zero disables the lookup entirely.
	Attempts int
	// Delay is the pause between polls.
	Delay time.Duration
	// Window is how many recent account operations each poll scans.
	Window uint32
}

// DefaultFindTxConfig covers roughly five base chain blocks, which is enough
// for an accepted operation to appear in account history under normal
// conditions.
var DefaultFindTxConfig = FindTxConfig{
	Attempts: 10,
	Delay:    1500 * time.Millisecond,
	Window:   30,
}

// Client is a Steem/Hive Engine client. The zero value is not usable; use
// NewClient. All fields may be replaced before first use, e.g. to point RPC
// at private endpoints. Network is immutable for the client's lifetime.
type Client struct {
	// Network selects the chain, the API endpoints and the custom-JSON
	// namespace used for contract calls.
	Network network.Network

	// RPC queries the Engine contracts and blockchain APIs.
	RPC *rpc.Client
	// History queries the Engine account history API.
	History *rpc.HistoryClient
	// Chain queries the underlying base chain.
	Chain *chain.Client
	// Signer broadcasts contract operations. It is nil by default;
	// writes fail until one is injected.
	Signer Signer

	// Confirm bounds the post-broadcast confirmation lookup performed
	// by FindTx.
	Confirm FindTxConfig
}

// NewClient returns a Client wired to the default hosted endpoints for the
// given network, with no Signer.
func NewClient(net network.Network) *Client {
	return &Client{
		Network: net,
		RPC:     rpc.NewClient(net),
		History: rpc.NewHistoryClient(net),
		Chain:   chain.NewClient(net),
		Confirm: DefaultFindTxConfig,
	}
}
