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

// Package network enumerates the two blockchain networks that carry an Engine
// token layer, Steem and Hive, and maps each of them to the API endpoints,
// custom-JSON namespace and default RPC nodes that the rest of the library
// needs. The mapping is exhaustive: adding a network is a compile-time
// change, never a runtime string comparison.
package network

import (
	"fmt"
	"strings"
)

// Network selects which chain and which Engine sidechain a client talks to.
// It is set once at client construction and never changes for the lifetime
// of the client.
type Network int

const (
	// Steem is the original Steem Engine network.
	Steem Network = iota
	// Hive is the Hive Engine network.
	Hive
)

// Parse returns the Network named by s ("steem" or "hive"), case
// insensitively.
func Parse(s string) (Network, error) {
	switch strings.ToLower(s) {
	case "steem":
		return Steem, nil
	case "hive":
		return Hive, nil
	}
	return 0, fmt.Errorf("unknown network %q", s)
}

func (n Network) String() string {
	switch n {
	case Steem:
		return "steem"
	case Hive:
		return "hive"
	}
	return fmt.Sprintf("Network(%d)", int(n))
}

// Account returns the custom-JSON namespace account for the network. The
// Engine sidechain only executes custom_json operations whose id exactly
// matches this account, so a mismatch means the operation is silently
// ignored.
func (n Network) Account() string {
	if n == Hive {
		return "ssc-mainnet-hive"
	}
	return "ssc-mainnet1"
}

// NativeCoin returns the symbol of the pegged native coin that market orders
// are priced in.
func (n Network) NativeCoin() string {
	if n == Hive {
		return "SWAP.HIVE"
	}
	return "STEEMP"
}

// ContractsURL returns the default Engine contracts JSON-RPC endpoint.
func (n Network) ContractsURL() string {
	if n == Hive {
		return "https://api.hive-engine.com/rpc/contracts"
	}
	return "https://api.steem-engine.com/rpc/contracts"
}

// BlockchainURL returns the default Engine blockchain JSON-RPC endpoint.
func (n Network) BlockchainURL() string {
	if n == Hive {
		return "https://api.hive-engine.com/rpc/blockchain"
	}
	return "https://api.steem-engine.com/rpc/blockchain"
}

// HistoryURL returns the default account history endpoint.
func (n Network) HistoryURL() string {
	if n == Hive {
		return "https://accounts.hive-engine.com/accountHistory"
	}
	return "https://api.steem-engine.com/accounts/history"
}

// Nodes returns the default base-chain RPC nodes for the network. The chain
// client tries them in order.
func (n Network) Nodes() []string {
	if n == Hive {
		return []string{
			"https://hived.privex.io",
			"https://anyx.io",
			"https://api.openhive.network",
			"https://api.hive.blog",
		}
	}
	return []string{
		"https://api.steemit.com",
		"https://api.steemitdev.com",
	}
}
