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

package seng

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Privex/go-steemengine/rpc"
)

// ListTokens returns all known tokens from the tokens contract. Use limit
// and offset to paginate; limit 0 asks for the API's default page size.
func (c *Client) ListTokens(ctx context.Context,
	limit, offset int) ([]Token, error) {

	var tokens []Token
	err := c.RPC.Find(ctx, rpc.FindParams{
		Contract: "tokens",
		Table:    "tokens",
		Query:    map[string]interface{}{},
		Limit:    limit,
		Offset:   offset,
	}, &tokens)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// GetToken returns the token definition for symbol, or nil when no such
// token exists. Absence is a valid steady state of the ledger, not an error.
func (c *Client) GetToken(ctx context.Context, symbol string) (*Token, error) {
	symbol = strings.ToUpper(symbol)
	slog.Debugf("getting token object for symbol %s", symbol)
	var token *Token
	err := c.RPC.FindOne(ctx, rpc.FindParams{
		Contract: "tokens",
		Table:    "tokens",
		Query:    map[string]interface{}{"symbol": symbol},
	}, &token)
	if err != nil {
		return nil, err
	}
	return token, nil
}

// NativeToken returns the token definition for the network's native market
// coin, STEEMP or SWAP.HIVE.
func (c *Client) NativeToken(ctx context.Context) (*Token, error) {
	return c.GetToken(ctx, c.Network.NativeCoin())
}

// GetBalances returns all token balances held by account. An account with
// no balance rows yields an empty slice.
func (c *Client) GetBalances(ctx context.Context,
	account string) ([]Balance, error) {

	slog.Debugf("finding all token balances for user %s", account)
	var balances []Balance
	err := c.RPC.Find(ctx, rpc.FindParams{
		Contract: "tokens",
		Table:    "balances",
		Query:    map[string]interface{}{"account": account},
	}, &balances)
	if err != nil {
		return nil, err
	}
	return balances, nil
}

// GetTokenBalance returns account's balance of symbol. A missing balance
// row means the account has never held the token, which on this ledger is
// the same thing as holding zero, so zero is returned rather than an error.
func (c *Client) GetTokenBalance(ctx context.Context,
	account, symbol string) (decimal.Decimal, error) {

	symbol = strings.ToUpper(symbol)
	balances, err := c.GetBalances(ctx, account)
	if err != nil {
		return decimal.Zero, err
	}
	for _, bal := range balances {
		if bal.Symbol == symbol {
			slog.Debugf("found balance matching %s, returning %s",
				symbol, bal.Balance)
			return bal.Balance, nil
		}
	}
	slog.Debugf("no balance matching %s, returning 0", symbol)
	return decimal.Zero, nil
}

// AccountExists reports whether account exists on the underlying base
// chain. Token balances live on the sidechain, but accounts live on the
// base chain, so this delegates to the chain client.
func (c *Client) AccountExists(ctx context.Context,
	account string) (bool, error) {

	slog.Debugf("checking if user %s exists", account)
	return c.Chain.AccountExists(ctx, account)
}

// ListTransactions returns account's token transaction history, newest
// first as the history node orders it. Pagination parameters are passed
// through to the history API, not reinterpreted.
func (c *Client) ListTransactions(ctx context.Context,
	params rpc.HistoryParams) ([]Transaction, error) {

	slog.Debugf("getting tx history for user %s, symbol %s, "+
		"limit %d, offset %d",
		params.Account, params.Symbol, params.Limit, params.Offset)
	var txs []Transaction
	if err := c.History.GetHistory(ctx, params, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// GetTransactionInfo returns the sidechain execution record for txid, or
// nil when the sidechain has not executed such a transaction.
func (c *Client) GetTransactionInfo(ctx context.Context,
	txid string) (*TxInfo, error) {

	var info *TxInfo
	if err := c.RPC.GetTransactionInfo(ctx, txid, &info); err != nil {
		return nil, err
	}
	return info, nil
}
