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
	"fmt"
	"sort"
	"strings"

	"github.com/Privex/go-steemengine/rpc"
)

// OrderbookParams select open orders from the market contract order books.
type OrderbookParams struct {
	Symbol string
	Side   Side
	// Account restricts results to one account's orders when set.
	Account string
	Limit   int
	Offset  int
}

// GetOrderbook returns open orders for a symbol on one side of the market.
// Buy orders are sorted by price descending (best bid first) and sell
// orders ascending (best ask first).
func (c *Client) GetOrderbook(ctx context.Context,
	params OrderbookParams) ([]Order, error) {

	if !params.Side.Valid() {
		return nil, fmt.Errorf("seng: orderbook side must be %q or %q",
			Buy, Sell)
	}
	query := map[string]interface{}{
		"symbol": strings.ToUpper(params.Symbol),
	}
	if params.Account != "" {
		query["account"] = params.Account
	}
	var orders []Order
	err := c.RPC.Find(ctx, rpc.FindParams{
		Contract: "market",
		Table:    string(params.Side) + "Book",
		Query:    query,
		Limit:    params.Limit,
		Offset:   params.Offset,
	}, &orders)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		if params.Side == Buy {
			return orders[i].Price.GreaterThan(orders[j].Price)
		}
		return orders[i].Price.LessThan(orders[j].Price)
	})
	return orders, nil
}

// queryTrades runs a query against the market tradesHistory table.
func (c *Client) queryTrades(ctx context.Context,
	query map[string]interface{}, limit, offset int) ([]Trade, error) {

	var trades []Trade
	err := c.RPC.Find(ctx, rpc.FindParams{
		Contract: "market",
		Table:    "tradesHistory",
		Query:    query,
		Limit:    limit,
		Offset:   offset,
		Indexes:  []rpc.Index{{Index: "_id", Descending: false}},
	}, &trades)
	if err != nil {
		return nil, err
	}
	return trades, nil
}

// OrderHistory returns recent fulfilled trades for a symbol.
func (c *Client) OrderHistory(ctx context.Context,
	symbol string, limit, offset int) ([]Trade, error) {

	query := map[string]interface{}{"symbol": strings.ToUpper(symbol)}
	return c.queryTrades(ctx, query, limit, offset)
}

// FindFulfilledSells returns the trades that fulfilled the sell order
// placed in transaction txid.
func (c *Client) FindFulfilledSells(ctx context.Context,
	txid string) ([]Trade, error) {
	return c.queryTrades(ctx,
		map[string]interface{}{"sellTxId": txid}, 0, 0)
}

// FindFulfilledBuys returns the trades that fulfilled the buy order placed
// in transaction txid.
func (c *Client) FindFulfilledBuys(ctx context.Context,
	txid string) ([]Trade, error) {
	return c.queryTrades(ctx,
		map[string]interface{}{"buyTxId": txid}, 0, 0)
}

// FindFulfilled returns all trades fulfilling the order placed in
// transaction txid, whichever side it was on.
func (c *Client) FindFulfilled(ctx context.Context,
	txid string) ([]Trade, error) {

	buys, err := c.FindFulfilledBuys(ctx, txid)
	if err != nil {
		return nil, err
	}
	sells, err := c.FindFulfilledSells(ctx, txid)
	if err != nil {
		return nil, err
	}
	return append(buys, sells...), nil
}

// GetTickers returns market tickers from the metrics table. Use limit and
// offset to paginate.
func (c *Client) GetTickers(ctx context.Context,
	limit, offset int) ([]Ticker, error) {

	var tickers []Ticker
	err := c.RPC.Find(ctx, rpc.FindParams{
		Contract: "market",
		Table:    "metrics",
		Query:    map[string]interface{}{},
		Limit:    limit,
		Offset:   offset,
	}, &tickers)
	if err != nil {
		return nil, err
	}
	return tickers, nil
}

// GetTicker returns the market ticker for a single symbol, or ErrNoResults
// when the symbol has no metrics row.
func (c *Client) GetTicker(ctx context.Context,
	symbol string) (*Ticker, error) {

	symbol = strings.ToUpper(symbol)
	var tickers []Ticker
	err := c.RPC.Find(ctx, rpc.FindParams{
		Contract: "market",
		Table:    "metrics",
		Query:    map[string]interface{}{"symbol": symbol},
	}, &tickers)
	if err != nil {
		return nil, err
	}
	if len(tickers) == 0 {
		return nil, fmt.Errorf("%w: no ticker for symbol %s",
			ErrNoResults, symbol)
	}
	return &tickers[0], nil
}
