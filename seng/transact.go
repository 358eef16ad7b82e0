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
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Privex/go-steemengine/chain"
)

// A write moves through BUILT -> SUBMITTED -> {CONFIRMED | LOOKUP_TIMEOUT |
// REJECTED}. A rejection by the Signer returns a nil record and the
// Signer's error. A successful broadcast whose confirmation lookup times
// out returns a record with Confirmed false together with ErrTxNotFound;
// the operation may still have succeeded on chain. A located operation
// returns a confirmed record and nil error.

// SendToken sends amount of symbol from one account to another with a memo.
// The Signer must hold active authority for the from account.
//
// The token must exist, both accounts must exist, and amount must be at
// least one minimal unit of the token's precision; all three are checked
// before broadcast. The sender's balance is deliberately NOT checked
// locally: sidechain balances can change between a local check and
// execution, so insufficiency is left to the contract layer and surfaces
// in the sidechain transaction logs after the fact.
func (c *Client) SendToken(ctx context.Context, symbol, from, to string,
	amount decimal.Decimal, memo string) (*TxRecord, error) {

	symbol = strings.ToUpper(symbol)
	t, err := c.GetToken(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if t == nil {
		slog.Warningf("symbol %s was requested, but token does not exist",
			symbol)
		return nil, fmt.Errorf("%w: %s", ErrTokenNotFound, symbol)
	}
	if err := validAmount(t, amount); err != nil {
		return nil, err
	}
	for _, account := range []string{from, to} {
		exists, err := c.AccountExists(ctx, account)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: %s",
				ErrAccountNotFound, account)
		}
	}

	slog.Debugf("sending %s %s from %s to %s with memo %q",
		amount, symbol, from, to, memo)
	op := ContractOp{
		ContractName:   "tokens",
		ContractAction: "transfer",
		ContractPayload: TransferPayload{
			Symbol:   symbol,
			To:       to,
			Quantity: FormatQuantity(amount, t.Precision),
			Memo:     memo,
		},
	}
	return c.broadcast(ctx, op, from)
}

// IssueToken issues amount of symbol to account to. The token's issuer is
// looked up from the token definition and used as the signing authority;
// the Signer must hold the issuer's active key, and refuses the broadcast
// if it does not.
func (c *Client) IssueToken(ctx context.Context, symbol, to string,
	amount decimal.Decimal, memo string) (*TxRecord, error) {

	symbol = strings.ToUpper(symbol)
	t, err := c.GetToken(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: %s", ErrTokenNotFound, symbol)
	}
	if err := validAmount(t, amount); err != nil {
		return nil, err
	}
	exists, err := c.AccountExists(ctx, to)
	if err != nil {
		return nil, err
	}
	if !exists {
		slog.Warningf("attempted to issue %s %s to %s but account "+
			"does not exist", amount, symbol, to)
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, to)
	}

	slog.Debugf("issuing %s %s to %s", amount, symbol, to)
	op := ContractOp{
		ContractName:   "tokens",
		ContractAction: "issue",
		ContractPayload: IssuePayload{
			Symbol:   symbol,
			To:       to,
			Quantity: FormatQuantity(amount, t.Precision),
			Memo:     memo,
		},
	}
	return c.broadcast(ctx, op, t.Issuer)
}

// PlacedOrder is the outcome of PlaceOrder.
type PlacedOrder struct {
	Symbol   string
	Side     Side
	Quantity string
	Price    string
	Account  string
	TxRecord
}

// PlaceOrder places a market buy or sell order for quantity of symbol at
// price native coin per token. Quantity carries the token's precision and
// price the native coin's. The account's balance is not checked locally,
// for the same reason SendToken does not check it.
func (c *Client) PlaceOrder(ctx context.Context, account string, side Side,
	symbol string, quantity, price decimal.Decimal) (*PlacedOrder, error) {

	if !side.Valid() {
		return nil, fmt.Errorf("seng: order side must be %q or %q",
			Buy, Sell)
	}
	symbol = strings.ToUpper(symbol)
	t, err := c.GetToken(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: %s", ErrTokenNotFound, symbol)
	}
	if err := validAmount(t, quantity); err != nil {
		return nil, err
	}
	native, err := c.NativeToken(ctx)
	if err != nil {
		return nil, err
	}
	if native == nil {
		return nil, fmt.Errorf("%w: %s",
			ErrTokenNotFound, c.Network.NativeCoin())
	}
	if err := validAmount(native, price); err != nil {
		return nil, err
	}

	payload := OrderPayload{
		Symbol:   symbol,
		Quantity: FormatQuantity(quantity, t.Precision),
		Price:    FormatQuantity(price, native.Precision),
	}
	op := ContractOp{
		ContractName:    "market",
		ContractAction:  string(side),
		ContractPayload: payload,
	}
	rec, err := c.broadcast(ctx, op, account)
	placed := &PlacedOrder{
		Symbol:   symbol,
		Side:     side,
		Quantity: payload.Quantity,
		Price:    payload.Price,
		Account:  account,
	}
	if rec != nil {
		placed.TxRecord = *rec
	}
	if err != nil {
		return placed, err
	}
	return placed, nil
}

// broadcast wraps op in a custom_json operation addressed to the network's
// contract namespace, verifies the chain client is on the right network,
// submits through the Signer, and then runs the confirmation lookup against
// the authorizing account's history.
func (c *Client) broadcast(ctx context.Context,
	op ContractOp, requiredAuth string) (*TxRecord, error) {

	if c.Signer == nil {
		return nil, ErrNoSigner
	}
	custom, err := chain.NewCustomJSON(c.Network.Account(), op, requiredAuth)
	if err != nil {
		return nil, err
	}
	// A namespace/network mismatch makes the sidechain silently ignore
	// the operation, so refuse to broadcast through nodes on the wrong
	// chain.
	if err := c.Chain.VerifyNetwork(ctx); err != nil {
		return nil, err
	}
	slog.Debugf("broadcasting custom_json %s for %s: %s",
		custom.ID, requiredAuth, custom.JSON)
	txid, err := c.Signer.BroadcastCustomJSON(ctx, custom)
	if err != nil {
		return nil, err
	}
	rec := &TxRecord{TxID: txid, Payload: op, Operation: custom}
	if c.Confirm.Attempts == 0 {
		return rec, nil
	}
	found, err := c.FindTx(ctx, requiredAuth, op)
	if err != nil {
		// Lookup timeout: the broadcast already succeeded, so hand
		// back the unconfirmed record along with the condition.
		return rec, err
	}
	found.TxID = txid
	found.Operation = custom
	return found, nil
}

// FindTx locates the confirmed on-chain operation for a just-broadcast
// contract payload by polling account's recent operation history. A match
// is a custom_json operation whose id is the network's contract namespace
// and whose embedded payload deep-equals op. The newest operations are
// scanned first, so back-to-back identical payloads resolve to the most
// recent broadcast.
//
// The lookup is bounded by c.Confirm; when the budget is exhausted it
// returns ErrTxNotFound, which means only that the lookup timed out, not
// that the broadcast failed.
func (c *Client) FindTx(ctx context.Context,
	account string, op ContractOp) (*TxRecord, error) {

	want, err := canonical(op)
	if err != nil {
		return nil, err
	}
	for attempt := 0; attempt < c.Confirm.Attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(c.Confirm.Delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		items, err := c.Chain.AccountHistory(ctx, account, -1,
			c.Confirm.Window)
		if err != nil {
			return nil, err
		}
		for i := len(items) - 1; i >= 0; i-- {
			item := items[i]
			if item.Op.Name != "custom_json" {
				continue
			}
			cj, err := item.Op.CustomJSON()
			if err != nil || cj.ID != c.Network.Account() {
				continue
			}
			var got interface{}
			if err := json.Unmarshal([]byte(cj.JSON),
				&got); err != nil {
				continue
			}
			if !reflect.DeepEqual(got, want) {
				continue
			}
			slog.Debugf("matched tx %s in block %d",
				item.TrxID, item.Block)
			return &TxRecord{
				TxID:      item.TrxID,
				Block:     item.Block,
				Timestamp: item.Timestamp.Time,
				Payload:   op,
				Confirmed: true,
			}, nil
		}
	}
	return nil, ErrTxNotFound
}

// canonical reduces v to the generic JSON form used for deep equality,
// erasing struct field ordering and number formatting differences.
func canonical(v interface{}) (interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
