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

package seng_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Privex/go-steemengine/chain"
	"github.com/Privex/go-steemengine/seng"
)

func TestSendToken(t *testing.T) {
	assert := assert.New(t)
	c, done := newTestClient(t, map[string]rpcHandler{
		"findOne": static(engToken),
	}, map[string]rpcHandler{
		"condenser_api.get_accounts": static(accountRows),
		"condenser_api.get_config":   static(hiveConfig),
		"condenser_api.get_account_history": historyWith(t,
			"someguy123", transferOp("10.000", "hello memo")),
	})
	defer done()
	signer := &stubSigner{}
	c.Signer = signer

	rec, err := c.SendToken(context.Background(), "ENG",
		"someguy123", "privex", decimal.NewFromInt(10), "hello memo")
	require.NoError(t, err)

	require.Len(t, signer.ops, 1)
	op := signer.ops[0]
	assert.Equal([]string{"someguy123"}, op.RequiredAuths)
	assert.Equal([]string{}, op.RequiredPostingAuths)
	assert.Equal("ssc-mainnet-hive", op.ID)
	assert.Equal(`{"contractName":"tokens","contractAction":"transfer",`+
		`"contractPayload":{"symbol":"ENG","to":"privex",`+
		`"quantity":"10.000","memo":"hello memo"}}`, op.JSON)

	assert.Equal("txid0001", rec.TxID)
	assert.Equal(uint32(1234), rec.Block)
	assert.Equal(time.Date(2020, 4, 1, 12, 0, 0, 0, time.UTC),
		rec.Timestamp)
	assert.True(rec.Confirmed)
}

func TestSendTokenTruncatesQuantity(t *testing.T) {
	// 1.23456 at precision 3 broadcasts as exactly "1.234".
	c, done := newTestClient(t, map[string]rpcHandler{
		"findOne": static(engToken),
	}, map[string]rpcHandler{
		"condenser_api.get_accounts": static(accountRows),
		"condenser_api.get_config":   static(hiveConfig),
	})
	defer done()
	signer := &stubSigner{}
	c.Signer = signer
	c.Confirm.Attempts = 0

	_, err := c.SendToken(context.Background(), "eng",
		"someguy123", "privex", dec(t, "1.23456"), "")
	require.NoError(t, err)
	require.Len(t, signer.ops, 1)
	assert.Contains(t, signer.ops[0].JSON, `"quantity":"1.234"`)
}

func TestSendTokenDistinctTxIDs(t *testing.T) {
	c, done := newTestClient(t, map[string]rpcHandler{
		"findOne": static(engToken),
	}, map[string]rpcHandler{
		"condenser_api.get_accounts": static(accountRows),
		"condenser_api.get_config":   static(hiveConfig),
	})
	defer done()
	signer := &stubSigner{}
	c.Signer = signer
	c.Confirm.Attempts = 0

	amount := decimal.NewFromInt(10)
	first, err := c.SendToken(context.Background(), "ENG",
		"someguy123", "privex", amount, "hello memo")
	require.NoError(t, err)
	second, err := c.SendToken(context.Background(), "ENG",
		"someguy123", "privex", amount, "hello memo")
	require.NoError(t, err)

	// Identical payloads are still two distinct chain transactions.
	assert.NotEqual(t, first.TxID, second.TxID)
	assert.Len(t, signer.ops, 2)
}

func TestSendTokenLookupTimeout(t *testing.T) {
	assert := assert.New(t)
	c, done := newTestClient(t, map[string]rpcHandler{
		"findOne": static(engToken),
	}, map[string]rpcHandler{
		"condenser_api.get_accounts":        static(accountRows),
		"condenser_api.get_config":          static(hiveConfig),
		"condenser_api.get_account_history": static(`[]`),
	})
	defer done()
	c.Signer = &stubSigner{}
	c.Confirm = seng.FindTxConfig{
		Attempts: 2,
		Delay:    time.Millisecond,
		Window:   30,
	}

	rec, err := c.SendToken(context.Background(), "ENG",
		"someguy123", "privex", decimal.NewFromInt(10), "")
	// The lookup timed out but the broadcast itself succeeded, so the
	// record is still returned.
	assert.True(errors.Is(err, seng.ErrTxNotFound))
	require.NotNil(t, rec)
	assert.Equal("txid0001", rec.TxID)
	assert.False(rec.Confirmed)
}

func TestSendTokenUnknownToken(t *testing.T) {
	c, done := newTestClient(t, map[string]rpcHandler{
		"findOne": static(`null`),
	}, map[string]rpcHandler{})
	defer done()
	c.Signer = &stubSigner{}

	_, err := c.SendToken(context.Background(), "NOPE",
		"someguy123", "privex", decimal.NewFromInt(1), "")
	assert.True(t, errors.Is(err, seng.ErrTokenNotFound))
}

func TestSendTokenUnknownAccount(t *testing.T) {
	c, done := newTestClient(t, map[string]rpcHandler{
		"findOne": static(engToken),
	}, map[string]rpcHandler{
		"condenser_api.get_accounts": static(`[]`),
	})
	defer done()
	c.Signer = &stubSigner{}

	_, err := c.SendToken(context.Background(), "ENG",
		"nonexistent", "privex", decimal.NewFromInt(1), "")
	assert.True(t, errors.Is(err, seng.ErrAccountNotFound))
}

func TestSendTokenBadAmount(t *testing.T) {
	c, done := newTestClient(t, map[string]rpcHandler{
		"findOne": static(engToken),
	}, map[string]rpcHandler{})
	defer done()
	c.Signer = &stubSigner{}

	// 0.0001 is below ENG's precision of 3 decimal places.
	_, err := c.SendToken(context.Background(), "ENG",
		"someguy123", "privex", dec(t, "0.0001"), "")
	require.Error(t, err)
	var amountErr *seng.AmountError
	require.True(t, errors.As(err, &amountErr))
	assert.Equal(t, "ENG", amountErr.Symbol)
}

func TestSendTokenNoSigner(t *testing.T) {
	c, done := newTestClient(t, map[string]rpcHandler{
		"findOne": static(engToken),
	}, map[string]rpcHandler{
		"condenser_api.get_accounts": static(accountRows),
	})
	defer done()

	_, err := c.SendToken(context.Background(), "ENG",
		"someguy123", "privex", decimal.NewFromInt(1), "")
	assert.True(t, errors.Is(err, seng.ErrNoSigner))
}

func TestSendTokenWrongNetwork(t *testing.T) {
	c, done := newTestClient(t, map[string]rpcHandler{
		"findOne": static(engToken),
	}, map[string]rpcHandler{
		"condenser_api.get_accounts": static(accountRows),
		"condenser_api.get_config": static(
			`{"STEEM_CHAIN_ID":"00000000"}`),
	})
	defer done()
	signer := &stubSigner{}
	c.Signer = signer

	_, err := c.SendToken(context.Background(), "ENG",
		"someguy123", "privex", decimal.NewFromInt(1), "")
	assert.True(t, errors.Is(err, chain.ErrWrongNetwork))
	// Nothing may reach the signer when the node serves the wrong chain.
	assert.Empty(t, signer.ops)
}

func TestIssueToken(t *testing.T) {
	assert := assert.New(t)
	c, done := newTestClient(t, map[string]rpcHandler{
		"findOne": static(engToken),
	}, map[string]rpcHandler{
		"condenser_api.get_accounts": static(accountRows),
		"condenser_api.get_config":   static(hiveConfig),
	})
	defer done()
	signer := &stubSigner{}
	c.Signer = signer
	c.Confirm.Attempts = 0

	rec, err := c.IssueToken(context.Background(), "ENG",
		"privex", dec(t, "5"), "")
	require.NoError(t, err)
	assert.Equal("txid0001", rec.TxID)
	assert.False(rec.Confirmed)

	require.Len(t, signer.ops, 1)
	op := signer.ops[0]
	// Issuance is authorized by the token's issuer, not the recipient.
	assert.Equal([]string{"engissuer"}, op.RequiredAuths)
	assert.Equal(`{"contractName":"tokens","contractAction":"issue",`+
		`"contractPayload":{"symbol":"ENG","to":"privex",`+
		`"quantity":"5.000"}}`, op.JSON)
}

func TestPlaceOrder(t *testing.T) {
	assert := assert.New(t)
	// findOne answers by the queried symbol so the native coin lookup
	// gets its own precision.
	findOne := func(params json.RawMessage) json.RawMessage {
		var p struct {
			Query struct {
				Symbol string `json:"symbol"`
			} `json:"query"`
		}
		require.NoError(t, json.Unmarshal(params, &p))
		if p.Query.Symbol == "SWAP.HIVE" {
			return json.RawMessage(`{"symbol":"SWAP.HIVE",` +
				`"issuer":"hive-engine","precision":8,` +
				`"metadata":"{}"}`)
		}
		return json.RawMessage(engToken)
	}
	c, done := newTestClient(t, map[string]rpcHandler{
		"findOne": findOne,
	}, map[string]rpcHandler{
		"condenser_api.get_accounts": static(accountRows),
		"condenser_api.get_config":   static(hiveConfig),
	})
	defer done()
	signer := &stubSigner{}
	c.Signer = signer
	c.Confirm.Attempts = 0

	placed, err := c.PlaceOrder(context.Background(), "someguy123",
		seng.Buy, "eng", dec(t, "100"), dec(t, "0.5"))
	require.NoError(t, err)
	assert.Equal("ENG", placed.Symbol)
	assert.Equal(seng.Buy, placed.Side)
	assert.Equal("100.000", placed.Quantity)
	assert.Equal("0.50000000", placed.Price)
	assert.Equal("txid0001", placed.TxID)

	require.Len(t, signer.ops, 1)
	assert.Equal(`{"contractName":"market","contractAction":"buy",`+
		`"contractPayload":{"symbol":"ENG","quantity":"100.000",`+
		`"price":"0.50000000"}}`, signer.ops[0].JSON)
}

func TestPlaceOrderInvalidSide(t *testing.T) {
	c, done := newTestClient(t, map[string]rpcHandler{},
		map[string]rpcHandler{})
	defer done()
	c.Signer = &stubSigner{}

	_, err := c.PlaceOrder(context.Background(), "someguy123",
		seng.Side("short"), "ENG", dec(t, "1"), dec(t, "1"))
	assert.EqualError(t, err, `seng: order side must be "buy" or "sell"`)
}

func TestFindTxMatchesNewest(t *testing.T) {
	op := transferOp("10.000", "hello memo")
	custom, err := chain.NewCustomJSON(
		"ssc-mainnet-hive", op, "someguy123")
	require.NoError(t, err)
	body, err := json.Marshal(custom)
	require.NoError(t, err)

	// Two identical broadcasts; the condenser API orders history oldest
	// first and the lookup must resolve to the newest.
	history := `[[54,{"trx_id":"older","block":1233,` +
		`"timestamp":"2020-04-01T11:59:57",` +
		`"op":["custom_json",` + string(body) + `]}],` +
		`[55,{"trx_id":"newer","block":1234,` +
		`"timestamp":"2020-04-01T12:00:00",` +
		`"op":["custom_json",` + string(body) + `]}]]`

	c, done := newTestClient(t, map[string]rpcHandler{},
		map[string]rpcHandler{
			"condenser_api.get_account_history": static(history),
		})
	defer done()

	rec, err := c.FindTx(context.Background(), "someguy123", op)
	require.NoError(t, err)
	assert.Equal(t, "newer", rec.TxID)
	assert.Equal(t, uint32(1234), rec.Block)
	assert.True(t, rec.Confirmed)
}

func TestFindTxIgnoresOtherOps(t *testing.T) {
	op := transferOp("10.000", "")
	other, err := chain.NewCustomJSON(
		"ssc-mainnet-hive", transferOp("9.999", ""), "someguy123")
	require.NoError(t, err)
	otherBody, err := json.Marshal(other)
	require.NoError(t, err)

	// A vote, a foreign namespace and a different payload all miss.
	history := `[[53,{"trx_id":"a","block":1,` +
		`"timestamp":"2020-04-01T11:59:54","op":["vote",{}]}],` +
		`[54,{"trx_id":"b","block":2,` +
		`"timestamp":"2020-04-01T11:59:57",` +
		`"op":["custom_json",{"required_auths":[],` +
		`"required_posting_auths":[],"id":"sm_sell_cards",` +
		`"json":"{}"}]}],` +
		`[55,{"trx_id":"c","block":3,` +
		`"timestamp":"2020-04-01T12:00:00",` +
		`"op":["custom_json",` + string(otherBody) + `]}]]`

	c, done := newTestClient(t, map[string]rpcHandler{},
		map[string]rpcHandler{
			"condenser_api.get_account_history": static(history),
		})
	defer done()

	_, err = c.FindTx(context.Background(), "someguy123", op)
	assert.True(t, errors.Is(err, seng.ErrTxNotFound))
}

func TestFindTxContextCanceled(t *testing.T) {
	c, done := newTestClient(t, map[string]rpcHandler{},
		map[string]rpcHandler{
			"condenser_api.get_account_history": static(`[]`),
		})
	defer done()
	c.Confirm = seng.FindTxConfig{
		Attempts: 10,
		Delay:    time.Hour,
		Window:   30,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := c.FindTx(ctx, "someguy123", transferOp("1.000", ""))
	assert.True(t, errors.Is(err, context.Canceled))
}
