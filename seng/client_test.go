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
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Privex/go-steemengine/chain"
	"github.com/Privex/go-steemengine/network"
	"github.com/Privex/go-steemengine/seng"
)

func dec(t *testing.T, s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// rpcHandler computes the JSON-RPC result for one request's params.
type rpcHandler func(params json.RawMessage) json.RawMessage

func static(result string) rpcHandler {
	return func(json.RawMessage) json.RawMessage {
		return json.RawMessage(result)
	}
}

// rpcServer serves JSON-RPC methods from the given handler table.
func rpcServer(t *testing.T,
	handlers map[string]rpcHandler) *httptest.Server {

	return httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			body, err := ioutil.ReadAll(r.Body)
			require.NoError(t, err)
			var req struct {
				ID     json.RawMessage `json:"id"`
				Method string          `json:"method"`
				Params json.RawMessage `json:"params"`
			}
			require.NoError(t, json.Unmarshal(body, &req))
			handler, ok := handlers[req.Method]
			require.Truef(t, ok, "unexpected method %q", req.Method)
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":%s}`,
				req.ID, handler(req.Params))
		}))
}

// newTestClient wires a Hive client to fake contracts and condenser servers.
func newTestClient(t *testing.T,
	contracts, condenser map[string]rpcHandler) (*seng.Client, func()) {

	csrv := rpcServer(t, contracts)
	nsrv := rpcServer(t, condenser)
	c := seng.NewClient(network.Hive)
	c.RPC.ContractsServer = csrv.URL
	c.RPC.BlockchainServer = csrv.URL
	c.Chain.Nodes = []string{nsrv.URL}
	c.Confirm = seng.FindTxConfig{Attempts: 1, Window: 30}
	return c, func() {
		csrv.Close()
		nsrv.Close()
	}
}

// stubSigner records broadcast operations and hands out sequential txids.
type stubSigner struct {
	ops []chain.CustomJSON
	err error
}

func (s *stubSigner) BroadcastCustomJSON(_ context.Context,
	op chain.CustomJSON) (string, error) {

	if s.err != nil {
		return "", s.err
	}
	s.ops = append(s.ops, op)
	return fmt.Sprintf("txid%04d", len(s.ops)), nil
}

const engToken = `{"symbol":"ENG","name":"Engine token",` +
	`"issuer":"engissuer","precision":3,"metadata":"{}",` +
	`"maxSupply":"100000","supply":"1000","circulatingSupply":"1000"}`

const hiveConfig = `{"HIVE_CHAIN_ID":"beeab0de"}`

const accountRows = `[{"id":1,"name":"someguy123",` +
	`"created":"2016-01-01T00:00:00"}]`

// historyWith returns a one item get_account_history result whose operation
// carries op as an Engine contract call authorized by account.
func historyWith(t *testing.T, account string,
	op seng.ContractOp) rpcHandler {

	custom, err := chain.NewCustomJSON(
		network.Hive.Account(), op, account)
	require.NoError(t, err)
	body, err := json.Marshal(custom)
	require.NoError(t, err)
	return static(fmt.Sprintf(`[[55,{"trx_id":"onchain","block":1234,`+
		`"timestamp":"2020-04-01T12:00:00",`+
		`"op":["custom_json",%s]}]]`, body))
}

func transferOp(quantity, memo string) seng.ContractOp {
	return seng.ContractOp{
		ContractName:   "tokens",
		ContractAction: "transfer",
		ContractPayload: seng.TransferPayload{
			Symbol:   "ENG",
			To:       "privex",
			Quantity: quantity,
			Memo:     memo,
		},
	}
}
