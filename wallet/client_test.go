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

package wallet_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Privex/go-steemengine/chain"
	"github.com/Privex/go-steemengine/wallet"
)

func walletServer(t *testing.T, response string,
	received *json.RawMessage) *httptest.Server {

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
			assert.Equal(t, "broadcast_custom_json", req.Method)
			if received != nil {
				*received = req.Params
			}
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,%s}`,
				req.ID, response)
		}))
}

func TestBroadcastCustomJSON(t *testing.T) {
	assert := assert.New(t)
	var params json.RawMessage
	srv := walletServer(t, `"result":{"id":"deadbeef"}`, &params)
	defer srv.Close()

	c := wallet.NewClient()
	c.WalletdServer = srv.URL

	op, err := chain.NewCustomJSON("ssc-mainnet-hive",
		map[string]string{"contractName": "tokens"}, "someguy123")
	require.NoError(t, err)

	txid, err := c.BroadcastCustomJSON(context.Background(), op)
	require.NoError(t, err)
	assert.Equal("deadbeef", txid)
	// The operation goes over the wire exactly as built.
	assert.JSONEq(`{"required_auths":["someguy123"],`+
		`"required_posting_auths":[],"id":"ssc-mainnet-hive",`+
		`"json":"{\"contractName\":\"tokens\"}"}`, string(params))
}

func TestBroadcastCustomJSONRejected(t *testing.T) {
	srv := walletServer(t,
		`"error":{"code":-32003,"message":"missing active authority"}`,
		nil)
	defer srv.Close()

	c := wallet.NewClient()
	c.WalletdServer = srv.URL

	op, err := chain.NewCustomJSON("ssc-mainnet-hive",
		map[string]string{}, "someguy123")
	require.NoError(t, err)

	_, err = c.BroadcastCustomJSON(context.Background(), op)
	require.Error(t, err)
	var rejected *wallet.BroadcastError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, -32003, rejected.Code)
	assert.Equal(t, "missing active authority", rejected.Message)
}
