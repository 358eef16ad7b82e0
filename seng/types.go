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
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Privex/go-steemengine/chain"
)

// All numeric amount fields arrive from the Engine APIs as strings and are
// decoded into decimal.Decimal, never float64, so no precision is lost in
// transit.

// TokenMetadata is the metadata field of a token. The contracts API stores
// it as a JSON string inside the token row.
type TokenMetadata struct {
	URL  string `json:"url"`
	Icon string `json:"icon"`
	Desc string `json:"desc"`
}

// Token is a token definition from the tokens contract. The authoritative
// definition lives server side; nothing here is validated locally.
type Token struct {
	Symbol            string          `json:"symbol"`
	Name              string          `json:"name"`
	Issuer            string          `json:"issuer"`
	Precision         int             `json:"precision"`
	Metadata          TokenMetadata   `json:"-"`
	MaxSupply         decimal.Decimal `json:"maxSupply"`
	Supply            decimal.Decimal `json:"supply"`
	CirculatingSupply decimal.Decimal `json:"circulatingSupply"`
}

func (t *Token) UnmarshalJSON(data []byte) error {
	type token Token
	aux := struct {
		*token
		Metadata string `json:"metadata"`
	}{token: (*token)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Metadata != "" {
		// Malformed metadata is tolerated; it is issuer supplied and
		// not load bearing.
		if err := json.Unmarshal([]byte(aux.Metadata),
			&t.Metadata); err != nil {
			slog.WithError(err).Debugf(
				"undecodable metadata for token %s", t.Symbol)
		}
	}
	return nil
}

// Balance is one row of the tokens contract balances table.
type Balance struct {
	Account string          `json:"account"`
	Symbol  string          `json:"symbol"`
	Balance decimal.Decimal `json:"balance"`
	Stake   decimal.Decimal `json:"stake"`
}

// Transaction is a confirmed token transaction from the account history API.
// FromType and ToType are "user" for normal transfers and "contract" for
// issues, stakes and other contract-side movements.
type Transaction struct {
	Block     int64           `json:"block"`
	TxID      string          `json:"txid"`
	Timestamp string          `json:"timestamp"`
	Symbol    string          `json:"symbol"`
	From      string          `json:"from"`
	FromType  string          `json:"from_type"`
	To        string          `json:"to"`
	ToType    string          `json:"to_type"`
	Memo      string          `json:"memo"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// Side is the direction of a market order or trade.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// Valid reports whether s is one of the two market sides.
func (s Side) Valid() bool { return s == Buy || s == Sell }

// Trade is one row of the market contract tradesHistory table.
type Trade struct {
	ID        int64           `json:"_id"`
	Side      Side            `json:"type"`
	Symbol    string          `json:"symbol"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Volume    decimal.Decimal `json:"volume"`
	Buyer     string          `json:"buyer"`
	Seller    string          `json:"seller"`
	Timestamp int64           `json:"timestamp"`
	BuyTxID   string          `json:"buyTxId"`
	SellTxID  string          `json:"sellTxId"`
}

// Time returns the trade timestamp as a time.Time.
func (t Trade) Time() time.Time { return time.Unix(t.Timestamp, 0).UTC() }

// Order is one row of the market contract buyBook or sellBook tables.
type Order struct {
	ID           int64           `json:"_id"`
	TxID         string          `json:"txId"`
	Account      string          `json:"account"`
	Symbol       string          `json:"symbol"`
	Quantity     decimal.Decimal `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	TokensLocked decimal.Decimal `json:"tokensLocked"`
	Timestamp    int64           `json:"timestamp"`
	Expiration   int64           `json:"expiration"`
}

// Time returns the order placement time as a time.Time.
func (o Order) Time() time.Time { return time.Unix(o.Timestamp, 0).UTC() }

// Ticker is one row of the market contract metrics table.
type Ticker struct {
	ID                 int64           `json:"_id"`
	Symbol             string          `json:"symbol"`
	Volume             decimal.Decimal `json:"volume"`
	LastPrice          decimal.Decimal `json:"lastPrice"`
	LowestAsk          decimal.Decimal `json:"lowestAsk"`
	HighestBid         decimal.Decimal `json:"highestBid"`
	LastDayPrice       decimal.Decimal `json:"lastDayPrice"`
	PriceChange        decimal.Decimal `json:"-"`
	PriceChangePercent string          `json:"priceChangePercent"`
}

func (t *Ticker) UnmarshalJSON(data []byte) error {
	type ticker Ticker
	aux := struct {
		*ticker
		// The metrics table names the price change column after the
		// network's native coin.
		PriceChangeSteem decimal.Decimal `json:"priceChangeSteem"`
		PriceChangeHive  decimal.Decimal `json:"priceChangeHive"`
	}{ticker: (*ticker)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.PriceChange = aux.PriceChangeSteem
	if !aux.PriceChangeHive.IsZero() {
		t.PriceChange = aux.PriceChangeHive
	}
	return nil
}

// LogEvent is one contract event emitted during sidechain execution of a
// transaction.
type LogEvent struct {
	Contract string          `json:"contract"`
	Event    string          `json:"event"`
	Data     json.RawMessage `json:"data"`
}

// TxLogs are the execution logs of a sidechain transaction.
type TxLogs struct {
	Errors []string   `json:"errors"`
	Events []LogEvent `json:"events"`
}

// TxInfo is an executed sidechain transaction from the blockchain API's
// getTransactionInfo. Payload and Logs arrive JSON-encoded inside strings
// and are decoded on unmarshal.
type TxInfo struct {
	BlockNumber    int64           `json:"blockNumber"`
	RefBlockNumber int64           `json:"-"`
	TransactionID  string          `json:"transactionId"`
	Sender         string          `json:"sender"`
	Contract       string          `json:"contract"`
	Action         string          `json:"action"`
	Payload        json.RawMessage `json:"-"`
	Logs           TxLogs          `json:"-"`
	Hash           string          `json:"hash"`
	DatabaseHash   string          `json:"databaseHash"`
}

func (t *TxInfo) UnmarshalJSON(data []byte) error {
	type txInfo TxInfo
	aux := struct {
		*txInfo
		RefSteemBlockNumber int64  `json:"refSteemBlockNumber"`
		RefHiveBlockNumber  int64  `json:"refHiveBlockNumber"`
		Payload             string `json:"payload"`
		Logs                string `json:"logs"`
	}{txInfo: (*txInfo)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.RefBlockNumber = aux.RefSteemBlockNumber
	if aux.RefHiveBlockNumber != 0 {
		t.RefBlockNumber = aux.RefHiveBlockNumber
	}
	if aux.Payload != "" {
		t.Payload = json.RawMessage(aux.Payload)
	}
	if aux.Logs != "" {
		if err := json.Unmarshal([]byte(aux.Logs), &t.Logs); err != nil {
			return err
		}
	}
	return nil
}

// ContractOp is a contract call payload as embedded in a custom_json
// operation. It is built fresh per write and discarded after broadcast; its
// persisted form is the chain transaction itself.
type ContractOp struct {
	ContractName    string      `json:"contractName"`
	ContractAction  string      `json:"contractAction"`
	ContractPayload interface{} `json:"contractPayload"`
}

// TransferPayload is the contractPayload of a tokens/transfer operation.
// Quantity carries exactly the token's precision.
type TransferPayload struct {
	Symbol   string `json:"symbol"`
	To       string `json:"to"`
	Quantity string `json:"quantity"`
	Memo     string `json:"memo"`
}

// IssuePayload is the contractPayload of a tokens/issue operation.
type IssuePayload struct {
	Symbol   string `json:"symbol"`
	To       string `json:"to"`
	Quantity string `json:"quantity"`
	Memo     string `json:"memo,omitempty"`
}

// OrderPayload is the contractPayload of a market buy or sell operation.
// Price is denominated in the network's native coin and carries its
// precision.
type OrderPayload struct {
	Symbol   string `json:"symbol"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
}

// TxRecord is the outcome of a broadcast write. TxID is always set once the
// Signer accepts the operation. Block and Timestamp are only set when the
// confirmation lookup located the operation on chain, in which case
// Confirmed is true.
type TxRecord struct {
	TxID      string
	Block     uint32
	Timestamp time.Time
	Payload   ContractOp
	Operation chain.CustomJSON
	Confirmed bool
}
