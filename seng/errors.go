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
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Failure taxonomy. RPC failures from the hosted APIs and the base chain
// propagate as the transport's own error types (jsonrpc2.Error for RPC-level
// error objects). Rejections by the Signer propagate as whatever the Signer
// returns, *wallet.BroadcastError for the wallet daemon. The errors below
// are the conditions this package raises itself. Nothing is swallowed and
// nothing is retried without explicit caller action.
var (
	// ErrTokenNotFound: a write referenced a token symbol that does not
	// exist on the Engine sidechain. Reads surface absence as nil or
	// zero results instead.
	ErrTokenNotFound = errors.New("seng: token does not exist")

	// ErrAccountNotFound: a write referenced a base chain account that
	// does not exist.
	ErrAccountNotFound = errors.New("seng: account does not exist")

	// ErrNoSigner: a write was attempted without a Signer injected.
	ErrNoSigner = errors.New("seng: no signer configured")

	// ErrNoResults: the API returned an empty response where results
	// were required.
	ErrNoResults = errors.New("seng: empty response from API")

	// ErrTxNotFound: the confirmation lookup exhausted its attempt
	// budget without locating the broadcast operation in account
	// history. This is a lookup timeout, not a broadcast failure; the
	// operation may still confirm later.
	ErrTxNotFound = errors.New(
		"seng: transaction not found within the lookup window")
)

// AmountError reports an amount that cannot be represented at a token's
// precision: zero, negative, or smaller than one minimal unit.
type AmountError struct {
	Symbol    string
	Precision int
	Amount    decimal.Decimal
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("seng: amount %s is below token %s's precision "+
		"of %d decimal places", e.Amount, e.Symbol, e.Precision)
}
