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
	"github.com/shopspring/decimal"
)

// FormatQuantity serializes amount with exactly precision fractional digits,
// truncating excess digits (never rounding up) and zero padding short ones.
// The sidechain rejects or misinterprets quantities whose digit count does
// not match the token's declared precision, so every payload quantity goes
// through here.
func FormatQuantity(amount decimal.Decimal, precision int) string {
	return amount.Truncate(int32(precision)).StringFixed(int32(precision))
}

// minUnit returns the smallest representable amount at the given precision,
// 10^-precision.
func minUnit(precision int) decimal.Decimal {
	return decimal.New(1, -int32(precision))
}

// validAmount checks that amount is representable at t's precision: at least
// one minimal unit, which also rules out zero and negative amounts.
func validAmount(t *Token, amount decimal.Decimal) error {
	if amount.LessThan(minUnit(t.Precision)) {
		return &AmountError{
			Symbol:    t.Symbol,
			Precision: t.Precision,
			Amount:    amount,
		}
	}
	return nil
}
