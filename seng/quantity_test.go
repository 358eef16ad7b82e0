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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

var formatQuantityTests = []struct {
	Name      string
	Amount    string
	Precision int
	Expected  string
}{
	{Name: "truncate excess", Amount: "1.23456", Precision: 3,
		Expected: "1.234"},
	{Name: "truncate never rounds up", Amount: "1.239", Precision: 2,
		Expected: "1.23"},
	{Name: "pad integer", Amount: "10", Precision: 3,
		Expected: "10.000"},
	{Name: "pad short fraction", Amount: "0.5", Precision: 4,
		Expected: "0.5000"},
	{Name: "exact fit", Amount: "1.234", Precision: 3,
		Expected: "1.234"},
	{Name: "zero precision", Amount: "7.999", Precision: 0,
		Expected: "7"},
	{Name: "high precision", Amount: "0.00000001", Precision: 8,
		Expected: "0.00000001"},
}

func TestFormatQuantity(t *testing.T) {
	for _, test := range formatQuantityTests {
		t.Run(test.Name, func(t *testing.T) {
			got := FormatQuantity(dec(t, test.Amount), test.Precision)
			assert.Equal(t, test.Expected, got)
		})
	}
}

var validAmountTests = []struct {
	Name   string
	Amount string
	Valid  bool
}{
	{Name: "above minimum", Amount: "0.002", Valid: true},
	{Name: "exactly minimum", Amount: "0.001", Valid: true},
	{Name: "below minimum", Amount: "0.0005"},
	{Name: "zero", Amount: "0"},
	{Name: "negative", Amount: "-1"},
}

func TestValidAmount(t *testing.T) {
	token := &Token{Symbol: "ENG", Precision: 3}
	for _, test := range validAmountTests {
		t.Run(test.Name, func(t *testing.T) {
			err := validAmount(token, dec(t, test.Amount))
			if test.Valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			amountErr, ok := err.(*AmountError)
			require.True(t, ok)
			assert.Equal(t, "ENG", amountErr.Symbol)
			assert.Equal(t, 3, amountErr.Precision)
		})
	}
}
