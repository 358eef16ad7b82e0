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

package chain

import (
	"encoding/json"
	"fmt"
	"time"
)

// timeLayout is the zoneless UTC layout the condenser API uses for all
// timestamps.
const timeLayout = "2006-01-02T15:04:05"

// Time embeds time.Time to handle the condenser API's timestamp format.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.ParseInLocation(timeLayout, s, time.UTC)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(timeLayout))
}

// Operation is a single base chain operation as a [name, body] pair.
type Operation struct {
	Name string
	Body json.RawMessage
}

func (op *Operation) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &op.Name); err != nil {
		return err
	}
	op.Body = pair[1]
	return nil
}

func (op Operation) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{op.Name, op.Body})
}

// CustomJSON decodes the operation body as a custom_json operation. It
// returns an error if the operation is of any other type.
func (op Operation) CustomJSON() (CustomJSON, error) {
	var cj CustomJSON
	if op.Name != "custom_json" {
		return cj, fmt.Errorf("chain: operation is %q, not custom_json",
			op.Name)
	}
	if err := json.Unmarshal(op.Body, &cj); err != nil {
		return cj, err
	}
	return cj, nil
}

// HistoryItem is one entry of a condenser get_account_history result, an
// [index, operation-wrapper] pair.
type HistoryItem struct {
	Index     int64
	TrxID     string
	Block     uint32
	Timestamp Time
	Op        Operation
}

type historyEntry struct {
	TrxID     string    `json:"trx_id"`
	Block     uint32    `json:"block"`
	Timestamp Time      `json:"timestamp"`
	Op        Operation `json:"op"`
}

func (h *HistoryItem) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &h.Index); err != nil {
		return err
	}
	var entry historyEntry
	if err := json.Unmarshal(pair[1], &entry); err != nil {
		return err
	}
	h.TrxID = entry.TrxID
	h.Block = entry.Block
	h.Timestamp = entry.Timestamp
	h.Op = entry.Op
	return nil
}

// CustomJSON is the generic base chain operation that carries an Engine
// contract call: an application namespace id plus an arbitrary JSON string
// payload. The field order matters to some serializers, so it is fixed here
// to match the canonical operation layout.
type CustomJSON struct {
	RequiredAuths        []string `json:"required_auths"`
	RequiredPostingAuths []string `json:"required_posting_auths"`
	ID                   string   `json:"id"`
	JSON                 string   `json:"json"`
}

// NewCustomJSON builds a custom_json operation for the given namespace id,
// marshaling payload into the operation's JSON string field. The accounts in
// requiredAuths must authorize the operation with their active keys.
func NewCustomJSON(id string, payload interface{},
	requiredAuths ...string) (CustomJSON, error) {

	data, err := json.Marshal(payload)
	if err != nil {
		return CustomJSON{}, err
	}
	if requiredAuths == nil {
		requiredAuths = []string{}
	}
	return CustomJSON{
		RequiredAuths:        requiredAuths,
		RequiredPostingAuths: []string{},
		ID:                   id,
		JSON:                 string(data),
	}, nil
}
