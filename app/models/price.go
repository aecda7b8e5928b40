package models

import (
	"bytes"
	"encoding/json"
)

// Price keeps whatever JSON value the client sent (a number or a formatted
// string such as "R$ 99,90"), including an explicit null. An empty Price
// means the field was absent; it marshals as null unless the field is omitempty.
type Price []byte

// MarshalJSON implements json.Marshaler.
func (p Price) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return p, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Price) UnmarshalJSON(data []byte) error {
	*p = append(Price(nil), bytes.TrimSpace(data)...)
	return nil
}

// Present reports whether the price carries a usable value. Null, empty
// strings, zero and false all count as missing.
func (p Price) Present() bool {
	if len(p) == 0 {
		return false
	}
	var v interface{}
	if err := json.Unmarshal(p, &v); err != nil {
		return false
	}
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case float64:
		return val != 0
	case bool:
		return val
	default:
		return true
	}
}

// String returns the raw JSON text of the price.
func (p Price) String() string {
	return string(p)
}
