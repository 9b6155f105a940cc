// Package jsonutil provides JSON helpers for abxdash.
//
// They are used by the sqlite dataset store (record payloads) and by the
// CLI's machine-readable output.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Pretty marshals v with two-space indentation.
func Pretty(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshalling JSON: %w", err)
	}
	return string(b), nil
}

// EncodeRow marshals a dataset row. Keys come out sorted, so the same row
// always encodes to the same string.
func EncodeRow(row map[string]any) (string, error) {
	b, err := json.Marshal(row)
	if err != nil {
		return "", fmt.Errorf("encoding row: %w", err)
	}
	return string(b), nil
}

// DecodeRow parses a row payload. Numbers are kept as json.Number so
// integral values survive the round trip without float rounding.
func DecodeRow(s string) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	row := make(map[string]any)
	if err := dec.Decode(&row); err != nil {
		return nil, fmt.Errorf("decoding row: %w", err)
	}
	return row, nil
}
