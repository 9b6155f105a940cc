package jsonutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowRoundTripKeepsIntegers(t *testing.T) {
	s, err := EncodeRow(map[string]any{"year": int64(2024), "resistance_rate": 47.5, "name": "Proper use"})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Proper use","resistance_rate":47.5,"year":2024}`, s)

	row, err := DecodeRow(s)
	require.NoError(t, err)
	assert.Equal(t, json.Number("2024"), row["year"])
	assert.Equal(t, "Proper use", row["name"])
}

func TestDecodeRowRejectsGarbage(t *testing.T) {
	_, err := DecodeRow("{not json")
	assert.Error(t, err)
}

func TestPretty(t *testing.T) {
	s, err := Pretty(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", s)
}
