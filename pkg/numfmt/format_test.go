package numfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	assert.Equal(t, "100", Value(100))
	assert.Equal(t, "2024", Value(2024))
	assert.Equal(t, "22.5", Value(22.5))
	assert.Equal(t, "0.33", Value(1.0/3))
	assert.Equal(t, "-4", Value(-4))
}

func TestWithUnit(t *testing.T) {
	assert.Equal(t, "47%", WithUnit(47, "%"))
	assert.Equal(t, "12 kg", WithUnit(12, "kg"))
	assert.Equal(t, "260", WithUnit(260, ""))
}

func TestShare(t *testing.T) {
	assert.Equal(t, "35.0%", Share(0.35))
	assert.Equal(t, "50.0%", Share(0.5))
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "950", Compact(950))
	assert.Equal(t, "2024", Compact(2024))
	assert.Equal(t, "34k", Compact(34_000))
	assert.Equal(t, "2.5m", Compact(2_500_000))
	assert.Equal(t, "-2m", Compact(-2_000_000))
}
