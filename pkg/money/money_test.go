package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency Currency
		want     string
	}{
		{"zero", 0, USD, "$0.00"},
		{"cents", 2.5, USD, "$2.50"},
		{"grouping", 1234.5, USD, "$1,234.50"},
		{"millions", 1234567.891, USD, "$1,234,567.89"},
		{"pounds", 3, GBP, "£3.00"},
		{"negative", -0.75, GBP, "-£0.75"},
		{"rounds half away from zero", 0.125, USD, "$0.13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.amount, tt.currency))
		})
	}
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$21.00", FormatUSD(21))
}

func TestRound(t *testing.T) {
	assert.Equal(t, "2.50", Round(2.499999999).StringFixed(2))
	assert.True(t, Round(0.004).IsZero())
}
