package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cafepos/cafepos-api/pkg/money"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{name: "whole amount renders bare", cents: 1000, want: "10"},
		{name: "fractional amount uses comma and two decimals", cents: 1050, want: "10,50"},
		{name: "zero", cents: 0, want: "0"},
		{name: "single trailing cent", cents: 1005, want: "10,05"},
		{name: "sub-unit amount", cents: 90, want: "0,90"},
		{name: "negative fractional", cents: -1050, want: "-10,50"},
		{name: "negative whole", cents: -700, want: "-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Format(tt.cents))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int64
		wantErr bool
	}{
		{name: "dot separator", text: "10.50", want: 1050},
		{name: "comma separator", text: "10,50", want: 1050},
		{name: "integer", text: "40", want: 4000},
		{name: "zero", text: "0", want: 0},
		{name: "trailing separator", text: "12.", want: 1200},
		{name: "empty", text: "", wantErr: true},
		{name: "garbage", text: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.ParseAmount(tt.text)
			if tt.wantErr {
				assert.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloatRoundTrip(t *testing.T) {
	assert.Equal(t, int64(1999), money.FromFloat(19.99))
	assert.Equal(t, 19.99, money.ToFloat(1999))
	// rounding, not truncation
	assert.Equal(t, int64(1050), money.FromFloat(10.499999999999))
}
