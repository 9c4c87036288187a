package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"0", 0, true},
		{"85.50", 8550, true},
		{"1.005", 101, true}, // half-up rounding
		{"12.344", 1234, true},
		{" 2.50 ", 250, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"1e3", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
		{"100000000000", 1e13, true},
		{"100000000000.01", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			require.NoError(t, err, tc.in)
			assert.Equal(t, tc.out, got.Cents, tc.in)
		} else {
			assert.ErrorIs(t, err, ErrInvalidAmount, tc.in)
		}
	}
}

func TestMoneyArithmeticAndFormat(t *testing.T) {
	income := Cents(120000)
	expense := Cents(50000).Add(Cents(8550))

	assert.Equal(t, Cents(58550), expense)
	assert.Equal(t, Cents(61450), income.Sub(expense))
	assert.Equal(t, "$614.50", income.Sub(expense).String())
	assert.Equal(t, "-$10.05", Cents(-1005).String())
	assert.Equal(t, Cents(1005), Cents(-1005).Abs())
	assert.InDelta(t, 85.5, Cents(8550).Float64(), 1e-9)
	assert.True(t, Money{}.IsZero())
}

func TestMoneyValidate(t *testing.T) {
	assert.NoError(t, Cents(0).Validate())
	assert.NoError(t, Cents(1).Validate())
	assert.ErrorIs(t, Cents(-1).Validate(), ErrInvalidAmount)
	assert.NoError(t, Cents(MaxAmountCents).Validate())
	assert.ErrorIs(t, Cents(MaxAmountCents+1).Validate(), ErrInvalidAmount)
}

func TestMoneyJSON(t *testing.T) {
	b, err := json.Marshal(Cents(8550))
	require.NoError(t, err)
	assert.Equal(t, "85.50", string(b))

	var m Money
	require.NoError(t, json.Unmarshal([]byte(`12.345`), &m))
	assert.Equal(t, int64(1235), m.Cents)

	require.NoError(t, json.Unmarshal([]byte(`"7.1"`), &m))
	assert.Equal(t, int64(710), m.Cents)

	assert.ErrorIs(t, json.Unmarshal([]byte(`"seven"`), &m), ErrInvalidAmount)
}
