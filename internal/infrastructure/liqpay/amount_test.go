package liqpay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		minor int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{50, "0.50"},
		{100, "1.00"},
		{12345, "123.45"},
		{50000, "500.00"},
		{99999999, "999999.99"},
		{-12345, "-123.45"},
		{-5, "-0.05"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, FormatAmount(tc.minor), "minor=%d", tc.minor)
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"0.00", 0},
		{"0.05", 5},
		{"1", 100},
		{"1.5", 150},
		{"123.45", 12345},
		{"500.00", 50000},
		{" 123.45 ", 12345},
		{"-123.45", -12345},
		{".99", 99},
	}

	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		require.NoError(t, err, "in=%q", tc.in)
		require.Equal(t, tc.want, got, "in=%q", tc.in)
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "abc", "1.234", "12.3.4", "1,50"} {
		_, err := ParseAmount(in)
		require.Error(t, err, "in=%q", in)
	}
}

func TestAmountRoundTrip(t *testing.T) {
	t.Parallel()

	for _, minor := range []int64{0, 1, 99, 100, 101, 12345, 50000, 100000000} {
		got, err := ParseAmount(FormatAmount(minor))
		require.NoError(t, err)
		require.Equal(t, minor, got)
	}
}
