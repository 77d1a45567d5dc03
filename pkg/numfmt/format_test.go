package numfmt_test

import (
	"math"
	"testing"

	"github.com/aretw0/rpn/pkg/numfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFormat(t *testing.T) {
	f := numfmt.Default
	tests := []struct {
		in   float64
		want string
	}{
		{10, "10"},
		{9.75, "9,75"},
		{6.25 + 3.5, "9,75"},
		{9.75 - 4.55, "5,2"},
		{5.2 * 3.4, "17,68"},
		{17.68 / 2.5, "7,072"},
		{1234567, "1.234.567"},
		{-1234.5, "-1.234,5"},
		{999999999999, "999.999.999.999"},
		{1e12, "1,00000000e+12"},
		{0.00001234, "1,23400000e-05"},
		{math.Copysign(0, -1), "0"},
		{math.Pi, "3,14159265359"},
		{math.E, "2,71828182846"},
		{2.9999999999999996, "3"},
	}
	for _, tt := range tests {
		got, err := f.Format(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Format(%v)", tt.in)
	}

	_, err := f.Format(math.Inf(1))
	assert.ErrorIs(t, err, numfmt.ErrNotFinite)
	_, err = f.Format(math.NaN())
	assert.ErrorIs(t, err, numfmt.ErrNotFinite)
}

func TestParse(t *testing.T) {
	f := numfmt.Default
	tests := []struct {
		in   string
		want float64
	}{
		{"7", 7},
		{"6,25", 6.25},
		{"3,50", 3.5},
		{"1.234.567", 1234567},
		{"-1.234,5", -1234.5},
		{"0,", 0},
		{"1,00000000e+12", 1e12},
	}
	for _, tt := range tests {
		got, err := f.Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, tt.in)
	}

	for _, bad := range []string{"", "-", ",", "abc", "inf", "NaN", "1,2,3", "ERROR"} {
		_, err := f.Parse(bad)
		assert.ErrorIs(t, err, numfmt.ErrSyntax, bad)
	}
}

func TestRoundTrip(t *testing.T) {
	f := numfmt.Default
	for _, s := range []string{"1", "12,5", "123.456.789.012", "0,000123456789", "-42,125"} {
		v, err := f.Parse(s)
		require.NoError(t, err)
		back, err := f.Format(v)
		require.NoError(t, err)
		again, err := f.Parse(back)
		require.NoError(t, err)
		assert.InEpsilon(t, v, again, 1e-11, s)
	}
}

func TestRegroupAndDigits(t *testing.T) {
	f := numfmt.Default
	assert.Equal(t, "1.234", f.Regroup("1234"))
	assert.Equal(t, "12.345", f.Regroup("1.2345"))
	assert.Equal(t, "123.456.789", f.Regroup("123456789"))
	assert.Equal(t, "-1.000", f.Regroup("-1000"))
	assert.Equal(t, "1234,5", f.Regroup("1234,5"))

	assert.Equal(t, 7, numfmt.DigitCount("1.234,567"))
	assert.Equal(t, 2, numfmt.DigitCount("-1,2"))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, numfmt.Default.Validate())
	assert.Error(t, numfmt.NumberFormat{Decimal: '.', Grouping: '.'}.Validate())
	assert.Error(t, numfmt.NumberFormat{Decimal: 'e', Grouping: ','}.Validate())

	us := numfmt.NumberFormat{Decimal: '.', Grouping: ','}
	assert.Equal(t, "1,234.5", us.MustFormat(1234.5))
}

func TestForLocale(t *testing.T) {
	br, err := numfmt.ForLocale(language.BrazilianPortuguese)
	require.NoError(t, err)
	assert.Equal(t, ',', br.Decimal)
	assert.Equal(t, '.', br.Grouping)

	us, err := numfmt.ParseLocale("en-US")
	require.NoError(t, err)
	assert.Equal(t, '.', us.Decimal)
	assert.Equal(t, ',', us.Grouping)

	_, err = numfmt.ParseLocale("not a locale!")
	assert.Error(t, err)
}
