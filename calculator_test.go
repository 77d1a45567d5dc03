package rpn_test

import (
	"testing"

	"github.com/aretw0/rpn"
	"github.com/aretw0/rpn/pkg/domain"
	"github.com/aretw0/rpn/pkg/numfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCalculator_Defaults(t *testing.T) {
	calc, err := rpn.New()
	require.NoError(t, err)

	d := calc.Display()
	assert.Equal(t, "0", d.X)
	assert.Equal(t, "", d.Y)
	assert.Equal(t, "DEG", d.AngleLabel())
	assert.Equal(t, numfmt.Default, calc.Format())
}

func TestCalculator_Options(t *testing.T) {
	t.Run("number format wins over locale", func(t *testing.T) {
		f := numfmt.NumberFormat{Decimal: '.', Grouping: ' '}
		calc, err := rpn.New(rpn.WithLocale(language.BrazilianPortuguese), rpn.WithNumberFormat(f))
		require.NoError(t, err)
		assert.Equal(t, f, calc.Format())
	})

	t.Run("invalid format is rejected", func(t *testing.T) {
		_, err := rpn.New(rpn.WithNumberFormat(numfmt.NumberFormat{Decimal: ',', Grouping: ','}))
		assert.Error(t, err)
	})

	t.Run("initial angle unit", func(t *testing.T) {
		calc, err := rpn.New(rpn.WithAngleUnit(domain.Gradians))
		require.NoError(t, err)
		assert.Equal(t, domain.Gradians, calc.AngleUnit())
	})

	t.Run("hooks are merged", func(t *testing.T) {
		var a, b int
		calc, err := rpn.New(
			rpn.WithHooks(domain.Hooks{OnDisplay: func(domain.Display) { a++ }}),
			rpn.WithHooks(domain.Hooks{OnDisplay: func(domain.Display) { b++ }}),
		)
		require.NoError(t, err)
		calc.ToggleShift()
		assert.Equal(t, 1, a)
		assert.Equal(t, 1, b)
	})
}

func TestCalculator_Session(t *testing.T) {
	calc, err := rpn.New()
	require.NoError(t, err)

	require.NoError(t, calc.Digit('9'))
	calc.Separator()
	require.NoError(t, calc.Digit('5'))
	require.NoError(t, calc.Enter())
	require.NoError(t, calc.Operate(domain.OpMul))
	assert.Equal(t, "90,25", calc.Display().X)

	calc.ToggleShift()
	require.NoError(t, calc.Operate(domain.OpSqrt))
	assert.Equal(t, "8.145,0625", calc.Display().X)

	calc.Pi()
	calc.E()
	require.NoError(t, calc.Swap())
	assert.Equal(t, "3,14159265359", calc.Display().X)

	calc.Drop()
	calc.Drop()
	calc.Backspace()
	assert.Equal(t, "8.145,062", calc.Display().X)

	require.NoError(t, calc.CycleAngleUnit())
	calc.SetAngleUnit(domain.Degrees)
	assert.Equal(t, domain.Degrees, calc.AngleUnit())

	calc.Reset()
	assert.Equal(t, []string{"0"}, calc.Entries())
}
