package runtime_test

import (
	"strings"
	"testing"

	"github.com/aretw0/rpn/internal/runtime"
	"github.com/aretw0/rpn/pkg/domain"
	"github.com/aretw0/rpn/pkg/numfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feed applies whitespace separated tokens: numbers are pushed as literals,
// everything else is parsed as a key. Errors from operations are ignored.
func feed(t *testing.T, e *runtime.Engine, script string) {
	t.Helper()
	for _, tok := range strings.Fields(script) {
		if e.Format().Valid(tok) {
			require.NoError(t, e.Push(tok), tok)
			continue
		}
		k, err := domain.ParseKey(tok)
		require.NoError(t, err, tok)
		_ = e.Press(k)
	}
}

// typeKeys presses each character as a key; ',' is the separator.
func typeKeys(t *testing.T, e *runtime.Engine, keys string) {
	t.Helper()
	for _, r := range keys {
		k, err := domain.ParseKey(string(r))
		require.NoError(t, err, string(r))
		_ = e.Press(k)
	}
}

func x(e *runtime.Engine) string { return e.Display().X }

func TestEngine_IntegerChain(t *testing.T) {
	e := runtime.NewEngine()
	steps := []struct {
		script string
		want   string
	}{
		{"7 3 +", "10"},
		{"4 -", "6"},
		{"3 *", "18"},
		{"6 /", "3"},
		{"3 y^x", "27"},
		{"7 mod", "6"},
		{"50 %", "3"},
		{"6 y^x 6 shift y^x", "3"},
	}
	for _, s := range steps {
		feed(t, e, s.script)
		assert.Equal(t, s.want, x(e), s.script)
		assert.Equal(t, 1, e.Display().Size, s.script)
	}
}

func TestEngine_FloatChain(t *testing.T) {
	e := runtime.NewEngine()
	steps := []struct {
		script string
		want   string
	}{
		{"6,25 3,50 +", "9,75"},
		{"4,55 -", "5,2"},
		{"3,4 *", "17,68"},
		{"2,5 /", "7,072"},
		{"2 y^x", "50,013184"},
		{"25 %", "12,503296"},
		{"6 y^x 6 shift y^x", "12,503296"},
	}
	for _, s := range steps {
		feed(t, e, s.script)
		assert.Equal(t, s.want, x(e), s.script)
	}
}

func TestEngine_DigitEntry(t *testing.T) {
	t.Run("grouping is recomputed on every digit", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "1234")
		assert.Equal(t, "1.234", x(e))
		typeKeys(t, e, "567")
		assert.Equal(t, "1.234.567", x(e))
		assert.Equal(t, 1, e.Display().Size)
	})

	t.Run("fractional part is appended verbatim", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "1234,50")
		assert.Equal(t, "1.234,50", x(e))
		typeKeys(t, e, ",")
		assert.Equal(t, "1.234,50", x(e), "second separator is ignored")
	})

	t.Run("leading separator seeds a zero", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, ",5")
		assert.Equal(t, "0,5", x(e))
	})

	t.Run("twelve digit limit", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "1234567890123")
		assert.Equal(t, "123.456.789.012", x(e))
	})

	t.Run("digits after Enter overwrite the copy", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "5")
		require.NoError(t, e.Enter())
		typeKeys(t, e, "3")
		d := e.Display()
		assert.Equal(t, "3", d.X)
		assert.Equal(t, "5", d.Y)
		assert.Equal(t, 2, d.Size)
	})

	t.Run("digits after a result start a new entry", func(t *testing.T) {
		e := runtime.NewEngine()
		feed(t, e, "2 3 +")
		typeKeys(t, e, "4")
		d := e.Display()
		assert.Equal(t, "4", d.X)
		assert.Equal(t, "5", d.Y)
	})

	t.Run("formatted entries round trip", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "98765,4321")
		v, err := e.Format().Parse(x(e))
		require.NoError(t, err)
		assert.Equal(t, "98.765,4321", e.Format().MustFormat(v))
	})

	t.Run("other number formats", func(t *testing.T) {
		e := runtime.NewEngine(runtime.WithNumberFormat(numfmt.NumberFormat{Decimal: '.', Grouping: ','}))
		typeKeys(t, e, "1234.5")
		assert.Equal(t, "1,234.5", x(e))
	})
}

func TestEngine_Backspace(t *testing.T) {
	t.Run("single character leaves zero", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "7")
		e.Backspace()
		assert.Equal(t, "0", x(e))
		typeKeys(t, e, "5")
		assert.Equal(t, "5", x(e))
		assert.Equal(t, 1, e.Display().Size)
	})

	t.Run("regroups the remaining digits", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "12345")
		e.Backspace()
		assert.Equal(t, "1.234", x(e))
		e.Backspace()
		assert.Equal(t, "123", x(e))
	})

	t.Run("drops a bare trailing separator", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "12,5")
		e.Backspace()
		assert.Equal(t, "12", x(e))
	})

	t.Run("negative single digit", func(t *testing.T) {
		e := runtime.NewEngine()
		feed(t, e, "5 chs")
		e.Backspace()
		assert.Equal(t, "0", x(e))
	})
}

func TestEngine_MissingOperands(t *testing.T) {
	t.Run("two-argument op without Y leaves the stack untouched", func(t *testing.T) {
		e := runtime.NewEngine()
		feed(t, e, "5")
		err := e.Operate(domain.OpAdd)

		var opErr *domain.OperandError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, domain.OperandY, opErr.Which)

		d := e.Display()
		assert.Equal(t, "5", d.X)
		assert.Equal(t, domain.MissingText, d.Y)
		assert.Equal(t, domain.NoticeNoArg, d.Notice)
		assert.Equal(t, []string{"5"}, e.Entries())

		typeKeys(t, e, "2")
		assert.Equal(t, []string{"2", "5"}, e.Entries(), "next digit starts a new entry")
	})

	t.Run("one-argument op without X", func(t *testing.T) {
		e := runtime.NewEngine()
		feed(t, e, "0 inv")
		assert.Empty(t, e.Entries())

		err := e.Operate(domain.OpSin)
		assert.ErrorIs(t, err, domain.ErrMissingOperand)
		assert.Equal(t, domain.MissingText, e.Display().X)
	})

	t.Run("notice clears on the next event", func(t *testing.T) {
		e := runtime.NewEngine()
		feed(t, e, "5 +")
		typeKeys(t, e, "1")
		assert.Equal(t, domain.NoticeNone, e.Display().Notice)
	})
}

func TestEngine_ArithmeticErrors(t *testing.T) {
	t.Run("divide by zero keeps Y and Z", func(t *testing.T) {
		e := runtime.NewEngine()
		feed(t, e, "9 8 7 0")
		err := e.Operate(domain.OpDiv)
		assert.ErrorIs(t, err, domain.ErrArithmetic)

		d := e.Display()
		assert.Equal(t, domain.ErrorText, d.X)
		assert.Equal(t, "", d.Y)
		assert.Equal(t, "8", d.Z)
		assert.Equal(t, []string{"8", "9"}, e.Entries())

		typeKeys(t, e, "4")
		assert.Equal(t, []string{"4", "8", "9"}, e.Entries())
	})

	t.Run("one-argument failure consumes X only", func(t *testing.T) {
		e := runtime.NewEngine()
		feed(t, e, "3 2 -1 log")
		d := e.Display()
		assert.Equal(t, domain.ErrorText, d.X)
		assert.Equal(t, "2", d.Y)
		assert.Equal(t, "3", d.Z)
		assert.Equal(t, []string{"2", "3"}, e.Entries())
	})

	for _, script := range []string{
		"0 inv",
		"-4 sqrt",
		"0 log",
		"0 ln",
		"2 shift sin",
		"-2 shift cos",
		"90 tan",
		"270 tan",
		"-90 tan",
		"2,5 shift inv",
		"-1 shift inv",
		"171 shift inv",
		"5 0 mod",
		"-8 3 shift y^x",
		"0 -1 y^x",
		"4 0 shift y^x",
	} {
		t.Run(script, func(t *testing.T) {
			e := runtime.NewEngine()
			feed(t, e, script)
			assert.Equal(t, domain.ErrorText, x(e))
			assert.False(t, e.ShiftActive())
		})
	}
}

func TestEngine_OneArgOperations(t *testing.T) {
	tests := []struct {
		script string
		want   string
	}{
		{"5 chs", "-5"},
		{"0 chs", "0"},
		{"4 inv", "0,25"},
		{"5 shift inv", "120"},
		{"0 shift inv", "1"},
		{"16 sqrt", "4"},
		{"2 sqrt", "1,41421356237"},
		{"3 shift sqrt", "9"},
		{"30 sin", "0,5"},
		{"180 sin", "0"},
		{"60 cos", "0,5"},
		{"90 cos", "0"},
		{"45 tan", "1"},
		{"180 tan", "0"},
		{"0,5 shift sin", "30"},
		{"1 shift tan", "45"},
		{"1000 log", "3"},
		{"2 shift log", "100"},
		{"1 ln", "0"},
		{"0 shift ln", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.script, func(t *testing.T) {
			e := runtime.NewEngine()
			feed(t, e, tt.script)
			assert.Equal(t, tt.want, x(e))
		})
	}
}

func TestEngine_TwoArgOperations(t *testing.T) {
	tests := []struct {
		script string
		want   string
	}{
		{"-7 3 mod", "2"},
		{"7 -3 mod", "-2"},
		{"7,5 2 mod", "1,5"},
		{"200 15 %", "30"},
		{"2 10 y^x", "1.024"},
		{"27 3 shift y^x", "3"},
		{"1000000 1000000 *", "1,00000000e+12"},
	}
	for _, tt := range tests {
		t.Run(tt.script, func(t *testing.T) {
			e := runtime.NewEngine()
			feed(t, e, tt.script)
			assert.Equal(t, tt.want, x(e))
		})
	}
}

func TestEngine_AngleUnits(t *testing.T) {
	t.Run("cycles every three presses", func(t *testing.T) {
		e := runtime.NewEngine()
		labels := []string{}
		for i := 0; i < 6; i++ {
			require.NoError(t, e.CycleAngleUnit())
			labels = append(labels, e.Display().AngleLabel())
		}
		assert.Equal(t, []string{"RAD", "GRAD", "DEG", "RAD", "GRAD", "DEG"}, labels)
	})

	t.Run("radians and gradians", func(t *testing.T) {
		e := runtime.NewEngine(runtime.WithAngleUnit(domain.Gradians))
		feed(t, e, "100 sin")
		assert.Equal(t, "1", x(e))

		e = runtime.NewEngine(runtime.WithAngleUnit(domain.Radians))
		feed(t, e, "0 cos")
		assert.Equal(t, "1", x(e))
		feed(t, e, "1 shift sin")
		assert.Equal(t, "1,57079632679", x(e))
	})

	t.Run("shifted drg converts X", func(t *testing.T) {
		e := runtime.NewEngine()
		feed(t, e, "180 shift drg")
		assert.Equal(t, "3,14159265359", x(e))
		assert.Equal(t, domain.Radians, e.AngleUnit())
		assert.False(t, e.ShiftActive())

		feed(t, e, "shift drg")
		assert.Equal(t, "200", x(e))
		assert.Equal(t, domain.Gradians, e.AngleUnit())

		feed(t, e, "shift drg")
		assert.Equal(t, "180", x(e))
		assert.Equal(t, domain.Degrees, e.AngleUnit())
		assert.Equal(t, 1, e.Display().Size)
	})
}

func TestEngine_ShiftIsConsumedOnce(t *testing.T) {
	e := runtime.NewEngine()
	e.ToggleShift()
	assert.True(t, e.Display().Shift)

	feed(t, e, "2 3 +")
	assert.Equal(t, "5", x(e))
	assert.False(t, e.ShiftActive(), "ops without a shifted meaning still clear shift")

	e.ToggleShift()
	_ = e.Operate(domain.OpSub)
	assert.False(t, e.ShiftActive(), "refused ops clear shift")

	e.ToggleShift()
	e.ToggleShift()
	assert.False(t, e.ShiftActive())
}

func TestEngine_StackOperations(t *testing.T) {
	t.Run("swap", func(t *testing.T) {
		e := runtime.NewEngine()
		feed(t, e, "1 2 swap")
		d := e.Display()
		assert.Equal(t, "1", d.X)
		assert.Equal(t, "2", d.Y)

		e = runtime.NewEngine()
		feed(t, e, "1")
		assert.ErrorIs(t, e.Swap(), domain.ErrMissingOperand)
		assert.Equal(t, domain.MissingText, e.Display().Y)
	})

	t.Run("shifted swap shows the stack", func(t *testing.T) {
		var shown []string
		e := runtime.NewEngine(runtime.WithHooks(domain.Hooks{
			OnShowStack: func(entries []string) { shown = entries },
		}))
		feed(t, e, "1 2 3 shift swap")
		assert.Equal(t, []string{"3", "2", "1"}, shown)
		assert.Equal(t, []string{"3", "2", "1"}, e.Entries(), "view does not mutate")
		assert.False(t, e.ShiftActive())
	})

	t.Run("drop reseeds an empty stack", func(t *testing.T) {
		e := runtime.NewEngine()
		feed(t, e, "1 2 drop")
		assert.Equal(t, "1", x(e))
		feed(t, e, "drop")
		assert.Equal(t, []string{"0"}, e.Entries())
		typeKeys(t, e, "7")
		assert.Equal(t, []string{"7"}, e.Entries())
	})

	t.Run("shifted drop clears everything", func(t *testing.T) {
		e := runtime.NewEngine()
		feed(t, e, "1 2 3 shift drop")
		assert.Equal(t, []string{"0"}, e.Entries())
		assert.False(t, e.ShiftActive())
	})

	t.Run("enter canonicalises and duplicates", func(t *testing.T) {
		e := runtime.NewEngine()
		typeKeys(t, e, "12,")
		require.NoError(t, e.Enter())
		assert.Equal(t, []string{"12", "12"}, e.Entries())
	})

	t.Run("constants", func(t *testing.T) {
		e := runtime.NewEngine()
		e.Pi()
		assert.Equal(t, []string{"3,14159265359"}, e.Entries())
		e.E()
		assert.Equal(t, []string{"2,71828182846", "3,14159265359"}, e.Entries())

		e = runtime.NewEngine()
		feed(t, e, "5 enter pi")
		assert.Equal(t, []string{"3,14159265359", "5", "5"}, e.Entries())

		e = runtime.NewEngine()
		feed(t, e, "5 enter e +")
		assert.Equal(t, []string{"7,71828182846", "5"}, e.Entries())

		// The next digit after a constant starts a new entry.
		e = runtime.NewEngine()
		e.Pi()
		typeKeys(t, e, "2")
		assert.Equal(t, []string{"2", "3,14159265359"}, e.Entries())
	})

	t.Run("reset", func(t *testing.T) {
		e := runtime.NewEngine(runtime.WithAngleUnit(domain.Radians))
		feed(t, e, "1 2 3 shift")
		e.Reset()
		assert.Equal(t, []string{"0"}, e.Entries())
		assert.False(t, e.ShiftActive())
		assert.Equal(t, domain.Radians, e.AngleUnit())
	})
}

func TestEngine_Hooks(t *testing.T) {
	var (
		displays []domain.Display
		errs     []error
		noArgs   []domain.Operand
		events   []domain.OperationEvent
	)
	e := runtime.NewEngine(runtime.WithHooks(domain.Hooks{
		OnDisplay:   func(d domain.Display) { displays = append(displays, d) },
		OnError:     func(err error) { errs = append(errs, err) },
		OnNoArg:     func(o domain.Operand) { noArgs = append(noArgs, o) },
		OnOperation: func(ev domain.OperationEvent) { events = append(events, ev) },
	}))

	feed(t, e, "8 0 / 5 +")
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], domain.ErrArithmetic)
	assert.Equal(t, []domain.Operand{domain.OperandY}, noArgs)
	require.Len(t, events, 1)
	assert.Equal(t, "/", events[0].Name)
	assert.Error(t, events[0].Err)
	assert.Len(t, displays, 5)
	assert.Equal(t, domain.ErrorText, displays[2].X)
	require.Error(t, e.Operate(domain.Op(99)))
	require.Len(t, events, 2, "unknown operations are reported too")
	assert.Equal(t, "unknown", events[1].Name)
	assert.ErrorIs(t, events[1].Err, domain.ErrArithmetic)
	assert.Len(t, errs, 2)
}

func TestEngine_PressAndApply(t *testing.T) {
	e := runtime.NewEngine()
	require.NoError(t, e.Apply(domain.Input{Literal: "2"}))
	require.NoError(t, e.Apply(domain.Input{Key: domain.KeyEnter}))
	require.NoError(t, e.Apply(domain.Input{Key: domain.OpKey(domain.OpMul)}))
	assert.Equal(t, "4", x(e))

	assert.ErrorIs(t, e.Press("sinh"), domain.ErrUnknownKey)
	assert.ErrorIs(t, e.Push("abc"), domain.ErrInvalidNumber)
	assert.ErrorIs(t, e.Operate(domain.Op(99)), domain.ErrArithmetic)
	assert.Equal(t, domain.ErrorText, x(e))
}
