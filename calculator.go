package rpn

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/rpn/internal/runtime"
	"github.com/aretw0/rpn/pkg/domain"
	"github.com/aretw0/rpn/pkg/numfmt"
	"golang.org/x/text/language"
)

// Version is the release of the rpn library and CLI.
const Version = "0.4.0"

// Calculator is the high-level entry point for the rpn library.
// It wraps the internal runtime and provides a simplified API for hosts.
// A Calculator is not safe for concurrent use; adapters serialise access.
type Calculator struct {
	runtime     *runtime.Engine
	runtimeOpts []runtime.EngineOption
	format      *numfmt.NumberFormat
	locale      *language.Tag
	hooks       domain.Hooks
	logger      *slog.Logger
}

// Option defines a functional option for configuring the Calculator.
type Option func(*Calculator)

// WithHooks registers display and operation hooks. Repeated calls merge.
func WithHooks(hooks domain.Hooks) Option {
	return func(c *Calculator) {
		c.hooks = c.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the calculator.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

// WithNumberFormat sets the decimal and grouping separators explicitly.
// It takes precedence over WithLocale.
func WithNumberFormat(f numfmt.NumberFormat) Option {
	return func(c *Calculator) {
		c.format = &f
	}
}

// WithLocale derives the separators from a language tag, e.g. "en-US".
func WithLocale(tag language.Tag) Option {
	return func(c *Calculator) {
		c.locale = &tag
	}
}

// WithAngleUnit configures the initial angle unit (default: DEG).
func WithAngleUnit(u domain.AngleUnit) Option {
	return func(c *Calculator) {
		c.runtimeOpts = append(c.runtimeOpts, runtime.WithAngleUnit(u))
	}
}

// New initializes a Calculator whose stack holds the "0" placeholder.
func New(opts ...Option) (*Calculator, error) {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}

	format := numfmt.Default
	switch {
	case c.format != nil:
		format = *c.format
	case c.locale != nil:
		f, err := numfmt.ForLocale(*c.locale)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve locale: %w", err)
		}
		format = f
	}
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("invalid number format: %w", err)
	}

	// Ensure logger is initialized so the runtime never sees nil
	if c.logger == nil {
		c.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLogger(c.logger),
		runtime.WithHooks(c.hooks),
		runtime.WithNumberFormat(format),
	}
	runtimeOpts = append(runtimeOpts, c.runtimeOpts...)
	c.runtime = runtime.NewEngine(runtimeOpts...)

	c.logger.Debug("calculator ready",
		"decimal", string(format.Decimal),
		"grouping", string(format.Grouping),
		"angle", c.runtime.AngleUnit().String())
	return c, nil
}

// Press delivers one key event.
func (c *Calculator) Press(k domain.Key) error {
	return c.runtime.Press(k)
}

// Apply delivers one input, either a key or a numeric literal.
func (c *Calculator) Apply(in domain.Input) error {
	return c.runtime.Apply(in)
}

// Push enters a complete number written in the calculator's format.
func (c *Calculator) Push(literal string) error {
	return c.runtime.Push(literal)
}

// Digit types one digit into X.
func (c *Calculator) Digit(d byte) error {
	return c.runtime.Digit(d)
}

// Separator types the decimal separator into X.
func (c *Calculator) Separator() {
	c.runtime.Separator()
}

// Backspace removes the last typed character of X.
func (c *Calculator) Backspace() {
	c.runtime.Backspace()
}

// Enter duplicates X.
func (c *Calculator) Enter() error {
	return c.runtime.Enter()
}

// Operate applies a one- or two-argument operation.
func (c *Calculator) Operate(op domain.Op) error {
	return c.runtime.Operate(op)
}

// Drop removes X, or the whole stack when shift is armed.
func (c *Calculator) Drop() {
	c.runtime.Drop()
}

// Swap exchanges X and Y, or shows the stack when shift is armed.
func (c *Calculator) Swap() error {
	return c.runtime.Swap()
}

// ToggleShift arms or disarms the shift modifier.
func (c *Calculator) ToggleShift() {
	c.runtime.ToggleShift()
}

// Pi enters π.
func (c *Calculator) Pi() {
	c.runtime.Pi()
}

// E enters Euler's number.
func (c *Calculator) E() {
	c.runtime.E()
}

// CycleAngleUnit advances DEG -> RAD -> GRAD, converting X when shifted.
func (c *Calculator) CycleAngleUnit() error {
	return c.runtime.CycleAngleUnit()
}

// SetAngleUnit selects an angle unit without touching the stack.
func (c *Calculator) SetAngleUnit(u domain.AngleUnit) {
	c.runtime.SetAngleUnit(u)
}

// AngleUnit returns the active angle unit.
func (c *Calculator) AngleUnit() domain.AngleUnit {
	return c.runtime.AngleUnit()
}

// Reset returns to a fresh stack. The angle unit is kept.
func (c *Calculator) Reset() {
	c.runtime.Reset()
}

// Display returns the current X/Y/Z snapshot.
func (c *Calculator) Display() domain.Display {
	return c.runtime.Display()
}

// Entries returns all stack entries, top first.
func (c *Calculator) Entries() []string {
	return c.runtime.Entries()
}

// Format returns the separators the calculator uses.
func (c *Calculator) Format() numfmt.NumberFormat {
	return c.runtime.Format()
}
