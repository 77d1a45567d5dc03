package runtime

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/rpn/pkg/domain"
	"github.com/aretw0/rpn/pkg/numfmt"
	"github.com/aretw0/rpn/pkg/stack"
)

// placeholder seeds an otherwise empty stack. The next typed value replaces it.
const placeholder = "0"

// Engine is the calculator state machine. It owns the operand stack and the
// entry-mode flags, and publishes a display snapshot after every event.
// An Engine is not safe for concurrent use.
type Engine struct {
	stack  *stack.Stack
	format numfmt.NumberFormat
	logger *slog.Logger
	hooks  domain.Hooks

	// pendingNewEntry: the next digit starts a new stack entry.
	pendingNewEntry bool
	// justEntered: the next digit (or literal) overwrites X.
	justEntered bool
	shiftActive bool
	angle       domain.AngleUnit

	notice notice
}

// notice is the display override left by the last event.
type notice struct {
	kind  domain.Notice
	which domain.Operand
	// consumed is the number of operands a failed operation popped.
	consumed int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithHooks registers the callbacks used to publish state.
func WithHooks(hooks domain.Hooks) EngineOption {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithNumberFormat sets the separators used for entries and results.
func WithNumberFormat(f numfmt.NumberFormat) EngineOption {
	return func(e *Engine) {
		e.format = f
	}
}

// WithAngleUnit sets the initial angle unit.
func WithAngleUnit(u domain.AngleUnit) EngineOption {
	return func(e *Engine) {
		e.angle = u
	}
}

// NewEngine creates an engine whose stack holds the "0" placeholder.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		stack:  stack.New(),
		format: numfmt.Default,
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		angle:  domain.Degrees,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.seed()
	return e
}

// Reset empties the stack and clears every entry flag. The angle unit is kept.
func (e *Engine) Reset() {
	e.begin()
	defer e.publish()
	e.stack.Clear()
	e.shiftActive = false
	e.seed()
}

func (e *Engine) seed() {
	e.stack.Push(placeholder)
	e.justEntered = true
	e.pendingNewEntry = false
}

// Format returns the number format the engine renders with.
func (e *Engine) Format() numfmt.NumberFormat {
	return e.format
}

// AngleUnit returns the active angle unit.
func (e *Engine) AngleUnit() domain.AngleUnit {
	return e.angle
}

// SetAngleUnit selects an angle unit directly, without converting X.
func (e *Engine) SetAngleUnit(u domain.AngleUnit) {
	e.begin()
	defer e.publish()
	e.angle = u
}

// ShiftActive reports whether the shift modifier is armed.
func (e *Engine) ShiftActive() bool {
	return e.shiftActive
}

// Entries returns every stack entry, top first.
func (e *Engine) Entries() []string {
	return e.stack.Entries()
}

// Display builds the snapshot for the current state, including the notice left
// by the last event.
func (e *Engine) Display() domain.Display {
	d := domain.Display{
		X:      e.peek(stack.X),
		Y:      e.peek(stack.Y),
		Z:      e.peek(stack.Z),
		Angle:  e.angle,
		Size:   e.stack.Size(),
		Shift:  e.shiftActive,
		Notice: e.notice.kind,
	}
	switch e.notice.kind {
	case domain.NoticeNoArg:
		if e.notice.which == domain.OperandX {
			d.X = domain.MissingText
		} else {
			d.Y = domain.MissingText
		}
	case domain.NoticeError:
		// ERROR takes the place of the consumed X; a consumed Y is shown blank.
		d.X = domain.ErrorText
		switch e.notice.consumed {
		case 0:
		case 1:
			d.Y = e.peek(stack.X)
			d.Z = e.peek(stack.Y)
		default:
			d.Y = ""
			d.Z = e.peek(stack.X)
		}
	}
	return d
}

func (e *Engine) peek(depth int) string {
	v, _ := e.stack.Peek(depth)
	return v
}

// x returns X when it holds a value; the transient empty entry counts as absent.
func (e *Engine) x() (string, bool) {
	v, ok := e.stack.Peek(stack.X)
	return v, ok && v != ""
}

// placeholder reports whether the stack holds only the seeded "0".
func (e *Engine) placeholder() bool {
	v, ok := e.stack.Peek(0)
	return ok && v == "0" && e.justEntered && e.stack.Size() == 1
}

// begin starts an event: the previous notice no longer applies.
func (e *Engine) begin() {
	e.notice = notice{}
}

func (e *Engine) publish() {
	if e.hooks.OnDisplay != nil {
		e.hooks.OnDisplay(e.Display())
	}
}

// consumeShift reads and clears the shift modifier.
func (e *Engine) consumeShift() bool {
	s := e.shiftActive
	e.shiftActive = false
	return s
}

func (e *Engine) noArg(which domain.Operand) error {
	e.notice = notice{kind: domain.NoticeNoArg, which: which}
	if e.hooks.OnNoArg != nil {
		e.hooks.OnNoArg(which)
	}
	return &domain.OperandError{Which: which}
}

func (e *Engine) fail(err error, consumed int) error {
	e.notice = notice{kind: domain.NoticeError, consumed: consumed}
	e.logger.Debug("operation failed", "err", err)
	if e.hooks.OnError != nil {
		e.hooks.OnError(err)
	}
	return err
}

func (e *Engine) emit(op domain.Op, shifted bool, result string, err error) {
	e.logger.Debug("operation", "op", op.String(), "shifted", shifted, "result", result)
	if e.hooks.OnOperation == nil {
		return
	}
	e.hooks.OnOperation(domain.OperationEvent{
		Timestamp: time.Now(),
		Op:        op,
		Name:      op.String(),
		Shifted:   shifted,
		Result:    result,
		Err:       err,
	})
}
