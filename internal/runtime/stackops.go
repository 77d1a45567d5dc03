package runtime

import (
	"fmt"
	"math"

	"github.com/aretw0/rpn/pkg/domain"
)

// Enter duplicates X. The next digit overwrites the copy.
func (e *Engine) Enter() error {
	e.begin()
	defer e.publish()

	x, ok := e.x()
	if !ok {
		return e.noArg(domain.OperandX)
	}
	if canonical, err := e.format.Canonical(x); err == nil && canonical != x {
		_, _ = e.stack.Pop()
		e.stack.Push(canonical)
		x = canonical
	}
	e.stack.Push(x)
	e.justEntered = true
	e.pendingNewEntry = false
	return nil
}

// Drop pops X; shifted, it clears the whole stack. An emptied stack is
// re-seeded with the placeholder.
func (e *Engine) Drop() {
	e.begin()
	defer e.publish()

	if e.consumeShift() {
		e.stack.Clear()
	} else {
		_, _ = e.stack.Pop()
	}
	e.pendingNewEntry = true
	e.justEntered = false
	if e.stack.IsEmpty() {
		e.seed()
	}
}

// Swap exchanges X and Y; shifted, it hands every entry to OnShowStack instead.
func (e *Engine) Swap() error {
	e.begin()
	defer e.publish()

	if e.consumeShift() {
		if e.hooks.OnShowStack != nil {
			e.hooks.OnShowStack(e.stack.Entries())
		}
		return nil
	}
	if err := e.stack.Swap(); err != nil {
		return e.noArg(domain.OperandY)
	}
	e.pendingNewEntry = true
	e.justEntered = false
	return nil
}

// ToggleShift arms or disarms the alternate meaning of the next shift-aware key.
func (e *Engine) ToggleShift() {
	e.begin()
	defer e.publish()
	e.shiftActive = !e.shiftActive
}

// Pi enters π.
func (e *Engine) Pi() {
	e.constant(math.Pi)
}

// E enters Euler's number.
func (e *Engine) E() {
	e.constant(math.E)
}

// constant always pushes; only the seeded "0" placeholder is replaced.
func (e *Engine) constant(v float64) {
	e.begin()
	defer e.publish()
	if e.placeholder() {
		_, _ = e.stack.Pop()
	}
	e.stack.Push(e.format.MustFormat(v))
	e.justEntered = false
	e.pendingNewEntry = true
}

// CycleAngleUnit advances DEG -> RAD -> GRAD -> DEG. Shifted, X is also
// converted from the old unit into the new one.
func (e *Engine) CycleAngleUnit() error {
	e.begin()
	defer e.publish()

	shifted := e.consumeShift()
	from := e.angle
	e.angle = from.Next()
	if !shifted {
		return nil
	}

	raw, ok := e.x()
	if !ok {
		return e.noArg(domain.OperandX)
	}
	_, _ = e.stack.Pop()
	e.pendingNewEntry = true
	e.justEntered = false

	v, err := e.format.Parse(raw)
	if err != nil {
		return e.fail(fmt.Errorf("%w: drg: %v", domain.ErrArithmetic, err), 1)
	}
	converted, err := e.format.Format(convertAngle(v, from, e.angle))
	if err != nil {
		return e.fail(fmt.Errorf("%w: drg: %v", domain.ErrArithmetic, err), 1)
	}
	e.stack.Push(converted)
	return nil
}

// Press delivers one key event.
func (e *Engine) Press(k domain.Key) error {
	if d, ok := k.Digit(); ok {
		return e.Digit(d)
	}
	if op, ok := k.Op(); ok {
		return e.Operate(op)
	}
	switch k {
	case domain.KeySeparator:
		e.Separator()
	case domain.KeyEnter:
		return e.Enter()
	case domain.KeyShift:
		e.ToggleShift()
	case domain.KeyBackspace:
		e.Backspace()
	case domain.KeyDrop:
		e.Drop()
	case domain.KeySwap:
		return e.Swap()
	case domain.KeyDRG:
		return e.CycleAngleUnit()
	case domain.KeyPi:
		e.Pi()
	case domain.KeyE:
		e.E()
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownKey, string(k))
	}
	return nil
}

// Apply delivers one input: a literal when set, otherwise a key press.
func (e *Engine) Apply(in domain.Input) error {
	if in.Literal != "" {
		return e.Push(in.Literal)
	}
	return e.Press(in.Key)
}
