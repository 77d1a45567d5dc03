package domain

import (
	"time"
)

// Operand names a stack position required by an operation.
type Operand string

const (
	OperandX Operand = "x"
	OperandY Operand = "y"
)

// Notice is a transient display override produced by the last event.
type Notice string

const (
	NoticeNone  Notice = ""
	NoticeNoArg Notice = "no_arg"
	NoticeError Notice = "error"
)

// Display texts shown in place of values by notices.
const (
	MissingText = "--"
	ErrorText   = "ERROR"
)

// Display is the snapshot a presentation layer renders.
// X, Y and Z are empty when the stack is shallower than their depth.
type Display struct {
	X      string    `json:"x"`
	Y      string    `json:"y"`
	Z      string    `json:"z"`
	Angle  AngleUnit `json:"angle"`
	Size   int       `json:"stack_size"`
	Shift  bool      `json:"shift"`
	Notice Notice    `json:"notice,omitempty"`
}

// AngleLabel returns the angle unit as shown in the status line.
func (d Display) AngleLabel() string {
	return d.Angle.String()
}

// OperationEvent describes one dispatched numeric operation.
type OperationEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Op        Op        `json:"-"`
	Name      string    `json:"op"`
	Shifted   bool      `json:"shifted"`
	Result    string    `json:"result,omitempty"`
	Err       error     `json:"-"`
}

// Hooks are callbacks through which the engine publishes its state.
// Every field is optional.
type Hooks struct {
	// OnDisplay receives a fresh snapshot after every event.
	OnDisplay func(Display)
	// OnNoArg fires when an operation is refused for lack of an operand.
	OnNoArg func(Operand)
	// OnError fires when an operation fails and X shows ERROR.
	OnError func(error)
	// OnShowStack receives every entry, top first, on shift+swap.
	OnShowStack func(entries []string)
	// OnOperation fires after each numeric operation, successful or not.
	OnOperation func(OperationEvent)
}

// Merge returns hooks that call h first and then other.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnDisplay:   chain1(h.OnDisplay, other.OnDisplay),
		OnNoArg:     chain1(h.OnNoArg, other.OnNoArg),
		OnError:     chain1(h.OnError, other.OnError),
		OnShowStack: chain1(h.OnShowStack, other.OnShowStack),
		OnOperation: chain1(h.OnOperation, other.OnOperation),
	}
}

func chain1[T any](a, b func(T)) func(T) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(v T) {
		a(v)
		b(v)
	}
}
