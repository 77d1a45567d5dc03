package runtime

import (
	"math"

	"github.com/aretw0/rpn/pkg/domain"
	"github.com/aretw0/rpn/pkg/stack"
)

// maxFactorial is the largest n whose factorial is a finite float64.
const maxFactorial = 170

type unaryFunc func(x float64, u domain.AngleUnit) (float64, error)

type binaryFunc func(y, x float64) (float64, error)

// unaryOp holds the normal and shifted meaning of a one-argument key.
// A nil shifted function means the key has no alternate meaning.
type unaryOp struct {
	normal, shifted unaryFunc
}

type binaryOp struct {
	normal, shifted binaryFunc
}

var unaryOps = map[domain.Op]unaryOp{
	domain.OpNegate: {normal: plain(func(x float64) float64 { return -x })},
	domain.OpInverse: {
		normal: func(x float64, _ domain.AngleUnit) (float64, error) {
			if x == 0 {
				return 0, reason("division by zero")
			}
			return 1 / x, nil
		},
		shifted: func(x float64, _ domain.AngleUnit) (float64, error) { return factorial(x) },
	},
	domain.OpSqrt: {
		normal:  plain(func(x float64) float64 { return math.Pow(x, 0.5) }),
		shifted: plain(func(x float64) float64 { return x * x }),
	},
	domain.OpSin: {normal: sinIn, shifted: inverseTrig(math.Asin)},
	domain.OpCos: {normal: cosIn, shifted: inverseTrig(math.Acos)},
	domain.OpTan: {normal: tanIn, shifted: inverseTrig(math.Atan)},
	domain.OpLog: {
		normal:  plain(math.Log10),
		shifted: plain(func(x float64) float64 { return math.Pow(10, x) }),
	},
	domain.OpLn: {
		normal:  plain(math.Log),
		shifted: plain(math.Exp),
	},
}

var binaryOps = map[domain.Op]binaryOp{
	domain.OpAdd: {normal: func(y, x float64) (float64, error) { return y + x, nil }},
	domain.OpSub: {normal: func(y, x float64) (float64, error) { return y - x, nil }},
	domain.OpMul: {normal: func(y, x float64) (float64, error) { return y * x, nil }},
	domain.OpDiv: {normal: func(y, x float64) (float64, error) {
		if x == 0 {
			return 0, reason("division by zero")
		}
		return y / x, nil
	}},
	domain.OpPercent: {normal: func(y, x float64) (float64, error) { return y * (x / 100), nil }},
	domain.OpPower: {
		normal: func(y, x float64) (float64, error) { return math.Pow(y, x), nil },
		shifted: func(y, x float64) (float64, error) {
			if x == 0 {
				return 0, reason("zeroth root")
			}
			return math.Pow(y, 1/x), nil
		},
	},
	domain.OpMod: {normal: func(y, x float64) (float64, error) {
		if x == 0 {
			return 0, reason("modulo by zero")
		}
		// floored: the result takes the sign of the divisor
		r := math.Mod(y, x)
		if r != 0 && (r < 0) != (x < 0) {
			r += x
		}
		return r, nil
	}},
}

// reasonError carries a failure description until it is tagged with its Op.
type reasonError string

func (r reasonError) Error() string { return string(r) }

func reason(s string) error { return reasonError(s) }

func plain(f func(float64) float64) unaryFunc {
	return func(x float64, _ domain.AngleUnit) (float64, error) {
		return f(x), nil
	}
}

func factorial(x float64) (float64, error) {
	if x < 0 || x != math.Trunc(x) {
		return 0, reason("factorial needs a non-negative integer")
	}
	if x > maxFactorial {
		return 0, reason("factorial overflow")
	}
	result := 1.0
	for i := 2.0; i <= x; i++ {
		result *= i
	}
	return result, nil
}

// Operate dispatches a one- or two-argument operation.
func (e *Engine) Operate(op domain.Op) error {
	switch op.Arity() {
	case 1:
		return e.unary(op)
	case 2:
		return e.binary(op)
	}
	e.begin()
	defer e.publish()
	shifted := e.consumeShift()
	e.pendingNewEntry = true
	err := &domain.ArithmeticError{Op: op, Reason: domain.ErrUnknownOp.Error()}
	e.emit(op, shifted, "", err)
	return e.fail(err, 0)
}

func (e *Engine) unary(op domain.Op) error {
	e.begin()
	defer e.publish()
	shifted := e.consumeShift()

	raw, ok := e.x()
	if !ok {
		return e.noArg(domain.OperandX)
	}
	_, _ = e.stack.Pop()
	e.pendingNewEntry = true
	e.justEntered = false

	result, err := e.evalUnary(op, shifted, raw)
	e.emit(op, shifted, result, err)
	if err != nil {
		return e.fail(err, 1)
	}
	e.stack.Push(result)
	return nil
}

func (e *Engine) evalUnary(op domain.Op, shifted bool, raw string) (string, error) {
	impl, ok := unaryOps[op]
	if !ok {
		return "", &domain.ArithmeticError{Op: op, Shifted: shifted, Reason: domain.ErrUnknownOp.Error()}
	}
	fn := impl.normal
	if shifted && impl.shifted != nil {
		fn = impl.shifted
	}
	x, err := e.format.Parse(raw)
	if err != nil {
		return "", &domain.ArithmeticError{Op: op, Shifted: shifted, Reason: err.Error()}
	}
	v, err := fn(x, e.angle)
	if err != nil {
		return "", &domain.ArithmeticError{Op: op, Shifted: shifted, Reason: err.Error()}
	}
	return e.render(op, shifted, v)
}

func (e *Engine) binary(op domain.Op) error {
	e.begin()
	defer e.publish()
	shifted := e.consumeShift()
	defer func() {
		e.pendingNewEntry = true
		e.justEntered = false
	}()

	rawX, ok := e.x()
	if !ok {
		return e.noArg(domain.OperandX)
	}
	if y, ok := e.stack.Peek(stack.Y); !ok || y == "" {
		return e.noArg(domain.OperandY)
	}
	_, _ = e.stack.Pop()
	rawY, _ := e.stack.Pop()

	result, err := e.evalBinary(op, shifted, rawY, rawX)
	e.emit(op, shifted, result, err)
	if err != nil {
		return e.fail(err, 2)
	}
	e.stack.Push(result)
	return nil
}

func (e *Engine) evalBinary(op domain.Op, shifted bool, rawY, rawX string) (string, error) {
	impl, ok := binaryOps[op]
	if !ok {
		return "", &domain.ArithmeticError{Op: op, Shifted: shifted, Reason: domain.ErrUnknownOp.Error()}
	}
	fn := impl.normal
	if shifted && impl.shifted != nil {
		fn = impl.shifted
	}
	y, err := e.format.Parse(rawY)
	if err != nil {
		return "", &domain.ArithmeticError{Op: op, Shifted: shifted, Reason: err.Error()}
	}
	x, err := e.format.Parse(rawX)
	if err != nil {
		return "", &domain.ArithmeticError{Op: op, Shifted: shifted, Reason: err.Error()}
	}
	v, err := fn(y, x)
	if err != nil {
		return "", &domain.ArithmeticError{Op: op, Shifted: shifted, Reason: err.Error()}
	}
	return e.render(op, shifted, v)
}

// render formats a result; NaN and infinities are domain errors.
func (e *Engine) render(op domain.Op, shifted bool, v float64) (string, error) {
	s, err := e.format.Format(v)
	if err != nil {
		return "", &domain.ArithmeticError{Op: op, Shifted: shifted, Reason: "result out of domain"}
	}
	return s, nil
}
