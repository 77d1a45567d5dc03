package domain

// Op is a numeric operation applied to the top of the stack.
type Op int

// One-argument operations consume X.
const (
	OpNegate Op = iota + 1
	OpInverse
	OpSqrt
	OpSin
	OpCos
	OpTan
	OpLog
	OpLn
)

// Two-argument operations consume X and Y and compute Y op X.
const (
	OpAdd Op = iota + 100
	OpSub
	OpMul
	OpDiv
	OpPercent
	OpPower
	OpMod
)

var opNames = map[Op]string{
	OpNegate:  "+/-",
	OpInverse: "1/x",
	OpSqrt:    "sqrt",
	OpSin:     "sin",
	OpCos:     "cos",
	OpTan:     "tan",
	OpLog:     "log",
	OpLn:      "ln",
	OpAdd:     "+",
	OpSub:     "-",
	OpMul:     "*",
	OpDiv:     "/",
	OpPercent: "%",
	OpPower:   "y^x",
	OpMod:     "mod",
}

// Arity reports how many operands the operation consumes, or 0 for unknown values.
func (o Op) Arity() int {
	switch {
	case o >= OpNegate && o <= OpLn:
		return 1
	case o >= OpAdd && o <= OpMod:
		return 2
	}
	return 0
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return "unknown"
}

// Ops lists every known operation, one-argument operations first.
func Ops() []Op {
	return []Op{
		OpNegate, OpInverse, OpSqrt, OpSin, OpCos, OpTan, OpLog, OpLn,
		OpAdd, OpSub, OpMul, OpDiv, OpPercent, OpPower, OpMod,
	}
}
