package runtime

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/rpn/pkg/domain"
	"github.com/aretw0/rpn/pkg/numfmt"
)

// Digit types one decimal digit ('0'-'9') into X.
func (e *Engine) Digit(d byte) error {
	if d < '0' || d > '9' {
		return fmt.Errorf("%w: %q", domain.ErrUnknownKey, d)
	}
	e.typeChar(string(d), false)
	return nil
}

// Separator types the decimal separator into X.
func (e *Engine) Separator() {
	e.typeChar(string(e.format.Decimal), true)
}

func (e *Engine) typeChar(ch string, sep bool) {
	e.begin()
	defer e.publish()

	if e.pendingNewEntry {
		e.stack.Push("")
		e.pendingNewEntry = false
		e.justEntered = true
	}

	x, ok := e.x()
	if !ok || e.justEntered {
		// fresh entry replacing the empty, duplicated or placeholder X
		if e.stack.Size() > 0 {
			_, _ = e.stack.Pop()
		}
		e.justEntered = false
		if sep {
			e.stack.Push("0" + ch)
		} else {
			e.stack.Push(ch)
		}
		return
	}

	if numfmt.DigitCount(x) >= numfmt.MaxEntryDigits {
		return
	}
	hasDecimal := strings.ContainsRune(x, e.format.Decimal)

	var next string
	switch {
	case sep && hasDecimal:
		return
	case sep:
		next = x + ch
	case hasDecimal:
		next = x + ch
	case x == "0":
		next = ch
	case x == "-0":
		next = "-" + ch
	default:
		next = e.format.Regroup(x + ch)
	}
	_, _ = e.stack.Pop()
	e.stack.Push(next)
}

// Backspace removes the last character of X. Removing the last digit leaves
// the "0" placeholder, which the next digit overwrites.
func (e *Engine) Backspace() {
	e.begin()
	defer e.publish()

	x, ok := e.x()
	if !ok {
		return
	}
	_, _ = e.stack.Pop()

	_, size := utf8.DecodeLastRuneInString(x)
	rest := x[:len(x)-size]
	if last, size := utf8.DecodeLastRuneInString(rest); last == e.format.Decimal || last == e.format.Grouping {
		rest = rest[:len(rest)-size]
	}
	if rest == "" || rest == "-" {
		e.stack.Push(placeholder)
		e.justEntered = true
		e.pendingNewEntry = false
		return
	}

	canonical, err := e.format.Canonical(rest)
	if err != nil {
		e.logger.Debug("backspace left an unparseable entry", "entry", rest, "err", err)
		e.stack.Push(placeholder)
		e.justEntered = true
		e.pendingNewEntry = false
		return
	}
	e.stack.Push(canonical)
}

// Push enters a complete literal as a new value. Like a typed number it
// replaces X when X is the placeholder or the copy left by Enter.
func (e *Engine) Push(literal string) error {
	e.begin()
	defer e.publish()

	v, err := e.format.Parse(literal)
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidNumber, literal)
	}
	s, err := e.format.Format(v)
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidNumber, literal)
	}
	e.pushValue(s)
	return nil
}

func (e *Engine) pushValue(s string) {
	if e.justEntered && e.stack.Size() > 0 {
		_, _ = e.stack.Pop()
	}
	e.stack.Push(s)
	e.justEntered = false
	e.pendingNewEntry = true
}
