// Package stack provides the operand stack of the calculator.
package stack

import "errors"

var (
	// ErrEmptyStack is returned by Pop on an empty stack.
	ErrEmptyStack = errors.New("empty stack")
	// ErrInsufficientDepth is returned by Swap with fewer than two entries.
	ErrInsufficientDepth = errors.New("insufficient stack depth")
)

// Positions of the named registers, counted from the top.
const (
	X = 0
	Y = 1
	Z = 2
)

// Stack is an ordered sequence of string-encoded numbers.
// The zero value is an empty stack ready to use.
// A Stack is not safe for concurrent use.
type Stack struct {
	items []string
}

// New returns a stack holding values, the last one on top.
func New(values ...string) *Stack {
	return &Stack{items: append([]string(nil), values...)}
}

// Push puts value on top.
func (s *Stack) Push(value string) {
	s.items = append(s.items, value)
}

// Pop removes and returns the top entry.
func (s *Stack) Pop() (string, error) {
	if len(s.items) == 0 {
		return "", ErrEmptyStack
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, nil
}

// Peek returns the entry depth positions below the top (X=0, Y=1, Z=2).
func (s *Stack) Peek(depth int) (string, bool) {
	if depth < 0 || depth >= len(s.items) {
		return "", false
	}
	return s.items[len(s.items)-1-depth], true
}

// Swap exchanges X and Y.
func (s *Stack) Swap() error {
	n := len(s.items)
	if n < 2 {
		return ErrInsufficientDepth
	}
	s.items[n-1], s.items[n-2] = s.items[n-2], s.items[n-1]
	return nil
}

// Clear removes every entry.
func (s *Stack) Clear() {
	s.items = s.items[:0]
}

// Size returns the number of entries.
func (s *Stack) Size() int {
	return len(s.items)
}

// IsEmpty reports whether the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.items) == 0
}

// Entries returns a copy of all entries, top first.
func (s *Stack) Entries() []string {
	out := make([]string, len(s.items))
	for i, v := range s.items {
		out[len(s.items)-1-i] = v
	}
	return out
}
