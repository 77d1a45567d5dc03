package domain

import (
	"fmt"
	"strings"
)

// Key identifies a single input event delivered by the host.
// Digits use their own character ("0".."9"); operators use Op.String().
type Key string

const (
	KeySeparator Key = "sep"
	KeyEnter     Key = "enter"
	KeyShift     Key = "shift"
	KeyBackspace Key = "back"
	KeyDrop      Key = "drop"
	KeySwap      Key = "swap"
	KeyDRG       Key = "drg"
	KeyPi        Key = "pi"
	KeyE         Key = "e"
)

// DigitKey returns the key for the last decimal digit of d; negative values
// wrap like modular arithmetic (-1 is "9").
func DigitKey(d int) Key {
	return Key(rune('0' + ((d%10)+10)%10))
}

// OpKey returns the key that triggers op.
func OpKey(op Op) Key {
	return Key(op.String())
}

// Digit reports the digit character carried by k.
func (k Key) Digit() (byte, bool) {
	if len(k) == 1 && k[0] >= '0' && k[0] <= '9' {
		return k[0], true
	}
	return 0, false
}

// Op reports the operation triggered by k.
func (k Key) Op() (Op, bool) {
	for op, name := range opNames {
		if string(k) == name {
			return op, true
		}
	}
	return 0, false
}

var keyAliases = map[string]Key{
	",":     KeySeparator,
	".":     KeySeparator,
	"sep":   KeySeparator,
	"enter": KeyEnter,
	"ent":   KeyEnter,
	"dup":   KeyEnter,
	"shift": KeyShift,
	"f":     KeyShift,
	"back":  KeyBackspace,
	"bs":    KeyBackspace,
	"<-":    KeyBackspace,
	"drop":  KeyDrop,
	"swap":  KeySwap,
	"x<>y":  KeySwap,
	"drg":   KeyDRG,
	"pi":    KeyPi,
	"π":     KeyPi,
	"e":     KeyE,
	"chs":   OpKey(OpNegate),
	"neg":   OpKey(OpNegate),
	"inv":   OpKey(OpInverse),
	"pow":   OpKey(OpPower),
	"^":     OpKey(OpPower),
	"x":     OpKey(OpMul),
}

// ParseKey resolves a token to a Key. Matching is case-insensitive.
func ParseKey(token string) (Key, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	if k := Key(t); len(t) == 1 {
		if _, ok := k.Digit(); ok {
			return k, nil
		}
	}
	if k, ok := keyAliases[t]; ok {
		return k, nil
	}
	if _, ok := Key(t).Op(); ok {
		return Key(t), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, token)
}

// Input is one event for the calculator: either a Key press or a
// complete numeric Literal typed in one go.
type Input struct {
	Key     Key    `json:"key,omitempty"`
	Literal string `json:"literal,omitempty"`
}
