package numfmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const (
	// SignificantDigits is the precision of the canonical formatter.
	SignificantDigits = 12
	// ScientificDigits is the number of mantissa digits after the separator in scientific form.
	ScientificDigits = 8
	// MaxEntryDigits bounds how many digits a user can type into one entry.
	MaxEntryDigits = 12
)

var (
	// ErrNotFinite is returned when formatting NaN or an infinity.
	ErrNotFinite = errors.New("value is not finite")
	// ErrSyntax is returned when a string is not a number in the format.
	ErrSyntax = errors.New("invalid number syntax")
)

// NumberFormat holds the separators used to render and parse values.
type NumberFormat struct {
	Decimal  rune `json:"decimal" yaml:"decimal"`
	Grouping rune `json:"grouping" yaml:"grouping"`
}

// Default uses ',' as decimal separator and '.' for grouping.
var Default = NumberFormat{Decimal: ',', Grouping: '.'}

// Validate checks that the separators are distinct and cannot be read as part of a number.
func (f NumberFormat) Validate() error {
	if f.Decimal == f.Grouping {
		return fmt.Errorf("decimal and grouping separators must differ, both are %q", f.Decimal)
	}
	for _, r := range []rune{f.Decimal, f.Grouping} {
		if unicode.IsDigit(r) || r == '-' || r == '+' || r == 'e' || r == 'E' || r == 0 {
			return fmt.Errorf("separator %q is not allowed", r)
		}
	}
	return nil
}

// Format renders v with up to 12 significant digits, grouping the integer part.
func (f NumberFormat) Format(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", ErrNotFinite
	}
	if v == 0 {
		v = 0 // drops the sign of negative zero
	}
	s := strconv.FormatFloat(v, 'g', SignificantDigits, 64)
	if strings.ContainsAny(s, "eE") {
		s = strconv.FormatFloat(v, 'e', ScientificDigits, 64)
		return strings.Replace(s, ".", string(f.Decimal), 1), nil
	}

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	out := sign + f.Group(intPart)
	if hasFrac {
		out += string(f.Decimal) + fracPart
	}
	return out, nil
}

// MustFormat is Format for values known to be finite.
func (f NumberFormat) MustFormat(v float64) string {
	s, err := f.Format(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Group inserts the grouping separator every three digits from the right.
func (f NumberFormat) Group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteRune(f.Grouping)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Regroup strips grouping separators from an integer entry and inserts them again.
// Entries holding a decimal separator are returned unchanged.
func (f NumberFormat) Regroup(entry string) string {
	if strings.ContainsRune(entry, f.Decimal) {
		return entry
	}
	digits := strings.ReplaceAll(entry, string(f.Grouping), "")
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	return sign + f.Group(digits)
}

// DigitCount reports how many digits an entry holds, ignoring separators and sign.
func DigitCount(entry string) int {
	n := 0
	for _, r := range entry {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// Parse reads a value written in the format. Grouping separators are ignored
// and scientific notation is accepted.
func (f NumberFormat) Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	var b strings.Builder
	b.Grow(len(s))
	digits := 0
	for _, r := range s {
		switch {
		case r == f.Grouping:
		case r == f.Decimal:
			b.WriteByte('.')
		case r >= '0' && r <= '9':
			digits++
			b.WriteRune(r)
		case r == '-' || r == '+' || r == 'e' || r == 'E':
			b.WriteRune(r)
		default:
			return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
	}
	if digits == 0 {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return v, nil
}

// Valid reports whether s parses as a number in the format.
func (f NumberFormat) Valid(s string) bool {
	_, err := f.Parse(s)
	return err == nil
}

// Canonical parses s and renders it back through Format.
func (f NumberFormat) Canonical(s string) (string, error) {
	v, err := f.Parse(s)
	if err != nil {
		return "", err
	}
	return f.Format(v)
}
