package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize bounds one line or one JSON message, in bytes.
	DefaultMaxInputSize = 1024
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "RPN_MAX_INPUT_SIZE"
)

// MaxTokenLength bounds a single token in runes. A full 12-digit entry with
// grouping, sign, decimal separator and exponent fits; key names are shorter.
const MaxTokenLength = 24

var (
	ErrInputTooLarge    = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8      = errors.New("input contains invalid UTF-8 sequences")
	ErrControlCharacter = errors.New("input contains a control character")
	ErrTokenTooLong     = errors.New("token exceeds maximum length")
)

// SanitizeInput checks a raw message before it is decoded: size limit,
// UTF-8 validity and no control characters besides tab, CR and LF.
// Terminal escape sequences (arrow keys, colors) are rejected, not stripped,
// so that "\x1b[A" never turns into the key name "[A".
func SanitizeInput(input string) (string, error) {
	limit := getMaxInputSize()
	if len(input) > limit {
		// Rejected rather than truncated: a cut line would apply half a calculation.
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}

	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	for i, r := range input {
		if unicode.IsControl(r) && !isSafeControl(r) {
			return "", fmt.Errorf("%w: %U at byte %d", ErrControlCharacter, r, i)
		}
	}
	return input, nil
}

// SanitizeLine applies SanitizeInput to a calculator line, then bounds every
// token and collapses whitespace, so "7  3\t+" becomes "7 3 +".
func SanitizeLine(line string) (string, error) {
	clean, err := SanitizeInput(line)
	if err != nil {
		return "", err
	}
	fields := strings.Fields(clean)
	for _, tok := range fields {
		if n := utf8.RuneCountInString(tok); n > MaxTokenLength {
			return "", fmt.Errorf("%w: %q... has %d characters, limit %d",
				ErrTokenTooLong, truncate(tok, 8), n, MaxTokenLength)
		}
	}
	return strings.Join(fields, " "), nil
}

func truncate(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}

func getMaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
