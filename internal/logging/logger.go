package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/rpn/pkg/domain"
)

// New creates a configured application logger.
// It writes to Stderr (to separate from the calculator display on Stdout).
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level) *slog.Logger {
	return NewWriter(os.Stderr, level)
}

// NewWriter is New with an explicit destination.
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel reads "debug", "info", "warn" or "error".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// Hooks traces calculator activity at debug level.
func Hooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnOperation: func(ev domain.OperationEvent) {
			if ev.Err != nil {
				logger.Debug("operation failed", "op", ev.Name, "shifted", ev.Shifted, "error", ev.Err)
				return
			}
			logger.Debug("operation", "op", ev.Name, "shifted", ev.Shifted, "result", ev.Result)
		},
		OnNoArg: func(which domain.Operand) {
			logger.Debug("missing operand", "operand", string(which))
		},
	}
}
