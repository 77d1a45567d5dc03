package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/rpn/pkg/domain"
	"github.com/muesli/termenv"
)

const registerWidth = 22

// NewDisplayRenderer draws the register panel with colors from p.
// Notices stand out: ERROR in red, the missing operand marker in amber.
func NewDisplayRenderer(p termenv.Profile) func(domain.Display) string {
	label := func(s string) termenv.Style { return p.String(s).Foreground(p.Color("#a78bfa")) }

	value := func(v string) string {
		padded := fmt.Sprintf("%*s", registerWidth, v)
		switch v {
		case domain.ErrorText:
			return p.String(padded).Foreground(p.Color("#ef4444")).Bold().String()
		case domain.MissingText:
			return p.String(padded).Foreground(p.Color("#f59e0b")).String()
		}
		return p.String(padded).Bold().String()
	}

	return func(d domain.Display) string {
		var b strings.Builder
		b.WriteString(p.String(d.AngleLabel()).Faint().String())
		if d.Shift {
			b.WriteString("  ")
			b.WriteString(p.String(" SHIFT ").Foreground(p.Color("#000000")).Background(p.Color("#facc15")).String())
		}
		fmt.Fprintf(&b, "  [%d]\n", d.Size)
		fmt.Fprintf(&b, "%s %s\n", label("Z:"), value(d.Z))
		fmt.Fprintf(&b, "%s %s\n", label("Y:"), value(d.Y))
		fmt.Fprintf(&b, "%s %s", label("X:"), value(d.X))
		return b.String()
	}
}
