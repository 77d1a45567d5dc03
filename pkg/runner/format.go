package runner

import (
	"fmt"
	"strings"

	"github.com/aretw0/rpn/pkg/domain"
)

// displayWidth is the width of the register column.
const displayWidth = 22

// FormatDisplay renders the snapshot as plain text: a status line and the
// Z, Y and X registers, right aligned.
func FormatDisplay(d domain.Display) string {
	var b strings.Builder
	status := d.AngleLabel()
	if d.Shift {
		status += "  SHIFT"
	}
	fmt.Fprintf(&b, "%s\n", status)
	fmt.Fprintf(&b, "Z: %*s\n", displayWidth, d.Z)
	fmt.Fprintf(&b, "Y: %*s\n", displayWidth, d.Y)
	fmt.Fprintf(&b, "X: %*s", displayWidth, d.X)
	return b.String()
}

// FormatStack numbers entries from the top (1 is X). An empty stack reads "Empty".
func FormatStack(entries []string) string {
	if len(entries) == 0 {
		return "Empty"
	}
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%3d: %s", i+1, e)
	}
	return b.String()
}
