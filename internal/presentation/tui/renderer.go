package tui

import (
	"github.com/charmbracelet/glamour"
)

// HelpMarkdown is the line-mode reference rendered by the help command.
const HelpMarkdown = `# rpn

Type numbers and keys separated by spaces. Numbers use the configured
separators, e.g. ` + "`6,25 3,5 +`" + `.

| Key | Normal | With shift |
|---|---|---|
| ` + "`enter`" + ` | duplicate X | |
| ` + "`swap`" + ` | exchange X and Y | show the stack |
| ` + "`drop`" + ` | remove X | clear the stack |
| ` + "`back`" + ` | delete last character | |
| ` + "`drg`" + ` | next angle unit | next unit, converting X |
| ` + "`+/-` `chs`" + ` | change sign | |
| ` + "`1/x` `inv`" + ` | reciprocal | x! |
| ` + "`sqrt`" + ` | square root | x² |
| ` + "`sin` `cos` `tan`" + ` | trigonometry | inverse |
| ` + "`log` `ln`" + ` | logarithms | 10^x, e^x |
| ` + "`+ - * / %`" + ` | arithmetic | |
| ` + "`y^x`" + ` | power | x-th root of y |
| ` + "`mod`" + ` | floored remainder | |
| ` + "`pi` `e`" + ` | constants | |

Commands: ` + "`stack`, `help`, `quit`" + `.
`

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
