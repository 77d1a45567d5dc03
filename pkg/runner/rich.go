package runner

import (
	"github.com/aretw0/rpn/pkg/domain"
)

// RichResponse combines the display and the stack for rich clients (Web, MCP, etc).
// This encapsulates the common pattern of: Apply -> Display -> Return.
type RichResponse struct {
	Display domain.Display `json:"display"`
	Stack   []string       `json:"stack"`
	// Errors holds one message per rejected input, in order.
	Errors []string `json:"errors,omitempty"`
}

// ApplyAndRender applies every input and returns the resulting state.
// Rejected inputs do not stop the batch, as on a physical keypad.
func ApplyAndRender(calc Calculator, inputs []domain.Input) *RichResponse {
	resp := &RichResponse{}
	for _, in := range inputs {
		if err := calc.Apply(in); err != nil {
			resp.Errors = append(resp.Errors, err.Error())
		}
	}
	resp.Display = calc.Display()
	resp.Stack = calc.Entries()
	return resp
}
