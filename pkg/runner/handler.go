package runner

import (
	"context"

	"github.com/aretw0/rpn/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (line), JSON (structured) and raw keyboard modes.
type IOHandler interface {
	// Output presents the current display.
	Output(ctx context.Context, d domain.Display) error

	// ShowStack presents every stack entry, top first.
	ShowStack(ctx context.Context, entries []string) error

	// Input blocks until the user submits the next request.
	Input(ctx context.Context) (Request, error)

	// SystemOutput presents a meta-message to the user (help, input errors).
	// This is distinct from the calculator display.
	SystemOutput(ctx context.Context, msg string) error
}

// Command is a runner directive typed instead of calculator input.
type Command string

const (
	CommandNone  Command = ""
	CommandHelp  Command = "help"
	CommandStack Command = "stack"
	CommandQuit  Command = "quit"
)

// Request is one unit of user input: a batch of calculator inputs or a command.
type Request struct {
	Inputs  []domain.Input
	Command Command
}

// Calculator is the part of rpn.Calculator the runner drives.
type Calculator interface {
	Apply(in domain.Input) error
	Display() domain.Display
	Entries() []string
}

// ContentRenderer is a function that transforms help text before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// DisplayRenderer turns a display snapshot into terminal text.
type DisplayRenderer func(domain.Display) string
