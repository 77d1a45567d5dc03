package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/rpn/pkg/domain"
)

// ErrInterrupted is returned by Run when a signal or the parent context stops the loop.
var ErrInterrupted = errors.New("interrupted")

// DefaultHelpText lists the line-mode vocabulary.
const DefaultHelpText = `Type numbers and keys separated by spaces, e.g. "7 3 +".
Keys: enter swap drop shift back drg pi e + - * / % y^x mod +/- 1/x sqrt sin cos tan log ln.
Commands: stack, help, quit.`

// Runner handles the execution loop of the calculator using provided IO.
// It uses an IOHandler strategy to abstract the interaction mode (Text, JSON, raw keys).
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler on Stdin/Stdout is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Headless suppresses the greeting.
	Headless bool

	// Greeting is shown once before the first display unless Headless.
	Greeting string

	// HelpText answers the help command.
	HelpText string

	shown    []string
	hasShown bool
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		HelpText: DefaultHelpText,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Hooks must be registered on the calculator so that shift+swap reaches the handler.
func (r *Runner) Hooks() domain.Hooks {
	return domain.Hooks{
		OnShowStack: func(entries []string) {
			r.shown = entries
			r.hasShown = true
		},
	}
}

// Run executes the loop until EOF, a quit command or an interrupt.
func (r *Runner) Run(ctx context.Context, calc Calculator) error {
	handler := r.resolveHandler()

	signals := NewSignalManager(ctx)
	defer signals.Stop()

	if !r.Headless && r.Greeting != "" {
		if err := handler.SystemOutput(ctx, r.Greeting); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
	if err := handler.Output(ctx, calc.Display()); err != nil {
		return fmt.Errorf("output error: %w", err)
	}

	for {
		current := signals.Context()

		req, err := handler.Input(current)
		if err != nil {
			signals.CheckRace()
			if current.Err() != nil {
				r.Logger.Debug("runner input: context cancelled", "err", current.Err())
				return ErrInterrupted
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		switch req.Command {
		case CommandQuit:
			return nil
		case CommandHelp:
			if err := handler.SystemOutput(current, r.HelpText); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
			continue
		case CommandStack:
			if err := handler.ShowStack(current, calc.Entries()); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
			continue
		}

		if err := r.apply(current, handler, calc, req.Inputs); err != nil {
			return err
		}
		if err := handler.Output(current, calc.Display()); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
}

func (r *Runner) apply(ctx context.Context, handler IOHandler, calc Calculator, inputs []domain.Input) error {
	for _, in := range inputs {
		err := calc.Apply(in)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrUnknownKey), errors.Is(err, domain.ErrInvalidNumber):
			if err := handler.SystemOutput(ctx, fmt.Sprintf("Error: %v", err)); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
		default:
			// missing operands and arithmetic failures are already on the display
			r.Logger.Debug("input rejected", "key", string(in.Key), "literal", in.Literal, "err", err)
		}

		if r.hasShown {
			entries := r.shown
			r.shown, r.hasShown = nil, false
			if err := handler.ShowStack(ctx, entries); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
		}
	}
	return nil
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	// Memoize to prevent creating new pumps on subsequent Run() calls
	r.Handler = NewTextHandler(os.Stdout, WithStdin())
	return r.Handler
}
