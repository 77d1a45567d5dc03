package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/rpn"
	"github.com/aretw0/rpn/internal/presentation/tui"
	"github.com/aretw0/rpn/pkg/runner"
	"github.com/muesli/termenv"
)

// RunSession executes a single calculator session until EOF, quit or a signal.
func RunSession(opts RunOptions) error {
	logger := createLogger(opts.Config, true)
	quiet := opts.JSON || opts.Headless

	handler, cleanup, err := createHandler(opts)
	if err != nil {
		return err
	}
	defer cleanup()

	runnerOpts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithHeadless(opts.Headless),
		runner.WithInputHandler(handler),
	}
	if !quiet {
		profile := termenv.NewOutput(opts.Out).EnvColorProfile()
		tui.PrintBanner(opts.Out, profile, rpn.Version)
		runnerOpts = append(runnerOpts, runner.WithHelpText(helpText(opts)))
		runnerOpts = append(runnerOpts, runner.WithGreeting(`Type "help" for the list of keys.`))
	}
	r := runner.NewRunner(runnerOpts...)

	calc, err := createCalculator(opts.Config, logger, r.Hooks())
	if err != nil {
		return err
	}
	logger.Info("Session Started", "angle", calc.AngleUnit(), "decimal", string(calc.Format().Decimal))

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	runErr := r.Run(sigCtx, calc)

	// If context was canceled (signal received), ensure runErr reflects it if it doesn't already
	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}

	logCompletion(opts.Out, runErr, quiet, sigCtx.Signal())

	return handleExecutionError(runErr)
}

// createHandler picks the IO strategy for the session. The cleanup function
// restores the terminal in keyboard mode.
func createHandler(opts RunOptions) (runner.IOHandler, func(), error) {
	noop := func() {}

	switch {
	case opts.JSON:
		return runner.NewJSONHandler(opts.In, opts.Out), noop, nil

	case opts.Keys:
		in, ok := opts.In.(*os.File)
		if !ok {
			return nil, noop, runner.ErrNotTerminal
		}
		kh := runner.NewKeyboardHandler(in, opts.Out)
		kh.Display = tui.NewDisplayRenderer(termenv.NewOutput(opts.Out).EnvColorProfile())
		if err := kh.Start(); err != nil {
			if errors.Is(err, runner.ErrNotTerminal) {
				return nil, noop, fmt.Errorf("--keys needs an interactive terminal: %w", err)
			}
			return nil, noop, err
		}
		return kh, func() { _ = kh.Close() }, nil
	}

	textOpts := []runner.TextHandlerOption{runner.WithReader(opts.In)}
	if !opts.Headless {
		profile := termenv.NewOutput(opts.Out).EnvColorProfile()
		textOpts = append(textOpts,
			runner.WithTextHandlerRenderer(tui.NewRenderer()),
			runner.WithDisplayRenderer(tui.NewDisplayRenderer(profile)),
		)
	}
	return runner.NewTextHandler(opts.Out, textOpts...), noop, nil
}

func helpText(opts RunOptions) string {
	if opts.Keys {
		return runner.KeyboardHelpText
	}
	return tui.HelpMarkdown
}
