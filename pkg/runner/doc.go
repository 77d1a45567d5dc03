/*
Package runner implements the interactive loop and I/O orchestration around an rpn Calculator.

It acts as the bridge between the calculator engine and the outside world.
The runner reads requests through pluggable handlers, applies them to the
calculator and writes the resulting display back.

# Key Components

  - Runner: The main loop. It stops on EOF, "quit" or an interrupt signal.
  - IOHandler: Decouples how the calculator receives inputs (line, JSON, raw keys).
  - TextHandler: Line-oriented terminal usage ("7 3 +", "enter", "sin").
  - JSONHandler: NDJSON for scripts and other programs.
  - KeyboardHandler: Single keystrokes in raw terminal mode.

# Usage

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdout, runner.WithStdin())),
	)

	calc, err := rpn.New(rpn.WithHooks(r.Hooks()))
	if err != nil {
		log.Fatal(err)
	}

	if err := r.Run(ctx, calc); err != nil {
		log.Fatal(err)
	}
*/
package runner
