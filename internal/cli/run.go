package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/rpn/internal/config"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	Config   config.Config
	Headless bool
	JSON     bool
	Keys     bool

	// In and Out default to os.Stdin and os.Stdout.
	In  io.Reader
	Out io.Writer
}

// Execute handles the 'run' command logic.
func Execute(opts RunOptions) error {
	if opts.JSON && opts.Keys {
		return fmt.Errorf("--json and --keys cannot be used together")
	}
	if opts.Keys && opts.Headless {
		return fmt.Errorf("--keys and --headless cannot be used together")
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return RunSession(opts)
}
