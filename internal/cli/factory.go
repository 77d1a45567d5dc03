package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/rpn"
	"github.com/aretw0/rpn/internal/config"
	"github.com/aretw0/rpn/internal/logging"
	"github.com/aretw0/rpn/pkg/domain"
)

// createCalculator builds a calculator with standard CLI conventions:
// separators and angle unit from cfg, debug hooks when cfg.Debug is set.
func createCalculator(cfg config.Config, logger *slog.Logger, hooks ...domain.Hooks) (*rpn.Calculator, error) {
	format, err := cfg.NumberFormat()
	if err != nil {
		return nil, err
	}
	unit, err := cfg.AngleUnit()
	if err != nil {
		return nil, err
	}

	opts := []rpn.Option{
		rpn.WithLogger(logger),
		rpn.WithNumberFormat(format),
		rpn.WithAngleUnit(unit),
	}
	if cfg.Debug {
		opts = append(opts, rpn.WithHooks(logging.Hooks(logger)))
	}
	for _, h := range hooks {
		opts = append(opts, rpn.WithHooks(h))
	}

	calc, err := rpn.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing calculator: %w", err)
	}
	return calc, nil
}

// LoadConfig reads the config file and applies flag overrides on top, so the
// precedence is defaults < file < environment < flags.
func LoadConfig(path string, overrides map[string]any) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if len(overrides) == 0 {
		return cfg, nil
	}
	return cfg.Merge(overrides)
}
