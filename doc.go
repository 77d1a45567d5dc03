/*
Package rpn is a Reverse Polish Notation calculator engine designed to be embedded behind any frontend: a terminal, an HTTP API or an AI agent.

The engine owns an operand stack of formatted decimal strings and the entry-mode flags of a classic RPN calculator. Hosts deliver discrete key events and read display snapshots back; the engine never draws anything itself.

# Concept

Every event (a digit, the decimal separator, Enter, an operator) mutates the stack and produces a Display with the X, Y and Z registers already formatted in the configured locale. Missing operands and arithmetic failures are reported twice: as a returned error and as a transient notice on the display ("--" or "ERROR"). Neither is fatal; the calculator always accepts the next key.

# Key Features

  - Explicit Number Format: Decimal and grouping separators are a value passed to the calculator, never global state.
  - Shift Layer: Each key has an alternate meaning (x!, x², 10^x, root, clear, show stack) armed by one press of shift.
  - Angle Units: DEG, RAD and GRAD, with a shifted DRG that converts X into the next unit.
  - Hooks: Display snapshots, notices and operation events are pushed to the host through callbacks.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/rpn"
		"github.com/aretw0/rpn/pkg/domain"
	)

	func main() {
		calc, err := rpn.New()
		if err != nil {
			log.Fatal(err)
		}

		// 7 ENTER 3 +
		_ = calc.Push("7")
		_ = calc.Push("3")
		if err := calc.Operate(domain.OpAdd); err != nil {
			log.Fatal(err)
		}

		fmt.Println(calc.Display().X) // 10
	}
*/
package rpn
