/*
Package domain contains the core vocabulary of the rpn calculator.

It defines the input events a host can deliver, the closed set of numeric
operations, angle units, display snapshots and the error taxonomy. This package
is kept pure and free of I/O, following Hexagonal Architecture principles.

# Key Entities

  - Key: an input event (digit, separator, Enter, Shift, operators, ...).
  - Op: a one- or two-argument numeric operation.
  - AngleUnit: DEG, RAD or GRAD, governing trigonometric conversions.
  - Display: the snapshot a presentation layer renders after every event.
*/
package domain
