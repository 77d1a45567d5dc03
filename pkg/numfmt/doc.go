/*
Package numfmt renders and parses calculator values in a locale number format.

A NumberFormat is an explicit value carrying the decimal and grouping
separators; it is threaded into the engine instead of relying on process-wide
locale settings. Values are rendered with up to 12 significant digits and
switch to scientific notation with 8 fractional mantissa digits when the
magnitude reaches 10^12 or the value is smaller than 10^-4.
*/
package numfmt
