// Package rpn2tex converts expressions in Reverse Polish Notation to infix
// LaTeX math.
//
// The input is a whitespace-separated sequence of numbers and the operators
// + - * /, with each operator following its two operands: "5 3 + 2 *" is
// "(5 + 3) × 2". A minus sign written directly before a digit is part of a
// negative number, so "5 -3 -" is "5 - -3". The output is inline math with as
// few parentheses as the grouping allows:
//
//	$( 5 + 3 ) \times 2$
//
// Numbers are never converted to a numeric type. Their text passes through
// unchanged, so "3.140" renders as 3.140.
package rpn2tex
