package rpn2tex

import "strconv"

// OperandError is an error indicating an operator with fewer than two
// operands before it. It implements InputError.
type OperandError struct {
	// Line and Col are the position of the operator.
	Line, Col int
	// Op is the operator.
	Op Operator
}

func (err *OperandError) Error() string {
	return errpos(err.Line, err.Col, err.Msg())
}

func (err *OperandError) Msg() string {
	return "Operator '" + err.Op.String() + "' requires two operands"
}

func (err *OperandError) Pos() (line, col int) {
	return err.Line, err.Col
}

// EmptyExpressionError is an error indicating an input with no tokens besides
// whitespace. It implements InputError. Its position is always 1:1.
type EmptyExpressionError struct {
	Line, Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Line, err.Col, err.Msg())
}

func (err *EmptyExpressionError) Msg() string {
	return "empty expression"
}

func (err *EmptyExpressionError) Pos() (line, col int) {
	return err.Line, err.Col
}

// IncompleteExpressionError is an error indicating more than one complete
// subexpression left at the end of the input, i.e. missing operators. It
// implements InputError.
type IncompleteExpressionError struct {
	// Line and Col are the position of the first operand that no operator
	// consumed.
	Line, Col int
	// Remain is the number of subexpressions left over.
	Remain int
}

func (err *IncompleteExpressionError) Error() string {
	return errpos(err.Line, err.Col, err.Msg())
}

func (err *IncompleteExpressionError) Msg() string {
	return "incomplete expression: " + strconv.Itoa(err.Remain) + " operands remain, missing operators"
}

func (err *IncompleteExpressionError) Pos() (line, col int) {
	return err.Line, err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(line, col int, msg string) string {
	return strconv.Itoa(line) + ":" + strconv.Itoa(col) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based line and column of the rune or token that
	// caused the error. Columns count runes.
	Pos() (line, col int)
	// Msg returns the error message without position information.
	Msg() string
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*IncompleteExpressionError)(nil)
)
