package rpn2tex

import (
	"io"
	"strings"
)

// Convert reads an RPN expression from src and renders it as LaTeX math. If
// the input is invalid, the error implements InputError: it is a *LexError
// from scanning, or an *OperandError, *EmptyExpressionError, or
// *IncompleteExpressionError from parsing. Read errors from src are returned
// unchanged.
func Convert(src io.RuneScanner, opts ...RenderOption) (string, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return "", err
	}
	n, err := Parse(toks)
	if err != nil {
		return "", err
	}
	return Render(n, opts...), nil
}

// ConvertString is a shortcut to convert an expression in a string.
func ConvertString(src string, opts ...RenderOption) (string, error) {
	return Convert(strings.NewReader(src), opts...)
}
