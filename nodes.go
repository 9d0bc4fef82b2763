package rpn2tex

import (
	"strconv"
	"strings"
)

// Node is a node in the tree of a parsed expression. Its dynamic type is
// either *Literal or *BinaryOp.
type Node interface {
	// Pos returns the position of the token that produced the node.
	Pos() (line, col int)
	// String formats the tree with each term bracketed, alternating round and
	// square brackets by depth.
	String() string

	fmt(b *strings.Builder, square bool)
}

// Literal is a number.
type Literal struct {
	Line, Col int
	// Text is the number as written in the source.
	Text string
}

// BinaryOp is an operator applied to two subexpressions.
type BinaryOp struct {
	// Line and Col are the position of the operator.
	Line, Col int
	Op        Operator
	// Left and Right are never nil in trees built by Parse. Each subtree
	// belongs to exactly one BinaryOp.
	Left, Right Node
}

func (n *Literal) Pos() (line, col int) {
	return n.Line, n.Col
}

func (n *BinaryOp) Pos() (line, col int) {
	return n.Line, n.Col
}

func (n *Literal) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *BinaryOp) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func brackets(square bool) (byte, byte) {
	if square {
		return '[', ']'
	}
	return '(', ')'
}

func (n *Literal) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteString(n.Text)
	b.WriteByte(r)
}

func (n *BinaryOp) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	defer b.WriteByte(r)
	n.Left.fmt(b, !square)
	b.WriteByte(' ')
	b.WriteString(n.Op.String())
	b.WriteByte(' ')
	n.Right.fmt(b, !square)
}

// Operator is a binary arithmetic operator.
type Operator int8

const (
	OpNone Operator = iota

	OpAdd // +
	OpSub // -
	OpMul // *
	OpDiv // /
)

// String returns the symbol for the operator in RPN source.
func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
}

// TeX returns the LaTeX math symbol for the operator. The result for an
// invalid operator is the empty string.
func (op Operator) TeX() string {
	return optab(op).tex
}
