package rpn2tex

import "strings"

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// noncomm indicates an operator that is bracketed when it is the right
	// operand of an operator with the same precedence, e.g. a - (b - c).
	noncomm bool
	// tex is the LaTeX math symbol.
	tex string
}

// optab gets the rendering details of an operator. If op is not a valid
// operator, then the result has a prec of 0.
func optab(op Operator) operator {
	switch op {
	case OpAdd:
		return operator{1, false, "+"}
	case OpSub:
		return operator{1, true, "-"}
	case OpMul:
		return operator{2, false, `\times`}
	case OpDiv:
		return operator{2, true, `\div`}
	default:
		return operator{}
	}
}

// brackets reports whether an operand of p must be bracketed. Literals never
// are. An operation is when it binds less tightly than p, or when it binds
// equally, is non-commutative, and is the right operand.
func (p operator) brackets(n Node, right bool) bool {
	b, ok := n.(*BinaryOp)
	if !ok {
		return false
	}
	c := optab(b.Op)
	if c.prec != p.prec {
		return c.prec < p.prec
	}
	return right && c.noncomm
}

// RenderOption is an option for rendering.
type RenderOption interface {
	renderOption(rendercfg) rendercfg
}

// rendercfg holds the settings for rendering.
type rendercfg struct {
	// open and close surround the rendered expression.
	open, close string
}

type delimsopt struct {
	open, close string
}

// Delims sets the strings written before and after the expression. The
// default is "$" on both sides. Delims(`\(`, `\)`) produces LaTeX-style inline
// math, and Delims(`\[`, `\]`) produces display math.
func Delims(open, close string) RenderOption {
	return delimsopt{open, close}
}

func (o delimsopt) renderOption(c rendercfg) rendercfg {
	c.open = o.open
	c.close = o.close
	return c
}

// Render formats an expression tree as infix LaTeX math, e.g.
// $( 5 + 3 ) \times 2$. Every operator is surrounded by single spaces, as is
// the content of every pair of parentheses. Multiplication is \times and
// division is \div. Literal text is copied unchanged.
//
// Render panics if the tree contains a nil node or an invalid operator, which
// trees built by Parse never do.
func Render(n Node, opts ...RenderOption) string {
	c := rendercfg{open: "$", close: "$"}
	for _, opt := range opts {
		c = opt.renderOption(c)
	}
	var b strings.Builder
	b.WriteString(c.open)
	render(&b, n)
	b.WriteString(c.close)
	return b.String()
}

func render(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Literal:
		b.WriteString(n.Text)
	case *BinaryOp:
		p := optab(n.Op)
		if p.prec == 0 {
			panic("rpn2tex: invalid operator " + n.Op.String() + " after writing " + b.String())
		}
		operand(b, n.Left, p, false)
		b.WriteByte(' ')
		b.WriteString(p.tex)
		b.WriteByte(' ')
		operand(b, n.Right, p, true)
	default:
		panic("rpn2tex: nil node after writing " + b.String())
	}
}

// operand renders an operand of p, bracketing it if needed.
func operand(b *strings.Builder, n Node, p operator, right bool) {
	if !p.brackets(n, right) {
		render(b, n)
		return
	}
	b.WriteString("( ")
	render(b, n)
	b.WriteString(" )")
}
