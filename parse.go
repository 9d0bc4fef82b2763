package rpn2tex

// Parse builds an expression tree from tokens in postfix order. Each number
// pushes a literal onto a stack. Each operator pops its right operand, then
// its left operand, and pushes the combined node. When the tokens run out,
// exactly one node must remain; it is the result.
//
// Parsing stops at the first TokenEOF. If there is none, the end of tokens
// serves as the end of the input. Errors are an *OperandError,
// *EmptyExpressionError, or *IncompleteExpressionError.
func Parse(tokens []Token) (Node, error) {
	var stack []Node
loop:
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			stack = append(stack, &Literal{Line: tok.Line, Col: tok.Col, Text: tok.Text})
		case TokenPlus, TokenMinus, TokenStar, TokenSlash:
			op := binop(tok.Kind)
			k := len(stack)
			if k < 2 {
				return nil, &OperandError{Line: tok.Line, Col: tok.Col, Op: op}
			}
			// The operand written just before the operator is on top, so it
			// is the right operand: "5 3 -" is 5 - 3.
			right := stack[k-1]
			left := stack[k-2]
			stack = append(stack[:k-2], &BinaryOp{
				Line:  tok.Line,
				Col:   tok.Col,
				Op:    op,
				Left:  left,
				Right: right,
			})
		case TokenEOF:
			break loop
		default:
			panic("rpn2tex: unknown token: " + tok.String())
		}
	}
	switch len(stack) {
	case 0:
		return nil, &EmptyExpressionError{Line: 1, Col: 1}
	case 1:
		return stack[0], nil
	default:
		// stack[0] is a complete expression by itself. The next entry is the
		// first one that should have been combined with it.
		line, col := stack[1].Pos()
		return nil, &IncompleteExpressionError{Line: line, Col: col, Remain: len(stack)}
	}
}

// ParseString is a shortcut to tokenize and parse a string.
func ParseString(src string) (Node, error) {
	toks, err := TokenizeString(src)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// binop gets the operator for a token kind. If the kind is not an operator,
// the result is OpNone.
func binop(kind TokenKind) Operator {
	switch kind {
	case TokenPlus:
		return OpAdd
	case TokenMinus:
		return OpSub
	case TokenStar:
		return OpMul
	case TokenSlash:
		return OpDiv
	default:
		return OpNone
	}
}
