package rpn2tex

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical unit of an RPN expression.
type Token struct {
	// Text is the token exactly as it appears in the source. Numbers keep
	// their original spelling, including any sign and trailing zeros.
	Text string
	Kind TokenKind
	// Line and Col are the 1-based position of the token's first rune. Col
	// counts runes, not bytes.
	Line, Col int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Line) + ":" + strconv.Itoa(t.Col)
}

// TokenKind is the class of a token.
type TokenKind int

const (
	// TokenNone is the zero TokenKind. The lexer never produces it.
	TokenNone TokenKind = iota
	// TokenEOF indicates the end of the input.
	TokenEOF
	// TokenNum is a number, e.g. 5, -5, or 3.14.
	TokenNum
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token

// mark is a position in the source.
type mark struct {
	line, col int
}

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// back holds unread runes, the most recently unread last.
	back []rune
	// at is the position of the next rune to be read.
	at mark
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src: src,
		at:  mark{line: 1, col: 1},
	}
}

// readRune reads a rune and advances the lexer's position. The second result
// is the position of the returned rune.
func (l *lexer) readRune() (rune, mark, error) {
	at := l.at
	var r rune
	if k := len(l.back) - 1; k >= 0 {
		r = l.back[k]
		l.back = l.back[:k]
	} else {
		var err error
		r, _, err = l.src.ReadRune()
		if err != nil {
			return 0, at, err
		}
	}
	if r == '\n' {
		l.at.line++
		l.at.col = 1
	} else {
		l.at.col++
	}
	return r, at, nil
}

// unreadRune pushes back a rune read at the given position. Runes must be
// unread in the reverse of the order in which they were read.
func (l *lexer) unreadRune(r rune, at mark) {
	l.back = append(l.back, r)
	l.at = at
}

// next scans the next token from the input. Once the input is exhausted, every
// call returns an EOF token positioned just past the last rune.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, at, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Token{Kind: TokenEOF, Line: at.line, Col: at.col}, nil
			}
			return Token{}, err
		}
		tok := Token{Line: at.line, Col: at.col}
		switch {
		case isSpace(r):
			continue
		case unicode.IsDigit(r):
			l.unreadRune(r, at)
			if err := l.scanNum(); err != nil {
				return Token{}, err
			}
			tok.Text = l.buf.String()
			tok.Kind = TokenNum
			return tok, nil
		case r == '-':
			// A minus sign directly followed by a digit is a negative
			// number. Anything else, including whitespace, makes it an
			// operator.
			s, sat, err := l.readRune()
			if err != nil && !errors.Is(err, io.EOF) {
				return Token{}, err
			}
			if err == nil {
				l.unreadRune(s, sat)
				if unicode.IsDigit(s) {
					l.buf.WriteRune('-')
					if err := l.scanNum(); err != nil {
						return Token{}, err
					}
					tok.Text = l.buf.String()
					tok.Kind = TokenNum
					return tok, nil
				}
			}
			tok.Text = "-"
			tok.Kind = TokenMinus
			return tok, nil
		case r == '+':
			tok.Text = "+"
			tok.Kind = TokenPlus
			return tok, nil
		case r == '*':
			tok.Text = "*"
			tok.Kind = TokenStar
			return tok, nil
		case r == '/':
			tok.Text = "/"
			tok.Kind = TokenSlash
			return tok, nil
		default:
			return Token{}, &LexError{Line: at.line, Col: at.col, Char: r}
		}
	}
}

// scanNum scans digits into the buffer, optionally followed by a fractional
// part. A '.' belongs to the number only when a digit immediately follows it;
// otherwise it is left for the next token, which rejects it.
func (l *lexer) scanNum() error {
	if err := l.scanDigits(); err != nil {
		return err
	}
	r, at, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if r != '.' {
		l.unreadRune(r, at)
		return nil
	}
	s, sat, err := l.readRune()
	if err != nil {
		l.unreadRune(r, at)
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	l.unreadRune(s, sat)
	if !unicode.IsDigit(s) {
		l.unreadRune(r, at)
		return nil
	}
	l.buf.WriteRune(r)
	return l.scanDigits()
}

func (l *lexer) scanDigits() error {
	for {
		r, at, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !unicode.IsDigit(r) {
			l.unreadRune(r, at)
			return nil
		}
		l.buf.WriteRune(r)
	}
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// Tokenize scans all tokens from src. On success, the last token is the only
// one of kind TokenEOF. The first invalid rune stops scanning with a
// *LexError; errors from src other than io.EOF are returned as they are.
func Tokenize(src io.RuneScanner) ([]Token, error) {
	scan := lex(src)
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks, nil
		}
	}
}

// TokenizeString is a shortcut to tokenize a string.
func TokenizeString(src string) ([]Token, error) {
	return Tokenize(strings.NewReader(src))
}

// LexError indicates a rune that cannot start a token. It implements
// InputError.
type LexError struct {
	// Line and Col are the position of the invalid rune.
	Line, Col int
	// Char is the invalid rune.
	Char rune
}

func (err *LexError) Error() string {
	return errpos(err.Line, err.Col, err.Msg())
}

func (err *LexError) Msg() string {
	return "Unexpected character '" + string(err.Char) + "'"
}

func (err *LexError) Pos() (line, col int) {
	return err.Line, err.Col
}
