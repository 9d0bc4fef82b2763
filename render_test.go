package rpn2tex

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "5", "$5$"},
		{"decimal", "3.14", "$3.14$"},
		{"trailing-zero", "3.140", "$3.140$"},
		{"negnum", "-5", "$-5$"},
		{"add", "5 3 +", "$5 + 3$"},
		{"sub", "5 3 -", "$5 - 3$"},
		{"mul", "4 7 *", `$4 \times 7$`},
		{"div", "10 2 /", `$10 \div 2$`},
		{"add-mul", "5 3 + 2 *", `$( 5 + 3 ) \times 2$`},
		{"mul-add", "2 3 4 + *", `$2 \times ( 3 + 4 )$`},
		{"div-chain", "100 10 / 5 / 2 /", `$100 \div 10 \div 5 \div 2$`},
		{"sub-chain", "5 3 - 2 -", "$5 - 3 - 2$"},
		{"add-chain", "1 2 + 3 + 4 +", "$1 + 2 + 3 + 4$"},
		{"mul-chain", "2 3 * 4 *", `$2 \times 3 \times 4$`},
		{"add-right", "1 2 3 + +", "$1 + 2 + 3$"},
		{"mul-right", "2 3 4 * *", `$2 \times 3 \times 4$`},
		{"sub-right", "5 3 2 - -", "$5 - ( 3 - 2 )$"},
		{"div-right", "8 4 2 / /", `$8 \div ( 4 \div 2 )$`},
		{"sub-in-add-right", "1 2 3 - +", "$1 + ( 2 - 3 )$"},
		{"div-in-mul-right", "2 6 3 / *", `$2 \times ( 6 \div 3 )$`},
		{"mul-in-add", "2 3 * 4 +", `$2 \times 3 + 4$`},
		{"mul-in-add-right", "2 3 4 * +", `$2 + 3 \times 4$`},
		{"div-in-sub", "10 2 / 3 -", `$10 \div 2 - 3$`},
		{"sub-in-div-left", "10 2 - 3 /", `$( 10 - 2 ) \div 3$`},
		{"sub-in-div-right", "10 3 2 - /", `$10 \div ( 3 - 2 )$`},
		{"both-sides", "1 2 + 3 4 + *", `$( 1 + 2 ) \times ( 3 + 4 )$`},
		{"nested", "1 2 + 3 * 4 -", `$( 1 + 2 ) \times 3 - 4$`},
		{"deep", "1 2 3 4 + * -", `$1 - 2 \times ( 3 + 4 )$`},
		{"negative-operands", "-2 -3 *", `$-2 \times -3$`},
		{"sub-negative", "5 -3 -", "$5 - -3$"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := ParseString(c.src)
			if err != nil {
				t.Fatalf("couldn't parse %q: %v", c.src, err)
			}
			if got := Render(n); got != c.want {
				t.Errorf("%q rendered wrong: want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestRenderBrackets(t *testing.T) {
	// Every pair of operators, with the child on each side.
	ops := []Operator{OpAdd, OpSub, OpMul, OpDiv}
	for _, p := range ops {
		for _, c := range ops {
			for _, right := range []bool{false, true} {
				child := bin(c, lit("a"), lit("b"))
				pp, cp := optab(p), optab(c)
				want := cp.prec < pp.prec || cp.prec == pp.prec && right && (c == OpSub || c == OpDiv)
				if got := pp.brackets(child, right); got != want {
					t.Errorf("%v child of %v (right=%t): want brackets=%t, got %t", c, p, right, want, got)
				}
				if pp.brackets(lit("a"), right) {
					t.Errorf("literal child of %v (right=%t) bracketed", p, right)
				}
			}
		}
	}
}

func TestRenderSameOpChains(t *testing.T) {
	// Trees of a single commutative operator never need brackets, whatever
	// their shape.
	shapes := []func(Operator) Node{
		func(op Operator) Node { return bin(op, bin(op, lit("1"), lit("2")), lit("3")) },
		func(op Operator) Node { return bin(op, lit("1"), bin(op, lit("2"), lit("3"))) },
		func(op Operator) Node {
			return bin(op, bin(op, lit("1"), lit("2")), bin(op, lit("3"), lit("4")))
		},
		func(op Operator) Node {
			return bin(op, lit("1"), bin(op, bin(op, lit("2"), lit("3")), bin(op, lit("4"), lit("5"))))
		},
	}
	for _, op := range []Operator{OpAdd, OpMul} {
		for i, shape := range shapes {
			got := Render(shape(op))
			if strings.ContainsAny(got, "()") {
				t.Errorf("%v shape %d: unexpected brackets in %q", op, i, got)
			}
		}
	}
}

func TestRenderRightNonCommutative(t *testing.T) {
	cases := []struct {
		n    Node
		want string
	}{
		{bin(OpSub, lit("a"), bin(OpSub, lit("b"), lit("c"))), "$a - ( b - c )$"},
		{bin(OpDiv, lit("a"), bin(OpDiv, lit("b"), lit("c"))), `$a \div ( b \div c )$`},
		{bin(OpSub, bin(OpSub, lit("a"), lit("b")), lit("c")), "$a - b - c$"},
		{bin(OpDiv, bin(OpDiv, lit("a"), lit("b")), lit("c")), `$a \div b \div c$`},
	}
	for _, c := range cases {
		if got := Render(c.n); got != c.want {
			t.Errorf("%v: want %q, got %q", c.n, c.want, got)
		}
	}
}

func TestRenderDelims(t *testing.T) {
	n := bin(OpMul, bin(OpAdd, lit("5"), lit("3")), lit("2"))
	cases := []struct {
		name string
		opts []RenderOption
		want string
	}{
		{"default", nil, `$( 5 + 3 ) \times 2$`},
		{"paren", []RenderOption{Delims(`\(`, `\)`)}, `\(( 5 + 3 ) \times 2\)`},
		{"display", []RenderOption{Delims(`\[`, `\]`)}, `\[( 5 + 3 ) \times 2\]`},
		{"none", []RenderOption{Delims("", "")}, `( 5 + 3 ) \times 2`},
		{"last-wins", []RenderOption{Delims("<", ">"), Delims("$$", "$$")}, `$$( 5 + 3 ) \times 2$$`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Render(n, c.opts...); got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}
}

func TestRenderInvalid(t *testing.T) {
	cases := []struct {
		name string
		n    Node
	}{
		{"nil", nil},
		{"nil-child", bin(OpAdd, lit("1"), nil)},
		{"no-op", bin(OpNone, lit("1"), lit("2"))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("no panic")
				}
			}()
			Render(c.n)
		})
	}
}
