package rpn2tex

import (
	"errors"
	"strconv"
	"strings"
)

// Excerpt formats a non-nil error for display. If err is an InputError, the
// result quotes up to context source lines before the line of the error, then
// that line, then a caret under the error's column:
//
//	Error: Unexpected character '^'
//
//	1 | 2 3 ^
//	        ^
//
// Line numbers are right-aligned to the widest one shown. A negative context
// is treated as zero. For any other error, the result is "Error: " followed by
// the error text.
func Excerpt(src string, err error, context int) string {
	var ie InputError
	if !errors.As(err, &ie) {
		return "Error: " + err.Error()
	}
	if context < 0 {
		context = 0
	}
	line, col := ie.Pos()
	lines := strings.Split(src, "\n")
	first := line - context
	if first < 1 {
		first = 1
	}
	width := len(strconv.Itoa(line))

	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(ie.Msg())
	b.WriteString("\n\n")
	var text string
	for i := first; i <= line; i++ {
		text = ""
		if i <= len(lines) {
			text = strings.TrimSuffix(lines[i-1], "\r")
		}
		num := strconv.Itoa(i)
		b.WriteString(strings.Repeat(" ", width-len(num)))
		b.WriteString(num)
		b.WriteString(" | ")
		b.WriteString(text)
		b.WriteByte('\n')
	}
	// Copy tabs from the quoted line so the caret lines up with the column.
	b.WriteString(strings.Repeat(" ", width+3))
	rs := []rune(text)
	for k := 0; k < col-1; k++ {
		if k < len(rs) && rs[k] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('^')
	return b.String()
}
