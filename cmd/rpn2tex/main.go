package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/rpn2tex"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)
	var (
		outname string
		nl      bool
		context int
	)
	flags := flag.NewFlagSet("rpn2tex", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&outname, "o", "", "output file (default stdout)")
	flags.BoolVar(&nl, "n", false, "convert separate input lines as separate expressions")
	flags.IntVar(&context, "context", 1, "number of source lines to show before the line of an error")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: rpn2tex [flags] [input file, or - for stdin]")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return 1
	}

	in, err := infile(flags.Arg(0), stdin)
	if err != nil {
		logger.Print(err)
		return 1
	}
	defer in.Close()

	var out string
	var failed bool
	if nl {
		out, failed = convertLines(in, context, logger)
	} else {
		out, failed = convertAll(in, context, logger)
	}
	if out == "" && failed {
		return 1
	}

	if outname == "" {
		if _, err := io.WriteString(stdout, out); err != nil {
			logger.Print(err)
			return 1
		}
	} else {
		if out != "" && !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		if err := os.WriteFile(outname, []byte(out), 0o644); err != nil {
			logger.Print(err)
			return 1
		}
		logger.Printf("Generated: %s", outname)
	}
	if failed {
		return 1
	}
	return 0
}

// infile opens the input named by inname. An empty name or - selects stdin.
func infile(inname string, stdin io.Reader) (io.ReadCloser, error) {
	if inname == "" || inname == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(inname)
	if err != nil {
		return nil, fmt.Errorf("couldn't open input: %w", err)
	}
	return f, nil
}

// convertAll converts the entire input as one expression.
func convertAll(in io.Reader, context int, logger *log.Logger) (string, bool) {
	b, err := io.ReadAll(in)
	if err != nil {
		logger.Printf("couldn't read input: %v", err)
		return "", true
	}
	src := string(b)
	r, err := rpn2tex.ConvertString(src)
	if err != nil {
		logger.Print(rpn2tex.Excerpt(src, err, context))
		return "", true
	}
	return r, false
}

// convertLines converts each non-blank line of the input as a separate
// expression. The result has one line per successful conversion.
func convertLines(in io.Reader, context int, logger *log.Logger) (string, bool) {
	var (
		b      strings.Builder
		seen   []string
		failed bool
	)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		seen = append(seen, line)
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := rpn2tex.ConvertString(line)
		if err != nil {
			var ie rpn2tex.InputError
			if errors.As(err, &ie) {
				err = lineError{ie, len(seen)}
			}
			logger.Print(rpn2tex.Excerpt(strings.Join(seen, "\n"), err, context))
			failed = true
			continue
		}
		b.WriteString(r)
		b.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		logger.Printf("couldn't read input: %v", err)
		failed = true
	}
	return b.String(), failed
}

// lineError moves an error from a single-line conversion to its line in the
// whole input.
type lineError struct {
	rpn2tex.InputError
	line int
}

func (err lineError) Error() string {
	_, col := err.Pos()
	return fmt.Sprintf("%d:%d: %s", err.line, col, err.Msg())
}

func (err lineError) Pos() (line, col int) {
	_, col = err.InputError.Pos()
	return err.line, col
}
