package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/XJIeI5/rpncalc/internal/parser"
	"github.com/go-logr/logr"
)

type replOptions struct {
	quiet  bool
	strict bool
	prompt bool
}

// calculate parses and evaluates one line, writing the postfix form and the
// result (or the failure) to out.
func calculate(out io.Writer, log logr.Logger, line string, opts replOptions) {
	expr := parser.Parse(line)
	if !opts.quiet {
		fmt.Fprintf(out, "\nPostfix: %s\n", expr)
	}

	for _, a := range expr.Anomalies() {
		log.V(1).Info("tolerated malformed input", "anomaly", a.String())
	}
	if opts.strict && !expr.Clean() {
		fmt.Fprintf(out, "Oops! Something went wrong: %s\n\n", expr.Anomalies()[0].Err())
		return
	}

	result, err := expr.Evaluate()
	if err != nil {
		fmt.Fprintf(out, "Oops! Something went wrong: %s\n\n", err)
		return
	}
	fmt.Fprintf(out, "Result: %s\n\n", strconv.FormatFloat(result, 'f', -1, 64))
}

// repl reads expressions line by line until in is exhausted.
func repl(in io.Reader, out io.Writer, log logr.Logger, opts replOptions) error {
	rd := bufio.NewReader(in)
	for {
		if opts.prompt {
			fmt.Fprint(out, "Expression: ")
		}
		line, err := rd.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if strings.TrimSpace(line) != "" || err == nil {
			calculate(out, log, line, opts)
		}
		if err == io.EOF {
			return nil
		}
	}
}
