package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// New returns a logger writing one line per entry to stderr. Entries with a
// V-level above verbosity are dropped.
func New(verbosity int) logr.Logger {
	return NewTo(os.Stderr, verbosity)
}

func NewTo(w io.Writer, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{
		Verbosity:    verbosity,
		LogTimestamp: true,
	})
}
