// Package foo is the entry target of the quickstart: it prints its own joined
// line and then hands the same writer to the bar target.
package foo

import (
	"context"
	"fmt"
	"io"

	"github.com/conneroisu/joinstart/internal/logging"
	"github.com/conneroisu/joinstart/internal/words"
)

// Name is the target name used to derive the printed label.
const Name = "foo"

// Printer writes a target's output line.
type Printer interface {
	Fprint(w io.Writer) error
}

// PrinterFunc adapts a plain function to Printer.
type PrinterFunc func(w io.Writer) error

// Fprint calls f(w).
func (f PrinterFunc) Fprint(w io.Writer) error {
	return f(w)
}

// Run writes the Foo line to w and then invokes next exactly once.
// next is not called when the Foo line cannot be written.
func Run(ctx context.Context, w io.Writer, next Printer, logger logging.Logger) error {
	if logger == nil {
		logger = logging.Nop()
	}
	logger = logger.WithComponent(Name)

	joined := words.Join(words.Fixed(), words.Delimiter)
	logger.Debug(ctx, "joined words", "joined", joined, "delimiter", words.Delimiter)

	if _, err := fmt.Fprintln(w, words.Line(Name, joined)); err != nil {
		return fmt.Errorf("write %s line: %w", Name, err)
	}

	if next == nil {
		return nil
	}
	if err := next.Fprint(w); err != nil {
		return fmt.Errorf("print next target: %w", err)
	}
	return nil
}
