// Package bar is the library target of the quickstart. It prints the fixed
// word sequence joined with the shared delimiter under its own label.
package bar

import (
	"fmt"
	"io"
	"os"

	"github.com/conneroisu/joinstart/internal/words"
)

// Name is the target name used to derive the printed label.
const Name = "bar"

// PrintBar writes the Bar line to standard output.
func PrintBar() {
	_ = Fprint(os.Stdout)
}

// Fprint writes the Bar line to w.
func Fprint(w io.Writer) error {
	joined := words.Join(words.Fixed(), words.Delimiter)
	_, err := fmt.Fprintln(w, words.Line(Name, joined))
	return err
}
