// Package words holds the fixed word sequence shared by the foo, bar and baz
// targets together with the join and label helpers used to print it.
package words

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Delimiter is placed between adjacent words when joining.
const Delimiter = "-"

// Fixed returns a fresh copy of the three-word sequence.
func Fixed() []string {
	return []string{"foo", "bar", "baz"}
}

// Join concatenates elems with sep between adjacent elements only.
// An empty sequence yields "" and a single element is returned unchanged.
func Join(elems []string, sep string) string {
	return strings.Join(elems, sep)
}

// Joined returns the fixed sequence joined with Delimiter.
func Joined() string {
	return Join(Fixed(), Delimiter)
}

// Label title-cases a target name for display, e.g. "foo" becomes "Foo".
// A Caser keeps state between calls, so one is built per call.
func Label(target string) string {
	return cases.Title(language.English).String(target)
}

// Line formats the output line a target prints for a joined string.
func Line(target, joined string) string {
	return fmt.Sprintf("%s: Joined string: %s", Label(target), joined)
}
