package pkgset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownFormat is returned by Write for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Write renders resolved packages as "text" or "json".
func Write(w io.Writer, resolved []Resolved, format string) error {
	switch format {
	case "", "text":
		for _, r := range resolved {
			if _, err := fmt.Fprintf(w, "%s %s (depth %d) needed by %s\n",
				r.Name, r.Version, r.Depth, strings.Join(r.Targets, ", ")); err != nil {
				return err
			}
		}
		return nil
	case "json":
		if resolved == nil {
			resolved = []Resolved{}
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(resolved)
	default:
		return fmt.Errorf("%w: %s (supported: text, json)", ErrUnknownFormat, format)
	}
}
