package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/term"
)

// enumFlag is a string flag restricted to a fixed set of values.
type enumFlag struct {
	value   string
	allowed []string
}

func newEnumFlag[T ~string](def T, allowed []T) *enumFlag {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return &enumFlag{value: string(def), allowed: names}
}

func (f *enumFlag) String() string { return f.value }

func (f *enumFlag) Set(v string) error {
	v = strings.ToLower(v)
	if !slices.Contains(f.allowed, v) {
		return fmt.Errorf("must be one of: %s", strings.Join(f.allowed, ", "))
	}
	f.value = v
	return nil
}

func (f *enumFlag) Type() string { return "string" }

// usage appends the allowed values to a flag description.
func (f *enumFlag) usage(desc string) string {
	return fmt.Sprintf("%s (%s)", desc, strings.Join(f.allowed, ", "))
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
