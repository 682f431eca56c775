package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"csel/definitions"
)

type treeWriter struct {
	w *strings.Builder
}

func newTreeWriter() *treeWriter {
	return &treeWriter{w: &strings.Builder{}}
}

func (tw treeWriter) String() string {
	return tw.w.String()
}

func (tw treeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw treeWriter) line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw treeWriter) value(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(strconv.Quote(value))
	tw.w.WriteByte('\n')
}

// writeTree shows every selector with the pieces it was made of.
func writeTree(dst io.Writer, built []definitions.Built) error {
	tw := newTreeWriter()
	for _, b := range built {
		tw.line(0, "%s %s", b.Name, strconv.Quote(b.Selector))
		if b.Combine != nil {
			tw.value(1, "left", b.Combine.Left)
			tw.value(1, "combinator", string(b.Combine.Combinator))
			tw.value(1, "right", b.Combine.Right)
			continue
		}
		for _, f := range b.Fragments {
			tw.value(1, f.Category.String(), f.Value)
		}
	}
	_, err := io.WriteString(dst, tw.String())
	return err
}
