package minilang

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// dumpWriter is a small indenting text builder, adapted from the
// teacher's tree-printing helper: push/pop indentation levels while
// writing nested structure, here used to line up nested List groups in
// the symbol-table dump.
type dumpWriter struct {
	pad []string
	out strings.Builder
}

func newDumpWriter() *dumpWriter {
	return &dumpWriter{}
}

func (w *dumpWriter) indent(s string)   { w.pad = append(w.pad, s) }
func (w *dumpWriter) unindent()         { w.pad = w.pad[:len(w.pad)-1] }
func (w *dumpWriter) write(s string)    { w.out.WriteString(s) }
func (w *dumpWriter) writel(s string)   { w.write(s); w.out.WriteByte('\n') }
func (w *dumpWriter) pwrite(s string) {
	for _, p := range w.pad {
		w.write(p)
	}
	w.write(s)
}
func (w *dumpWriter) pwritel(s string) { w.pwrite(s); w.out.WriteByte('\n') }

// Dump renders a symbol-table and function-table report: every bound
// name with its value (Lists flattened to their integer sequence, nested
// lists as nested bracketed groups), followed by a summary of defined
// procedures. Names are sorted for deterministic output.
func (it *Interpreter) Dump() string {
	w := newDumpWriter()
	w.writel(color.New(color.Bold).Sprint("Dump of Symbol Table"))

	names := make([]string, 0, len(it.Env))
	for name := range it.Env {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v := it.Env[name]
		w.pwrite(fmt.Sprintf("  %s -> ", name))
		w.writel(colorizeValue(v, it.Heap))
	}

	w.writel(color.New(color.Bold).Sprint("Function Table"))
	procNames := make([]string, 0, len(it.Funcs))
	for name := range it.Funcs {
		procNames = append(procNames, name)
	}
	sort.Strings(procNames)
	for _, name := range procNames {
		proc := it.Funcs[name]
		w.pwritel(fmt.Sprintf("  %s(%s)", name, strings.Join(proc.Params, ", ")))
	}

	return w.out.String()
}

// colorizeValue highlights Numbers in cyan and List brackets in yellow
// using github.com/fatih/color.
func colorizeValue(v Value, heap *Heap) string {
	switch val := v.(type) {
	case Number:
		return color.CyanString("%d", int64(val))
	case List:
		return colorizeList(val, heap)
	default:
		return v.String(heap)
	}
}

func colorizeList(l List, heap *Heap) string {
	open, close := color.YellowString("["), color.YellowString("]")
	if l.Empty() {
		return open + close
	}
	values, err := listValues(heap, l)
	if err != nil {
		return l.String(heap)
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = colorizeValue(v, heap)
	}
	return open + strings.Join(parts, ",") + close
}
