// Command minilang runs a MiniLang program from a file or stdin and
// prints its final symbol-table dump.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/LRParser/ProgrammingLanguages"
	"github.com/LRParser/ProgrammingLanguages/parser"
)

type args struct {
	trace      *bool
	dynamic    *bool
	syntactic  *bool
	heapSize   *int
	inputPath  string
}

func readArgs() *args {
	a := &args{
		trace:     flag.Bool("trace", false, "Print a statement-by-statement execution trace to stderr"),
		dynamic:   flag.Bool("dynamic", false, "Use dynamic scoping for procedure calls instead of static"),
		syntactic: flag.Bool("syntactic-intp", false, "Make intp() a syntactic check of its argument instead of semantic"),
		heapSize:  flag.Int("heap-size", 1024, "Capacity of the cons-cell heap, in cells"),
	}
	flag.Parse()
	if flag.NArg() > 0 {
		a.inputPath = flag.Arg(0)
	}
	return a
}

func main() {
	os.Exit(run())
}

func run() int {
	a := readArgs()

	var r io.Reader = os.Stdin
	if a.inputPath != "" {
		f, openErr := os.Open(a.inputPath)
		if openErr != nil {
			fmt.Fprintln(os.Stderr, color.RedString("error: %s", openErr))
			return 2
		}
		defer f.Close()
		r = f
	}

	raw, readErr := io.ReadAll(r)
	if readErr != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %s", readErr))
		return 2
	}
	src := string(raw)

	name := a.inputPath
	if name == "" {
		name = "<stdin>"
	}

	stmts, parseErr := parser.Parse(name, strings.NewReader(src))
	if parseErr != nil {
		fmt.Fprintln(os.Stderr, parser.FormatError(src, parseErr))
		return 1
	}

	cfg := minilang.NewConfig()
	cfg.SetHeapCapacity(*a.heapSize)
	if *a.dynamic {
		cfg.SetScoping(minilang.ScopingDynamic)
	}
	cfg.SetIntpSyntactic(*a.syntactic)

	prog := minilang.NewProgram(stmts, cfg)
	if *a.trace {
		prog.SetTrace(os.Stderr)
	}

	if evalErr := prog.Eval(); evalErr != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %s", evalErr))
		return 2
	}

	fmt.Println(color.GreenString("ok"))
	fmt.Println(prog.Dump())
	return 0
}
