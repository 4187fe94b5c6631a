// Package cli is the run boundary: it selects the program source,
// drives the parser and interpreter, and reports the error that ended
// the run, with a kind-specific prefix, exactly once.
package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/sanity-io/litter"

	"github.com/dwhitley/sbasic/berrors"
	"github.com/dwhitley/sbasic/interp"
	"github.com/dwhitley/sbasic/lexer"
	"github.com/dwhitley/sbasic/parser"
)

const usage = `Usage: sbasic [-h] [-i] [-ast] [file]

If given a filename, execute the program contained in the file. Otherwise,
execute standard input terminated by end-of-file.

Options:
	-h, --help	Print this text and exit
	-i		Enter the program interactively, line by line
	-ast		Parse only, dump the syntax tree and exit
`

// Run executes one program and returns the process exit code
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sbasic", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stdout, usage) }

	interactive := fs.Bool("i", false, "enter the program interactively")
	dumpAST := fs.Bool("ast", false, "parse only and dump the syntax tree")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	source, filename, ok := readSource(fs.Arg(0), *interactive, stdin, stderr)
	if !ok {
		return 1
	}

	program, err := parser.Parse(lexer.New(source, filename))
	if err != nil {
		return report(err, stderr)
	}

	if *dumpAST {
		fmt.Fprintln(stdout, litter.Sdump(program))
		return 0
	}

	term := &console{in: bufio.NewReader(stdin), out: stdout}
	if err := interp.New(program, term).Run(); err != nil {
		return report(err, stderr)
	}

	return 0
}

// readSource picks the program text: a file when one is named, an
// interactive entry session under -i, standard input otherwise.
func readSource(file string, interactive bool, stdin io.Reader, stderr io.Writer) (string, string, bool) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(stderr, "Can't open %s for reading\n", file)
			return "", "", false
		}
		return string(data), file, true
	}

	if interactive {
		source, err := readInteractive()
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return "", "", false
		}
		return source, "<stdin>", true
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return "", "", false
	}
	return string(data), "<stdin>", true
}

// readInteractive collects program lines with a line editor until the
// user ends entry with Ctrl+D.
func readInteractive() (string, error) {
	prompt := liner.NewLiner()
	defer prompt.Close()

	var out strings.Builder
	for {
		input, err := prompt.Prompt("> ")
		if err == io.EOF {
			return out.String(), nil
		}
		if err != nil {
			return "", err
		}

		prompt.AppendHistory(input)
		out.WriteString(input)
		out.WriteString("\n")
	}
}

func report(err error, stderr io.Writer) int {
	fmt.Fprintf(stderr, "%s: %s\n", berrors.Prefix(err), err.Error())
	return 1
}

// console drives the process's own standard streams
type console struct {
	in  *bufio.Reader
	out io.Writer
}

func (c *console) Print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *console) Println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
