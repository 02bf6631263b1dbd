// Package forklang contains a CLI-driven runtime for reading forklang
// source, either once from a file or continuously from an interactive
// shell, and evaluating it.
package forklang

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/forklang/internal/diagnostics"
	"github.com/dekarrin/forklang/internal/forkconfig"
	"github.com/dekarrin/forklang/internal/input"
	"github.com/dekarrin/forklang/internal/interp"
)

// Runtime holds everything needed to read and evaluate forklang source from
// an input stream, printing results and diagnostics to an output stream.
type Runtime struct {
	interp *interp.Interpreter
	in     lineReader
	out    *bufio.Writer

	running bool
}

type lineReader interface {
	ReadLine() (string, error)
	AllowBlank(bool)
	Close() error
}

// ShellGreeting is printed once at the start of an interactive session.
const ShellGreeting = "Shell Mode! Hello! 'Ctrl+C' to Exit"

// New creates a Runtime ready to read from inputStream and write to
// outputStream, configured by cfg.
//
// If inputStream is nil, a buffered reader is opened on stdin. If
// outputStream is nil, a buffered writer is opened on stdout. If
// interactive is true and the streams are the unmodified stdin/stdout, a
// readline-backed reader is used instead of a direct one, enabling line
// history and input sanitization; in that case cfg.Prompt becomes its
// prompt.
func New(inputStream io.Reader, outputStream io.Writer, interactive bool, cfg forkconfig.Config) (*Runtime, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	rt := &Runtime{
		out: bufio.NewWriter(outputStream),
	}

	useReadline := interactive && inputStream == os.Stdin && outputStream == os.Stdout

	var err error
	if useReadline {
		var icr *input.InteractiveLineReader
		icr, err = input.NewInteractiveReader()
		if err == nil {
			icr.SetPrompt(cfg.Prompt)
		}
		rt.in = icr
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		rt.in = input.NewDirectReader(inputStream)
	}
	rt.in.AllowBlank(true)

	if cfg.Precision > 0 {
		interp.SetFloatPrecision(cfg.Precision)
	}

	sink := diagnostics.NewConsoleSink(rt.out, cfg.Colorize)
	rt.interp = interp.NewInterpreter(sink)
	rt.interp.Out = rt.out

	return rt, nil
}

// RunSource parses and evaluates source as a single program, in one
// Environment, and returns the value of its last top-level expression. A
// lex or parse failure is reported through the Runtime's diagnostics sink
// and yields Nil (§4.7), the same as any other evaluation failure; it is
// never returned as a Go error.
func (rt *Runtime) RunSource(source string) (interp.Value, error) {
	program, err := interp.Parse(source)
	if err != nil {
		if se, ok := err.(*interp.SyntaxError); ok {
			rt.interp.Sink.Error(se.FullMessage())
		} else {
			rt.interp.Sink.Error(err.Error())
		}
		rt.out.Flush()
		return interp.Nil, nil
	}

	last := interp.Nil
	for _, stmt := range program {
		last = rt.interp.Eval(stmt)
	}
	rt.out.Flush()
	return last, nil
}

// RunUntilQuit reads and evaluates one line of source at a time until the
// input stream is exhausted, printing the result of each line the way the
// interactive shell does ("Result : <value>").
func (rt *Runtime) RunUntilQuit() error {
	if _, err := rt.out.WriteString(ShellGreeting + "\n"); err != nil {
		return fmt.Errorf("write greeting: %w", err)
	}
	if err := rt.out.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	rt.running = true
	defer func() {
		rt.running = false
	}()

	for rt.running {
		line, err := rt.in.ReadLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read line: %w", err)
		}

		result, err := rt.RunSource(line)
		if err != nil {
			return fmt.Errorf("run line: %w", err)
		}

		rt.out.WriteString("Result : " + result.Display() + "\n")
		rt.out.Flush()
	}

	return nil
}

// Close releases resources held by the Runtime's input reader.
func (rt *Runtime) Close() error {
	return rt.in.Close()
}
