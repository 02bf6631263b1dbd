// Package diagnostics contains the error-reporting sink used throughout
// forklang: runtime failures never unwind the evaluator, they are reported
// through a Sink and the expression that triggered them evaluates to Nil
// instead.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/dekarrin/rosed"
	"github.com/fatih/color"
)

// consoleWidth is the column width diagnostic text is wrapped to, matching
// the width the reference CLI wraps its own console messages to.
const consoleWidth = 80

// Sink receives diagnostic messages produced during evaluation. Nothing in
// internal/interp ever calls a Sink method expecting a response; reporting
// is fire-and-forget.
type Sink interface {
	Error(msg string)
	Errorf(format string, args ...any)
}

// ConsoleSink writes diagnostics to Writer, prefixed and, unless disabled,
// colorized the way the reference REPL colorizes its error output.
type ConsoleSink struct {
	Writer io.Writer
	color  *color.Color
}

// NewConsoleSink returns a Sink that prints "ERR: <message>" to w. If
// colorize is true, the message is printed in red.
func NewConsoleSink(w io.Writer, colorize bool) *ConsoleSink {
	c := color.New(color.FgRed)
	c.EnableColor()
	if !colorize {
		c.DisableColor()
	}
	return &ConsoleSink{Writer: w, color: c}
}

func (s *ConsoleSink) Error(msg string) {
	wrapped := rosed.Edit("ERR: " + msg).Wrap(consoleWidth).String()
	s.color.Fprintf(s.Writer, "%s\n", wrapped)
}

func (s *ConsoleSink) Errorf(format string, args ...any) {
	s.Error(fmt.Sprintf(format, args...))
}

// Collecting is a Sink that records every message it receives instead of
// printing, for use in tests that assert on diagnostic output.
type Collecting struct {
	Messages []string
}

func (s *Collecting) Error(msg string) {
	s.Messages = append(s.Messages, msg)
}

func (s *Collecting) Errorf(format string, args ...any) {
	s.Error(fmt.Sprintf(format, args...))
}
