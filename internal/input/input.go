// Package input contains identifiers used in getting a line of forklang
// source from CLI or other sources of input.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// DirectLineReader implements a forklang source-line reader that reads from
// any generic input stream directly. It can be used with any io.Reader but
// does not sanitize the input of control and escape sequences.
//
// DirectLineReader should not be used directly; instead, create one with
// [NewDirectReader].
type DirectLineReader struct {
	r             *bufio.Reader
	blanksAllowed bool
}

// InteractiveLineReader implements a forklang source-line reader that reads
// from stdin using a go implementation of the GNU Readline library. This
// keeps input clear of all typing and editing escape sequences and enables
// the use of line history. This should in general probably only be used when
// directly connecting to a TTY for input.
//
// InteractiveLineReader should not be used directly; instead, create one
// with [NewInteractiveReader].
type InteractiveLineReader struct {
	rl            *readline.Instance
	blanksAllowed bool
	prompt        string
}

// Create a new DirectLineReader and initialize a buffered reader on the
// provided reader. The returned DirectLineReader holds no resources of its
// own, but Close() may still be called on it like on any other reader.
func NewDirectReader(r io.Reader) *DirectLineReader {
	return &DirectLineReader{
		r: bufio.NewReader(r),
	}
}

// Create a new InteractiveLineReader and initialize readline. The returned
// InteractiveLineReader must have Close() called on it before disposal to
// properly teardown readline resources.
func NewInteractiveReader() (*InteractiveLineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "> ",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveLineReader{
		rl:     rl,
		prompt: "> ",
	}, nil
}

// Close cleans up resources associated with the DirectLineReader.
func (dcr *DirectLineReader) Close() error {
	// this function is here so DirectLineReader satisfies the same shape as
	// InteractiveLineReader. For now it doesn't really do anything as the
	// DirectLineReader does not create resources but it may in the future
	// and callers should treat it as though it must have Close called on it.

	return nil
}

// Close cleans up readline resources and other resources associated with the
// InteractiveLineReader.
func (icr *InteractiveLineReader) Close() error {
	return icr.rl.Close()
}

// ReadLine reads the next line from the underlying reader, with surrounding
// whitespace trimmed. If blank lines are allowed (see AllowBlank), a blank
// line is returned as an empty string with a nil error; otherwise the
// returned string will only be empty if there is an error reading input,
// and this function is blocked on until a line containing non-space
// characters is read.
//
// If at end of input, the returned string will be empty and error will be
// io.EOF. If any other error occurs, the returned string will be empty and
// error will be that error.
func (dcr *DirectLineReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = dcr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line == "" && dcr.blanksAllowed {
			return line, nil
		}
	}

	return line, nil
}

// ReadLine reads the next line from stdin, with surrounding whitespace
// trimmed. If blank lines are allowed (see AllowBlank), a blank line is
// returned as an empty string with a nil error; otherwise the returned string
// will only be empty if there is an error, and this function is blocked on
// until a line consisting of more than empty or whitespace-only input is read.
//
// If at end of input, the returned string will be empty and error will be
// io.EOF. If any other error occurs, the returned string will be empty and
// error will be that error.
func (icr *InteractiveLineReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = icr.rl.Readline()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line == "" && icr.blanksAllowed {
			return line, nil
		}
	}

	return line, nil
}

// AllowBlank sets whether blank output is allowed. By default it is not.
func (dcr *DirectLineReader) AllowBlank(allow bool) {
	dcr.blanksAllowed = allow
}

// AllowBlank sets whether blank output is allowed. By default it is not.
func (icr *InteractiveLineReader) AllowBlank(allow bool) {
	icr.blanksAllowed = allow
}

// SetPrompt updates the prompt to the given text.
func (icr *InteractiveLineReader) SetPrompt(p string) {
	icr.prompt = p
	icr.rl.SetPrompt(p)
}

// GetPrompt gets the current prompt.
func (icr *InteractiveLineReader) GetPrompt() string {
	return icr.prompt
}
