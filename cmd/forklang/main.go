/*
Forklang runs forklang source, either interactively or from a file.

Usage:

	forklang
		Start an interactive shell, reading one line of source at a time and
		printing the result of each.

	forklang FILE
		Read and evaluate the contents of FILE once, then exit.

Any other invocation prints a usage message and exits with status 1.
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/forklang"
	"github.com/dekarrin/forklang/internal/forkconfig"
)

// configFile is the name of the optional config file read from the current
// working directory at startup.
const configFile = ".forklang.toml"

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = 0

	// ExitUsageError indicates the program was invoked with an unsupported
	// combination of arguments.
	ExitUsageError = 1

	// ExitRunError indicates an unsuccessful program execution due to an
	// error reading or running source, outside of evaluating the source
	// itself (a missing file, a broken shell reader, and the like).
	ExitRunError = 2
)

var returnCode = ExitSuccess

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occured: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	switch len(os.Args) {
	case 1:
		runShell()
	case 2:
		runFile(os.Args[1])
	default:
		usage()
	}
}

func runShell() {
	cfg, err := forkconfig.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitRunError
		return
	}

	rt, err := forklang.New(nil, nil, true, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitRunError
		return
	}
	defer rt.Close()

	if err := rt.RunUntilQuit(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitRunError
	}
}

func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitRunError
		return
	}

	cfg, err := forkconfig.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitRunError
		return
	}

	rt, err := forklang.New(nil, nil, false, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitRunError
		return
	}
	defer rt.Close()

	// RunSource reports lex, parse, and evaluation failures as diagnostics
	// and yields Nil; file mode always runs to completion and exits 0.
	rt.RunSource(string(src))
}

func usage() {
	c := os.Args[0]
	fmt.Fprintf(os.Stderr, "Incorrect usage of utility %s.\nCorrect Usage:\n\t%s # for command line util\n\t%s FILENAME # to run file\n", c, c, c)
	returnCode = ExitUsageError
}
