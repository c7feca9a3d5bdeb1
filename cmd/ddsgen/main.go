// Command ddsgen generates and inspects dynamic decoupling sequences.
//
// Usage:
//
//	ddsgen [--config file] [--duration d] [--log-level level] <command>
//
// Examples:
//
//	ddsgen list
//	ddsgen generate cpmg --offsets 8 --pre-post
//	ddsgen plot xy-concatenated --concatenation-order 2
//	ddsgen filter quadratic --inner 2 --outer 3 --samples 4096
//	ddsgen recipe recipes/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// sysError marks failures of the environment (files, output) rather than
// of the user's input.
type sysError struct {
	err error
}

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func systemError(err error) error {
	if err == nil {
		return nil
	}
	return &sysError{err: err}
}

func exitCode(err error) int {
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
