// Package main is the entry point for nyancat.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/fatih/color"

	"github.com/lixenwraith/nyancat/clierrors"
	"github.com/lixenwraith/nyancat/terminal"
)

// Version information (set via ldflags during build)
var version = "dev"

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	// Panic Recovery: Ensure terminal is reset even if rendering crashes
	defer func() {
		if r := recover(); r != nil {
			// Restore terminal to sane state immediately
			terminal.EmergencyReset(os.Stdout)

			// Print error and stack trace to stderr so it's visible after reset
			fmt.Fprintf(os.Stderr, "\n\x1b[31mNYANCAT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			exitCode = clierrors.ExitGeneral
		}
	}()

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return handleError(err)
	}
	return clierrors.ExitSuccess
}

// handleError prints err in red on stderr and returns its exit code
func handleError(err error) int {
	failure := color.New(color.FgRed, color.Bold)
	hint := color.New(color.FgCyan)

	var cliErr *clierrors.CLIError
	if clierrors.As(err, &cliErr) {
		failure.Fprintf(os.Stderr, "✗ %s\n", cliErr.Error())
		if cliErr.Hint != "" {
			hint.Fprintf(os.Stderr, "  %s\n", cliErr.Hint)
		}
		return cliErr.Code
	}

	failure.Fprintf(os.Stderr, "✗ %s\n", err)
	return clierrors.ExitGeneral
}
