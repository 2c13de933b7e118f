// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package cli provides utilities for building command-line applications.
package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"

	"go.astrophena.name/botapi/internal/logger"
	"go.astrophena.name/botapi/internal/util/syncx"
	"go.astrophena.name/botapi/internal/version"
)

// Main runs app with the operating system environment and exits. It cancels
// the context on interrupt. Errors are printed to standard error; the exit
// status is 2 for invalid arguments and 1 for other errors.
func Main(app App) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := Run(ctx, app, OSEnv())
	cancel()
	os.Exit(exitCode(err, os.Stderr))
}

func exitCode(err error, stderr io.Writer) int {
	var silent *silentError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp), errors.Is(err, ErrExitVersion):
		return 0
	case errors.As(err, &silent):
		return 2
	case errors.Is(err, ErrInvalidArgs):
		fmt.Fprintf(stderr, "%v\nRun %s -help for usage.\n", err, version.CmdName())
		return 2
	}
	fmt.Fprintln(stderr, err)
	return 1
}

// silentError is an error that was already reported to the user.
type silentError struct{ err error }

func (e *silentError) Error() string { return e.err.Error() }
func (e *silentError) Unwrap() error { return e.err }

// ErrExitVersion is returned by [Run] after printing the version.
var ErrExitVersion = errors.New("version printed")

// ErrInvalidArgs is wrapped by errors about bad command-line arguments:
//
//	return fmt.Errorf("%w: want a chat", cli.ErrInvalidArgs)
var ErrInvalidArgs = errors.New("invalid arguments")

// App represents a command-line application.
type App interface {
	// Run runs the application.
	Run(context.Context, *Env) error
}

// HasFlags represents a command-line application that has flags.
type HasFlags interface {
	App

	// Flags adds flags to the flag set.
	Flags(*flag.FlagSet)
}

// HasEnvFlags represents a command-line application whose flags can be
// overridden by environment variables.
type HasEnvFlags interface {
	App

	// EnvFlags adds flags to the flag set. getenv looks up the environment
	// of the application.
	EnvFlags(fs *flag.FlagSet, getenv func(string) string)
}

// AppFunc is a function type that implements the [App] interface.
// It has no defined flags.
type AppFunc func(context.Context, *Env) error

// Run calls f(ctx, env).
func (f AppFunc) Run(ctx context.Context, env *Env) error {
	return f(ctx, env)
}

// Env represents the application environment.
type Env struct {
	Args   []string
	Getenv func(string) string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	logf syncx.Lazy[logger.Logf]
}

// Logf writes the formatted message to standard error of this environment.
func (e *Env) Logf(format string, args ...any) {
	e.logf.Get(func() logger.Logf {
		return log.New(e.Stderr, "", 0).Printf
	})(format, args...)
}

// Slog returns a structured logger that writes to standard error of this
// environment. Debug records are dropped unless verbose is true.
func (e *Env) Slog(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return logger.Logf(e.Logf).Slog(level)
}

// OSEnv returns the current operating system environment.
func OSEnv() *Env {
	return &Env{
		Args:   os.Args[1:],
		Getenv: os.Getenv,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run handles the command-line application startup: it parses flags from
// env.Args, handles -version and runs app with the remaining arguments.
func Run(ctx context.Context, app App, env *Env) error {
	name := version.CmdName()

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	switch fa := app.(type) {
	case HasFlags:
		fa.Flags(flags)
	case HasEnvFlags:
		fa.EnvFlags(flags, env.Getenv)
	}

	var showVersion bool
	if flags.Lookup("version") == nil {
		flags.BoolVar(&showVersion, "version", false, "Show version.")
	}

	flags.Usage = usage(name, flags, env.Stderr)
	flags.SetOutput(env.Stderr)
	if err := flags.Parse(env.Args); err != nil {
		// The flag package has printed it.
		return &silentError{err}
	}

	if showVersion {
		fmt.Fprint(env.Stderr, version.Version())
		return ErrExitVersion
	}
	env.Args = flags.Args()

	return app.Run(ctx, env)
}

// Commands is an [App] that runs one of several subcommands, chosen by the
// first argument.
type Commands map[string]App

// Run implements the [App] interface.
func (c Commands) Run(ctx context.Context, env *Env) error {
	if len(env.Args) == 0 {
		return fmt.Errorf("%w: want a command (one of %s)", ErrInvalidArgs, c.names())
	}
	cmd, ok := c[env.Args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q (want one of %s)", ErrInvalidArgs, env.Args[0], c.names())
	}
	env.Args = env.Args[1:]
	return cmd.Run(ctx, env)
}

func (c Commands) names() string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func usage(name string, flags *flag.FlagSet, stderr io.Writer) func() {
	return func() {
		if d := doc.Get(parseDocComment); d != "" {
			fmt.Fprintln(stderr, d)
		} else {
			fmt.Fprintf(stderr, "Usage: %s [flags...]\n\n", name)
		}
		fmt.Fprint(stderr, "Flags:\n\n")
		flags.PrintDefaults()
	}
}

var (
	docSrc []byte
	doc    syncx.Lazy[string]
)

// SetDocComment sets the source of a file whose /* */ comment is printed as
// help text, usually the embedded doc.go of the program.
func SetDocComment(src []byte) { docSrc = src }

// parseDocComment extracts the first /* */ comment from docSrc. The comment
// markers must be on lines of their own.
func parseDocComment() string {
	_, rest, ok := bytes.Cut(docSrc, []byte("/*\n"))
	if !ok {
		return ""
	}
	text, _, _ := bytes.Cut(rest, []byte("\n*/"))
	return string(text)
}
