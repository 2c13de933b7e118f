// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clitest runs table-driven tests against a [cli.App].
package clitest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"go.astrophena.name/botapi/internal/cli"
)

// Case describes one invocation of an application and what it must produce.
type Case[App cli.App] struct {
	Args  []string
	Stdin io.Reader
	Env   map[string]string

	// WantErr is matched with errors.Is.
	WantErr error
	// WantErrContains is matched against the error text.
	WantErrContains string

	// WantStdout, if set, must equal the whole standard output.
	WantStdout   string
	WantInStdout string
	WantInStderr string
	// WantQuiet requires both standard output and standard error to be empty.
	WantQuiet bool

	// Check runs after the application returns.
	Check func(*testing.T, App)
}

// Run runs every case in parallel against a fresh application returned by
// setup.
func Run[App cli.App](t *testing.T, setup func(*testing.T) App, cases map[string]Case[App]) {
	t.Helper()
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			app := setup(t)
			stdin := tc.Stdin
			if stdin == nil {
				stdin = strings.NewReader("")
			}
			var stdout, stderr bytes.Buffer
			err := cli.Run(context.Background(), app, &cli.Env{
				Args:   tc.Args,
				Getenv: func(name string) string { return tc.Env[name] },
				Stdin:  stdin,
				Stdout: &stdout,
				Stderr: &stderr,
			})
			checkErr(t, err, tc.WantErr, tc.WantErrContains)

			out, errOut := stdout.String(), stderr.String()
			if tc.WantQuiet && (out != "" || errOut != "") {
				t.Errorf("want no output, got stdout %q and stderr %q", out, errOut)
			}
			if tc.WantStdout != "" && out != tc.WantStdout {
				t.Errorf("stdout: want %q, got %q", tc.WantStdout, out)
			}
			if !strings.Contains(out, tc.WantInStdout) {
				t.Errorf("stdout must contain %q, got %q", tc.WantInStdout, out)
			}
			if !strings.Contains(errOut, tc.WantInStderr) {
				t.Errorf("stderr must contain %q, got %q", tc.WantInStderr, errOut)
			}

			if tc.Check != nil {
				tc.Check(t, app)
			}
		})
	}
}

func checkErr(t *testing.T, err, want error, contains string) {
	t.Helper()
	if want == nil && contains == "" {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	if err == nil {
		t.Fatalf("want error (%v %q), got none", want, contains)
	}
	if want != nil && !errors.Is(err, want) {
		t.Fatalf("want error %v, got %v", want, err)
	}
	if !strings.Contains(err.Error(), contains) {
		t.Fatalf("error must contain %q, got %v", contains, err)
	}
}
