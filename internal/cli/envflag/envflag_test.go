// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package envflag

import (
	"flag"
	"io"
	"testing"
	"time"

	"go.astrophena.name/botapi/internal/testutil"
)

func TestValue(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		env         map[string]string
		args        []string
		wantToken   string
		wantTimeout time.Duration
		wantVerbose bool
	}{
		"defaults": {
			wantToken:   "",
			wantTimeout: 10 * time.Second,
		},
		"environment": {
			env:         map[string]string{"TOKEN": "123:abc", "TIMEOUT": "3s", "VERBOSE": "true"},
			wantToken:   "123:abc",
			wantTimeout: 3 * time.Second,
			wantVerbose: true,
		},
		"flags win": {
			env:         map[string]string{"TOKEN": "123:abc", "TIMEOUT": "3s"},
			args:        []string{"-token", "456:def", "-timeout", "1m", "-v"},
			wantToken:   "456:def",
			wantTimeout: time.Minute,
			wantVerbose: true,
		},
		"malformed environment": {
			env:         map[string]string{"TIMEOUT": "soon"},
			wantTimeout: 10 * time.Second,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			getenv := func(k string) string { return tc.env[k] }

			token := Value("token", "TOKEN", "", "Bot token.", fs, getenv)
			timeout := Value("timeout", "TIMEOUT", 10*time.Second, "Request timeout.", fs, getenv)
			verbose := Value("v", "VERBOSE", false, "Verbose output.", fs, getenv)

			if err := fs.Parse(tc.args); err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, *token, tc.wantToken)
			testutil.AssertEqual(t, *timeout, tc.wantTimeout)
			testutil.AssertEqual(t, *verbose, tc.wantVerbose)
		})
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	Value("format", "FORMAT", "object", "Output format.", fs, func(string) string { return "" })
	f := fs.Lookup("format")
	testutil.AssertEqual(t, f.Usage, "Output format. Can be overridden by FORMAT environment variable.")
	testutil.AssertEqual(t, f.DefValue, "object")
}
