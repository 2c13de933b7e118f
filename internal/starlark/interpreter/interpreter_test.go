// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package interpreter

import (
	"context"
	"strings"
	"testing"

	"go.astrophena.name/botapi/internal/testutil"

	"go.starlark.net/starlark"
)

func TestExecModule(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		files      map[string]string
		wantErr    string
		wantGlobal string
	}{
		"globals": {
			files:      map[string]string{"main.star": `x = "ok"`},
			wantGlobal: `"ok"`,
		},
		"predeclared": {
			files:      map[string]string{"main.star": `x = answer * 2`},
			wantGlobal: "84",
		},
		"load": {
			files: map[string]string{
				"lib.star":  `def double(n): return n * 2`,
				"main.star": "load(\"lib.star\", \"double\")\nx = double(4)",
			},
			wantGlobal: "8",
		},
		"missing module": {
			files:   map[string]string{"main.star": `load("nope.star", "x")`},
			wantErr: "no such module",
		},
		"cycle": {
			files: map[string]string{
				"main.star": `load("a.star", "a")`,
				"a.star":    `load("main.star", "x")`,
			},
			wantErr: "cycle in load graph",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			intr := &Interpreter{
				Predeclared: starlark.StringDict{"answer": starlark.MakeInt(42)},
				Loader:      MemoryLoader(tc.files),
			}
			globals, err := intr.ExecModule(context.Background(), "main.star")
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("want error containing %q, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, globals["x"].String(), tc.wantGlobal)
		})
	}
}

func TestCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	intr := &Interpreter{Loader: MemoryLoader(map[string]string{
		"main.star": "while True:\n    pass",
	})}
	_, err := intr.ExecModule(ctx, "main.star")
	if err == nil || !strings.Contains(err.Error(), "context canceled") {
		t.Fatalf("want a cancellation error, got %v", err)
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "value")

	var got any
	intr := &Interpreter{
		Predeclared: starlark.StringDict{
			"probe": starlark.NewBuiltin("probe", func(thread *starlark.Thread, _ *starlark.Builtin, _ starlark.Tuple, _ []starlark.Tuple) (starlark.Value, error) {
				got = Context(thread).Value(key{})
				return starlark.None, nil
			}),
		},
		Loader: MemoryLoader(map[string]string{"main.star": "probe()"}),
	}
	if _, err := intr.ExecModule(ctx, "main.star"); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, got, "value")
	testutil.AssertEqual(t, Context(&starlark.Thread{}), context.Background())
}
