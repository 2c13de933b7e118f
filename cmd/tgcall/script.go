// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.astrophena.name/botapi/internal/cli"
	"go.astrophena.name/botapi/internal/starlark/interpreter"
	"go.astrophena.name/botapi/internal/starlark/lib/telegram"

	starlarkjson "go.starlark.net/lib/json"
	"go.starlark.net/starlark"
)

func (a *app) script(ctx context.Context, env *cli.Env) error {
	if len(env.Args) != 1 {
		return fmt.Errorf("%w: script expects a file", cli.ErrInvalidArgs)
	}
	path := env.Args[0]

	intr := &interpreter.Interpreter{
		Predeclared: starlark.StringDict{
			"json":     starlarkjson.Module,
			"telegram": telegram.Module(a.c),
		},
		Loader: interpreter.FileSystemLoader(filepath.Dir(path)),
		Logger: func(file string, line int, message string) {
			env.Logf("%s:%d: %s", file, line, message)
		},
	}
	_, err := intr.ExecModule(ctx, filepath.Base(path))
	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		return errors.New(evalErr.Backtrace())
	}
	return err
}
