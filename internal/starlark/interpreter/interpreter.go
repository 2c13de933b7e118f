// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package interpreter runs Starlark scripts with a set of predeclared modules
// and support for load statements.
package interpreter

import (
	"context"
	"errors"
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Interpreter executes Starlark modules.
type Interpreter struct {
	// Predeclared are the names available in every module.
	Predeclared starlark.StringDict
	// Loader resolves module paths, both for ExecModule and load statements.
	Loader Loader
	// Logger receives the output of print. If nil, print does nothing.
	Logger func(file string, line int, message string)

	modules map[string]*moduleEntry
}

type moduleEntry struct {
	globals starlark.StringDict
	err     error
}

const contextKey = "context"

// Context returns the context of the thread running a module, or
// context.Background if there is none.
func Context(thread *starlark.Thread) context.Context {
	if ctx, ok := thread.Local(contextKey).(context.Context); ok {
		return ctx
	}
	return context.Background()
}

// ExecModule executes the module at path and returns its globals. Modules
// loaded with load statements are executed once and shared.
func (i *Interpreter) ExecModule(ctx context.Context, path string) (starlark.StringDict, error) {
	if i.Loader == nil {
		return nil, errors.New("interpreter: no loader")
	}
	i.modules = make(map[string]*moduleEntry)
	return i.load(ctx, path)
}

func (i *Interpreter) load(ctx context.Context, path string) (starlark.StringDict, error) {
	if e, ok := i.modules[path]; ok {
		if e == nil {
			return nil, fmt.Errorf("cycle in load graph at %q", path)
		}
		return e.globals, e.err
	}
	i.modules[path] = nil

	globals, err := i.exec(ctx, path)
	i.modules[path] = &moduleEntry{globals: globals, err: err}
	return globals, err
}

func (i *Interpreter) exec(ctx context.Context, path string) (starlark.StringDict, error) {
	dict, src, err := i.Loader(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if dict != nil {
		return dict, nil
	}

	thread := &starlark.Thread{
		Name: path,
		Load: func(_ *starlark.Thread, module string) (starlark.StringDict, error) {
			return i.load(ctx, module)
		},
		Print: func(thread *starlark.Thread, msg string) {
			if i.Logger == nil {
				return
			}
			pos := thread.CallFrame(1).Pos
			i.Logger(pos.Filename(), int(pos.Line), msg)
		},
	}
	thread.SetLocal(contextKey, ctx)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-done:
		}
	}()

	return starlark.ExecFileOptions(&syntax.FileOptions{
		Set:       true,
		While:     true,
		Recursion: true,
	}, thread, path, src, i.Predeclared)
}
