// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package cli_test

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"testing"

	"go.astrophena.name/botapi/internal/cli"
	"go.astrophena.name/botapi/internal/cli/clitest"
	"go.astrophena.name/botapi/internal/cli/envflag"
)

type greeter struct {
	name string
	got  []string
}

func (g *greeter) Flags(fs *flag.FlagSet) {
	fs.StringVar(&g.name, "name", "world", "Who to greet.")
}

func (g *greeter) Run(ctx context.Context, env *cli.Env) error {
	g.got = env.Args
	if len(env.Args) > 0 && env.Args[0] == "fail" {
		return fmt.Errorf("%w: refusing to greet", cli.ErrInvalidArgs)
	}
	fmt.Fprintf(env.Stdout, "hello, %s\n", g.name)
	return nil
}

func TestRun(t *testing.T) {
	clitest.Run(t, func(t *testing.T) *greeter { return new(greeter) }, map[string]clitest.Case[*greeter]{
		"default": {
			WantInStdout: "hello, world",
		},
		"flag": {
			Args:         []string{"-name", "bot", "extra"},
			WantInStdout: "hello, bot",
			Check: func(t *testing.T, g *greeter) {
				if len(g.got) != 1 || g.got[0] != "extra" {
					t.Fatalf("want remaining args [extra], got %v", g.got)
				}
			},
		},
		"invalid args": {
			Args:    []string{"fail"},
			WantErr: cli.ErrInvalidArgs,
		},
		"unknown flag": {
			Args:            []string{"-nope"},
			WantErrContains: "flag provided but not defined: -nope",
		},
		"version": {
			Args:    []string{"-version"},
			WantErr: cli.ErrExitVersion,
		},
	})
}

type envGreeter struct {
	name *string
}

func (g *envGreeter) EnvFlags(fs *flag.FlagSet, getenv func(string) string) {
	g.name = envflag.Value("name", "GREETER_NAME", "world", "Who to greet.", fs, getenv)
}

func (g *envGreeter) Run(ctx context.Context, env *cli.Env) error {
	fmt.Fprintf(env.Stdout, "hello, %s\n", *g.name)
	return nil
}

func TestEnvFlags(t *testing.T) {
	clitest.Run(t, func(t *testing.T) *envGreeter { return new(envGreeter) }, map[string]clitest.Case[*envGreeter]{
		"default": {
			WantInStdout: "hello, world",
		},
		"environment": {
			Env:          map[string]string{"GREETER_NAME": "env"},
			WantInStdout: "hello, env",
		},
		"flag wins": {
			Args:         []string{"-name", "flag"},
			Env:          map[string]string{"GREETER_NAME": "env"},
			WantInStdout: "hello, flag",
		},
	})
}

func TestCommands(t *testing.T) {
	var ran string
	cmd := func(name string) cli.App {
		return cli.AppFunc(func(ctx context.Context, env *cli.Env) error {
			ran = name
			return nil
		})
	}
	cmds := cli.Commands{"send": cmd("send"), "call": cmd("call")}

	cases := map[string]struct {
		args    []string
		want    string
		wantErr error
	}{
		"send":    {args: []string{"send", "x"}, want: "send"},
		"call":    {args: []string{"call"}, want: "call"},
		"missing": {wantErr: cli.ErrInvalidArgs},
		"unknown": {args: []string{"dance"}, wantErr: cli.ErrInvalidArgs},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ran = ""
			err := cmds.Run(context.Background(), &cli.Env{Args: tc.args})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want error %v, got %v", tc.wantErr, err)
			}
			if ran != tc.want {
				t.Fatalf("want %q to run, got %q", tc.want, ran)
			}
		})
	}
}
