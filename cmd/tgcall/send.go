// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.astrophena.name/botapi/internal/cli"
	"go.astrophena.name/botapi/internal/tgmarkup"
	"go.astrophena.name/botapi/params"
)

func (a *app) send(ctx context.Context, env *cli.Env) error {
	args := env.Args
	if len(args) == 1 && a.cfg.Chat != "" {
		args = []string{a.cfg.Chat, args[0]}
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: send expects a chat and a text", cli.ErrInvalidArgs)
	}

	chat, err := recipient(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrInvalidArgs, err)
	}
	text := args[1]
	if text == "-" {
		b, err := io.ReadAll(env.Stdin)
		if err != nil {
			return err
		}
		text = strings.TrimSpace(string(b))
	}
	if text == "" {
		return fmt.Errorf("%w: message text is empty", cli.ErrInvalidArgs)
	}

	opts := params.New()
	if a.markdown {
		msg := tgmarkup.FromMarkdown(text)
		text = msg.Text
		opts.Merge(msg.Params())
	}

	res, err := a.c.Content().SendMessage(ctx, chat, text, opts)
	if err != nil {
		return err
	}
	if err := a.check(env, "sendMessage"); err != nil {
		return err
	}
	v, err := res.As(a.out)
	if err != nil {
		return err
	}
	return output(env.Stdout, v)
}
