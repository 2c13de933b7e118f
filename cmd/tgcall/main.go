// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.astrophena.name/botapi"
	"go.astrophena.name/botapi/internal/cli"
	"go.astrophena.name/botapi/internal/cli/envflag"
	"go.astrophena.name/botapi/internal/request"
	"go.astrophena.name/botapi/params"
	"go.astrophena.name/botapi/types"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
)

func main() { cli.Main(new(app)) }

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type app struct {
	// configuration
	token      *string
	baseURL    *string
	timeout    *time.Duration
	format     *string
	state      *string
	configPath string
	markdown   bool
	limit      int
	verbose    bool

	// httpc can be mocked for testing.
	httpc *http.Client

	// initialized by Run
	cfg *config
	c   *botapi.Client
	out botapi.Format
}

func (a *app) EnvFlags(fs *flag.FlagSet, getenv func(string) string) {
	a.token = envflag.Value("token", "TGCALL_TOKEN", "", "Bot `token`.", fs, getenv)
	a.baseURL = envflag.Value("base-url", "TGCALL_BASE_URL", "", "Bot API server `address`.", fs, getenv)
	a.timeout = envflag.Value("timeout", "TGCALL_TIMEOUT", time.Duration(0), "Request timeout. Zero means ten seconds.", fs, getenv)
	a.format = envflag.Value("format", "TGCALL_FORMAT", "", "Output `format`: object, json or raw.", fs, getenv)
	a.state = envflag.Value("state", "TGCALL_STATE", "", "Where feed posts are remembered: a file `path` or a PostgreSQL URL.", fs, getenv)
	fs.StringVar(&a.configPath, "config", "", "Path to the YAML configuration `file`.")
	fs.BoolVar(&a.markdown, "markdown", false, "Format message text as Markdown.")
	fs.IntVar(&a.limit, "limit", 5, "Post at most `n` items of each feed.")
	fs.BoolVar(&a.verbose, "v", false, "Log every request.")
}

func (a *app) Run(ctx context.Context, env *cli.Env) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.out, err = botapi.ParseFormat(cmp.Or(*a.format, cfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrInvalidArgs, err)
	}

	token := cmp.Or(*a.token, cfg.Token)
	if token == "" {
		return fmt.Errorf("%w: bot token is required, set -token or TGCALL_TOKEN", cli.ErrInvalidArgs)
	}
	a.c, err = botapi.New(botapi.Config{
		Token:      token,
		BaseURL:    cmp.Or(*a.baseURL, cfg.BaseURL),
		Timeout:    cmp.Or(*a.timeout, cfg.Timeout),
		HTTPClient: a.httpClient(),
		Logger:     env.Slog(a.verbose),
	})
	if err != nil {
		return err
	}

	return cli.Commands{
		"call":   cli.AppFunc(a.call),
		"me":     cli.AppFunc(a.me),
		"send":   cli.AppFunc(a.send),
		"script": cli.AppFunc(a.script),
		"feed":   cli.AppFunc(a.feed),
	}.Run(ctx, env)
}

func (a *app) httpClient() *http.Client {
	if a.httpc != nil {
		return a.httpc
	}
	return request.DefaultClient
}

func (a *app) call(ctx context.Context, env *cli.Env) error {
	if len(env.Args) == 0 {
		return fmt.Errorf("%w: call expects a method name", cli.ErrInvalidArgs)
	}
	method := env.Args[0]
	p, err := parseParams(env.Args[1:])
	if err != nil {
		return err
	}

	var raw []byte
	if strings.HasPrefix(method, "get") {
		raw, err = a.c.Get(ctx, method, p)
	} else {
		raw, err = a.c.Post(ctx, method, p)
	}
	if err != nil {
		return err
	}
	if err := a.check(env, method); err != nil {
		return err
	}

	v, err := botapi.Resolve(raw, a.out, anyDecoder)
	if err != nil {
		return err
	}
	return output(env.Stdout, v)
}

// anyDecoder decodes a result into generic Go values.
var anyDecoder botapi.Decoder[any] = func(v jsoniter.Any) (any, error) { return v.GetInterface(), nil }

func (a *app) me(ctx context.Context, env *cli.Env) error {
	if len(env.Args) != 0 {
		return fmt.Errorf("%w: me expects no arguments", cli.ErrInvalidArgs)
	}
	res, err := a.c.Profile().GetMe(ctx, nil)
	if err != nil {
		return err
	}
	if err := a.check(env, "getMe"); err != nil {
		return err
	}
	if a.out != botapi.FormatObject {
		v, err := res.As(a.out)
		if err != nil {
			return err
		}
		return output(env.Stdout, v)
	}
	u, err := res.Object()
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "@%s (%d)\n", u.Username, u.ID)
	return nil
}

// check reports the error of the last request, if any.
func (a *app) check(env *cli.Env, method string) error {
	if a.c.LastError() == nil {
		return nil
	}
	color.New(color.FgRed, color.Bold).Fprint(env.Stderr, "error: ")
	a.c.PrintErrorResponse(env.Stderr)
	return fmt.Errorf("%s failed", method)
}

// parseParams parses name=value arguments.
func parseParams(args []string) (*params.Bag, error) {
	p := params.New()
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: parameter %q is not in name=value form", cli.ErrInvalidArgs, arg)
		}
		p.Add(name, value)
	}
	return p, nil
}

// recipient parses a chat given on the command line.
func recipient(s string) (types.Recipient, error) {
	if s == "" {
		return nil, errors.New("chat is empty")
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return types.ChatID(id), nil
	}
	return types.Username(s), nil
}

func output(w io.Writer, v any) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
