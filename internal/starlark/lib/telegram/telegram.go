// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package telegram contains a Starlark module that exposes the Telegram Bot API.

# call

call makes a request to any Bot API method and returns the decoded response
envelope:

	response = telegram.call(
	    method = "sendMessage",
	    args = {
	        "chat_id": 123456789,
	        "text": "Hello, world!",
	    },
	)
	if not response["ok"]:
	    fail(response["description"])

Methods whose name starts with "get" are called with GET, the rest with POST.

# send_message

send_message sends text to a chat. With markdown = True the text is
converted from Markdown to message entities. Other keyword arguments are
passed as optional parameters:

	telegram.send_message(chat_id = "@channel", text = "**Hi**", markdown = True, disable_notification = True)

# get_me

get_me returns the bot's user record.

# get_file

get_file downloads a file by its file_id and returns its content as bytes.

# last_error

last_error returns the error of the last failed request as a dict with
status_code, error_code, description and retry_after, or None if the last
request succeeded.
*/
package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.astrophena.name/botapi"
	"go.astrophena.name/botapi/internal/starlark/interpreter"
	"go.astrophena.name/botapi/internal/starlark/starconv"
	"go.astrophena.name/botapi/internal/tgmarkup"
	"go.astrophena.name/botapi/params"
	"go.astrophena.name/botapi/types"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// Module returns a Starlark module that makes requests with c.
func Module(c *botapi.Client) *starlarkstruct.Module {
	m := &module{c: c}
	return &starlarkstruct.Module{
		Name: "telegram",
		Members: starlark.StringDict{
			"call":         starlark.NewBuiltin("telegram.call", m.call),
			"send_message": starlark.NewBuiltin("telegram.send_message", m.sendMessage),
			"get_me":       starlark.NewBuiltin("telegram.get_me", m.getMe),
			"get_file":     starlark.NewBuiltin("telegram.get_file", m.getFile),
			"last_error":   starlark.NewBuiltin("telegram.last_error", m.lastError),
		},
	}
}

type module struct {
	c *botapi.Client
}

func (m *module) call(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		method   string
		argsDict *starlark.Dict
	)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "method", &method, "args?", &argsDict); err != nil {
		return nil, err
	}

	p := params.New()
	if argsDict != nil {
		for _, item := range argsDict.Items() {
			if err := addParam(p, item[0], item[1]); err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
		}
	}

	ctx := interpreter.Context(thread)
	var (
		raw []byte
		err error
	)
	if strings.HasPrefix(method, "get") {
		raw, err = m.c.Get(ctx, method, p)
	} else {
		raw, err = m.c.Post(ctx, method, p)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return decode(b, raw)
}

func (m *module) sendMessage(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(args) > 0 {
		return nil, fmt.Errorf("%s: unexpected positional arguments", b.Name())
	}

	var (
		chat     types.Recipient
		text     string
		markdown bool
	)
	opts := params.New()
	for _, kv := range kwargs {
		key := string(kv[0].(starlark.String))
		var err error
		switch key {
		case "chat_id":
			chat, err = recipient(kv[1])
		case "text":
			s, ok := starlark.AsString(kv[1])
			if !ok {
				err = fmt.Errorf("text: want string, got %s", kv[1].Type())
			}
			text = s
		case "markdown":
			markdown = bool(kv[1].Truth())
		default:
			err = addParam(opts, kv[0], kv[1])
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
	}
	if chat == nil {
		return nil, fmt.Errorf("%s: missing argument for chat_id", b.Name())
	}

	if markdown {
		msg := tgmarkup.FromMarkdown(text)
		text = msg.Text
		opts.Merge(msg.Params())
	}

	res, err := m.c.Content().SendMessage(interpreter.Context(thread), chat, text, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return decode(b, []byte(res.Raw()))
}

func (m *module) getMe(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	res, err := m.c.Profile().GetMe(interpreter.Context(thread), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	if !res.OK() {
		return nil, fmt.Errorf("%s: %w", b.Name(), m.c.LastError())
	}
	return decodeResult(b, []byte(res.Raw()))
}

func (m *module) getFile(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var fileID string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "file_id", &fileID); err != nil {
		return nil, err
	}

	ctx := interpreter.Context(thread)
	res, err := m.c.Bot().GetFile(ctx, fileID, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	f, err := res.Object()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	if f == nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), m.c.LastError())
	}
	if f.FilePath == "" {
		return nil, fmt.Errorf("%s: file %q can't be downloaded", b.Name(), fileID)
	}

	buf, err := m.c.Download(ctx, f.FilePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return starlark.Bytes(buf), nil
}

func (m *module) lastError(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	e := m.c.LastError()
	if e == nil {
		return starlark.None, nil
	}
	return starconv.ToValue(map[string]any{
		"status_code": e.StatusCode,
		"error_code":  e.ErrorCode,
		"description": e.Description,
		"retry_after": e.RetryAfter,
	})
}

func decode(b *starlark.Builtin, raw []byte) (starlark.Value, error) {
	v, err := botapi.Resolve(raw, botapi.FormatJSON, botapi.Decoder[any](nil))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return starconv.ToValue(v)
}

func decodeResult(b *starlark.Builtin, raw []byte) (starlark.Value, error) {
	v, err := decode(b, raw)
	if err != nil {
		return nil, err
	}
	d, ok := v.(*starlark.Dict)
	if !ok {
		return v, nil
	}
	res, found, err := d.Get(starlark.String("result"))
	if err != nil || !found {
		return starlark.None, err
	}
	return res, nil
}

// addParam adds a Starlark key-value pair to p. Strings and numbers are
// passed as is, lists and dicts are serialized to JSON.
func addParam(p *params.Bag, k, v starlark.Value) error {
	key, ok := k.(starlark.String)
	if !ok {
		return fmt.Errorf("parameter name %s is not a string", k)
	}
	val, err := starconv.FromValue(v)
	if err != nil {
		return fmt.Errorf("parameter %q: %w", string(key), err)
	}
	p.Add(string(key), val)
	return nil
}

func recipient(v starlark.Value) (types.Recipient, error) {
	switch v := v.(type) {
	case starlark.Int:
		id, ok := v.Int64()
		if !ok {
			return nil, errors.New("chat_id: integer out of range")
		}
		return types.ChatID(id), nil
	case starlark.String:
		if id, err := strconv.ParseInt(string(v), 10, 64); err == nil {
			return types.ChatID(id), nil
		}
		return types.Username(v), nil
	}
	return nil, fmt.Errorf("chat_id: want int or string, got %s", v.Type())
}
